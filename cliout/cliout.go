package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red        = "\033[31m"
	Green      = "\033[32m"
	Yellow     = "\033[33m"
	Cyan       = "\033[36m"
	BrightBlue = "\033[94m"
)

// Symbols with ASCII fallbacks for terminals without Unicode support.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"

	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
)

// EnvNoColor disables color output when set to any value.
const EnvNoColor = "NO_COLOR"

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	out          io.Writer = os.Stdout
	noColor                = detectNoColor()
	asciiOnly              = false
)

// detectNoColor disables colors when NO_COLOR is set or stdout is not a terminal.
func detectNoColor() bool {
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// SetOutput redirects all output. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// UseASCII switches symbols to their ASCII fallbacks.
func UseASCII(ascii bool) {
	mu.Lock()
	asciiOnly = ascii
	mu.Unlock()
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()

	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

func writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

func paint(color, s string) string {
	mu.RLock()
	disabled := noColor
	mu.RUnlock()
	if disabled {
		return s
	}
	return color + s + Reset
}

func symbol(unicode, ascii string) string {
	mu.RLock()
	defer mu.RUnlock()
	if asciiOnly {
		return ascii
	}
	return unicode
}

// PrintJSON writes data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON format, marshals the data object.
func Print(data any, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider
func Header(text string) {
	w := writer()
	fmt.Fprintf(w, "\n%s\n", paint(Bold, text))
	fmt.Fprintln(w, strings.Repeat("=", len(text)))
}

// Success prints a success line.
func Success(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(Green, symbol(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error line.
func Error(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(Red, symbol(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Warning prints a warning line.
func Warning(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(Yellow, symbol(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Info prints an info line.
func Info(format string, args ...any) {
	fmt.Fprintf(writer(), "%s %s\n", paint(Cyan, symbol(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// Plain prints text without decoration.
func Plain(format string, args ...any) {
	fmt.Fprintf(writer(), format+"\n", args...)
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Fprintf(writer(), "   %s %s\n", paint(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// URL colors a URL in bright blue
func URL(url string) string {
	return paint(BrightBlue, url)
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int, len(headers))
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			widths[header] = max(widths[header], len(row[header]))
		}
	}

	w := writer()
	line := func(cell func(header string) string) {
		var b strings.Builder
		b.WriteString("   ")
		for i, header := range headers {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell(header))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	line(func(h string) string { return paint(Bold, fmt.Sprintf("%-*s", widths[h], h)) })
	line(func(h string) string { return strings.Repeat("─", widths[h]) })
	for _, row := range rows {
		line(func(h string) string { return fmt.Sprintf("%-*s", widths[h], row[h]) })
	}
}
