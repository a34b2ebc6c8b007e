// Package testutil provides common testing helpers for capturing CLI output
// and writing fixture files.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/azd-endpoint/cliout"
)

// CaptureOutput runs fn with cliout redirected to a buffer and colors off,
// and returns everything written. The previous writer is always restored.
// An error from fn is logged, not failed, so callers can assert on it.
//
// Example:
//
//	output := testutil.CaptureOutput(t, cmd.Execute)
//	if !strings.Contains(output, "api.example.com") {
//	    t.Error("expected host in output")
//	}
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	var buf bytes.Buffer
	prev := cliout.SetOutput(&buf)
	cliout.NoColor()
	defer cliout.SetOutput(prev)

	if err := fn(); err != nil {
		t.Logf("Command error: %v", err)
	}

	return buf.String()
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path. The directory is removed when the test completes.
//
// Example:
//
//	path := testutil.WriteFile(t, "endpoints.yaml", "endpoints: {}\n")
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
