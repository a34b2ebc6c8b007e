// Package cliout provides structured output formatting for the azd-endpoint
// CLI.
//
// # Output Formats
//
//   - default: Human-readable text with colors and symbols
//   - json: Structured JSON output for automation and scripting
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    return err
//	}
//
// Print takes both the JSON payload and a formatter for default mode:
//
//	err := cliout.Print(u.Snapshot(), func() {
//	    cliout.Label("Host", u.HostName())
//	})
//
// # Colors
//
// Colors are disabled when stdout is not a terminal or NO_COLOR is set.
// ForceColor and NoColor override the detection.
//
// # Tables
//
//	headers := []string{"Name", "URL"}
//	rows := []cliout.TableRow{
//	    {"Name": "api", "URL": "https://api.example.com"},
//	}
//	cliout.Table(headers, rows)
package cliout
