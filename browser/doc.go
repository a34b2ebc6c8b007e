// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package browser opens endpoint URLs in the user's web browser.
//
// Launching is delegated to github.com/pkg/browser, which supports Windows
// (cmd /c start), macOS (open) and Linux (xdg-open). This package adds target
// selection and renders the URL in a navigable form.
//
// # Browser Targets
//
//   - TargetDefault: Uses the system default browser
//   - TargetNone: Disables launching (useful in CI and tests)
//
// # Example Usage
//
//	u := urlvalue.New("https://portal.example.com/home", urlvalue.WithPort(8443))
//	address, err := browser.Launch(browser.LaunchOptions{
//	    URL:         u,
//	    Target:      browser.TargetDefault,
//	    IncludePort: true,
//	})
//	// address == "https://portal.example.com:8443/home"
package browser
