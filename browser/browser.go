// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgbrowser "github.com/pkg/browser"

	"github.com/jongio/azd-endpoint/logutil"
	"github.com/jongio/azd-endpoint/urlvalue"
)

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetNone disables browser launching
	TargetNone Target = "none"
)

// ErrNoURL is returned when Launch is called without a URL.
var ErrNoURL = errors.New("no URL to open")

// openURL is swapped out in tests.
var openURL = pkgbrowser.OpenURL

func init() {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetNone}
}

// ParseTarget converts s to a Target. An empty string means TargetDefault.
func ParseTarget(s string) (Target, error) {
	if s == "" {
		return TargetDefault, nil
	}
	for _, t := range ValidTargets() {
		if Target(s) == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid browser target %q (valid options: %s)", s, FormatValidTargets())
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL *urlvalue.URL
	// Target browser to use
	Target Target
	// IncludePort puts the port, when set, into the authority
	IncludePort bool
}

// NavigableURL renders u in a form a browser can open. The port, when
// requested and set, goes after the host rather than after the path as it
// does in urlvalue.URL.FullURL.
func NavigableURL(u *urlvalue.URL, includePort bool) string {
	var b strings.Builder
	b.WriteString(u.Scheme())
	b.WriteString("://")
	b.WriteString(u.HostName())
	if port, ok := u.Port(); ok && includePort {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(port))
	}
	if path := u.Path(); len(path) > 0 {
		b.WriteString("/")
		b.WriteString(u.PathString())
	}
	return b.String()
}

// Launch opens the URL in the browser selected by opts.Target and returns the
// address it opened. With TargetNone nothing is launched.
func Launch(opts LaunchOptions) (string, error) {
	if opts.URL == nil {
		return "", ErrNoURL
	}

	target := opts.Target
	if target == "" {
		target = TargetDefault
	}

	address := NavigableURL(opts.URL, opts.IncludePort)
	if target == TargetNone {
		logutil.Debug("browser launch disabled", "component", "browser", "url", address)
		return address, nil
	}

	if err := openURL(address); err != nil {
		return address, fmt.Errorf("could not open browser: %w", err)
	}
	return address, nil
}
