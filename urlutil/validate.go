package urlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jongio/azd-endpoint/urlvalue"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
	// MaxDomainLength is the DNS limit for a full host name
	MaxDomainLength = 253
	// MaxLabelLength is the DNS limit for a single label
	MaxLabelLength = 63
	// MaxPort is the largest TCP port number
	MaxPort = 65535
)

// Validate checks a parsed URL against stricter rules than urlvalue applies.
// It requires that the URL:
//   - Has both a name and a domain label (localhost excepted)
//   - Has a host that passes ValidateDomain
//   - Has a port in the range 0-65535, when a port is set
//   - Does not exceed MaxURLLength (2048 characters) in full form
//
// Example:
//
//	if err := urlutil.Validate(u); err != nil {
//		return fmt.Errorf("invalid endpoint: %w", err)
//	}
func Validate(u *urlvalue.URL) error {
	if u == nil {
		return fmt.Errorf("url cannot be nil")
	}

	host := u.HostName()
	if !isLocalhost(host) {
		if _, ok := u.Name(); !ok {
			return fmt.Errorf("url host %q must have a name and a domain", host)
		}
	}

	if err := ValidateDomain(host); err != nil {
		return fmt.Errorf("invalid host: %w", err)
	}

	if port, ok := u.Port(); ok && port > MaxPort {
		return fmt.Errorf("port %d out of range (0-%d)", port, MaxPort)
	}

	if full := u.FullURL(); len(full) > MaxURLLength {
		return fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	return nil
}

// ValidateHTTPSOnly enforces HTTPS for production endpoints.
// It allows HTTP for localhost (127.0.0.1, localhost) for local development,
// but rejects all other HTTP URLs.
//
// Example:
//
//	if err := urlutil.ValidateHTTPSOnly(u); err != nil {
//		return fmt.Errorf("production endpoint must use HTTPS: %w", err)
//	}
func ValidateHTTPSOnly(u *urlvalue.URL) error {
	if err := Validate(u); err != nil {
		return err
	}

	if u.IsSecure() || isLocalhost(u.HostName()) {
		return nil
	}

	return fmt.Errorf("url must use https:// (http:// only allowed for localhost)")
}

// Parse parses rawURL with urlvalue.New and then runs Validate.
//
// Example:
//
//	u, err := urlutil.Parse(userInput, urlvalue.WithPort(port))
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Host: %s\n", u.HostName())
func Parse(rawURL string, opts ...urlvalue.Option) (*urlvalue.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}
	if len(rawURL) > MaxURLLength {
		return nil, fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	u := urlvalue.New(rawURL, opts...)
	if err := Validate(u); err != nil {
		return nil, err
	}
	return u, nil
}

// NormalizeScheme ensures rawURL starts with http:// or https://.
// A URL that already has one of those prefixes is returned unchanged; otherwise
// defaultScheme ("http" or "https", without "://") is prepended.
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)

	if strings.HasPrefix(rawURL, urlvalue.PrefixHTTP) || strings.HasPrefix(rawURL, urlvalue.PrefixHTTPS) {
		return rawURL
	}

	return defaultScheme + "://" + rawURL
}

var errEmptyLabel = errors.New("domain has empty label")

// ValidateDomain checks that domain is a bare DNS host name: no scheme, no
// port, at least one dot (except localhost), labels of letters, digits and
// inner hyphens, at most 63 characters per label and 253 overall.
func ValidateDomain(domain string) error {
	domain = strings.TrimSpace(domain)

	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}

	if strings.Contains(domain, "://") {
		return fmt.Errorf("domain should not include protocol")
	}

	if strings.Contains(domain, ":") {
		return fmt.Errorf("domain should not include port")
	}

	if len(domain) > MaxDomainLength {
		return fmt.Errorf("domain exceeds maximum length of %d characters", MaxDomainLength)
	}

	if isLocalhost(domain) {
		return nil
	}

	if !strings.Contains(domain, ".") {
		return fmt.Errorf("domain must have at least one dot")
	}

	for _, label := range strings.Split(domain, ".") {
		if err := validateLabel(label); err != nil {
			return err
		}
	}

	return nil
}

func validateLabel(label string) error {
	if label == "" {
		return errEmptyLabel
	}
	if len(label) > MaxLabelLength {
		return fmt.Errorf("domain label exceeds %d characters", MaxLabelLength)
	}
	for _, r := range label {
		if !isLabelRune(r) {
			return fmt.Errorf("domain label contains invalid character %q", r)
		}
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return fmt.Errorf("domain label cannot start or end with hyphen")
	}
	return nil
}

func isLabelRune(r rune) bool {
	return r == '-' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// isLocalhost checks if the hostname is a localhost address
func isLocalhost(hostname string) bool {
	hostname = strings.ToLower(hostname)

	return hostname == "localhost" ||
		hostname == "127.0.0.1"
}
