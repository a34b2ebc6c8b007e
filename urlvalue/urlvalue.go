// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlvalue

import (
	"strconv"
	"strings"

	"github.com/jongio/azd-endpoint/logutil"
)

// Scheme prefixes recognised at the start of a raw URL.
const (
	PrefixHTTP  = "http://"
	PrefixHTTPS = "https://"
)

// Protocol labels returned by Protocol.
const (
	ProtocolHTTP  = "HTTP"
	ProtocolHTTPS = "HTTPS"
)

// URL is a parsed endpoint URL.
//
// The zero value is an insecure URL with an empty host and no path. Fields are
// independent: setters never re-derive other fields.
type URL struct {
	secure    bool
	domain    *string
	name      *string
	subDomain string
	path      []string
	port      *int
}

type options struct {
	secure  bool
	port    any
	hasPort bool
}

// Option configures New and From.
type Option func(*options)

// WithSecure sets the security flag used when the raw URL carries no scheme.
// A leading "http://" or "https://" always wins over this option.
func WithSecure(secure bool) Option {
	return func(o *options) {
		o.secure = secure
	}
}

// WithPort sets the port. It accepts the same inputs as SetPort.
func WithPort(port any) Option {
	return func(o *options) {
		o.port = port
		o.hasPort = true
	}
}

// New parses rawURL and returns the resulting value.
//
// Parsing never fails for a string input. Without WithSecure a URL with no
// scheme is treated as secure.
func New(rawURL string, opts ...Option) *URL {
	o := options{secure: true}
	for _, opt := range opts {
		opt(&o)
	}

	u := parse(rawURL, o.secure)
	if o.hasPort {
		u.port = toPort(o.port)
	}
	return u
}

// From is New for untyped input such as decoded YAML or JSON values.
// It returns an *InvalidInputError when raw is not a string.
func From(raw any, opts ...Option) (*URL, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, newInvalidInputError(raw)
	}
	return New(s, opts...), nil
}

// parse builds a URL from rawURL in one pass. fallbackSecure applies only when
// rawURL has no scheme prefix.
func parse(rawURL string, fallbackSecure bool) *URL {
	secure, rest := splitScheme(rawURL, fallbackSecure)

	segments := strings.Split(rest, "/")
	host := segments[0]
	path := segments[1:]

	u := &URL{
		secure: secure,
		path:   path,
	}
	u.domain, u.name, u.subDomain = splitHost(host)

	if u.domain == nil || u.name == nil {
		logutil.Debug("host has fewer than two labels", "component", "urlvalue", "host", host)
	}
	return u
}

// splitScheme strips a leading scheme. Only a true prefix counts, so
// "foo.com/http://bar" keeps its fallback security and its full text.
func splitScheme(rawURL string, fallbackSecure bool) (bool, string) {
	if rest, ok := strings.CutPrefix(rawURL, PrefixHTTPS); ok {
		return true, rest
	}
	if rest, ok := strings.CutPrefix(rawURL, PrefixHTTP); ok {
		return false, rest
	}
	return fallbackSecure, rawURL
}

// splitHost pops the domain and name off the end of host. Labels that are not
// there come back nil.
func splitHost(host string) (domain, name *string, subDomain string) {
	labels := strings.Split(host, ".")

	pop := func() *string {
		if len(labels) == 0 {
			return nil
		}
		last := labels[len(labels)-1]
		labels = labels[:len(labels)-1]
		return &last
	}

	domain = pop()
	name = pop()
	return domain, name, strings.Join(labels, ".")
}

// SetURL re-parses rawURL into u. The current security flag is the fallback
// when rawURL has no scheme. The port is left untouched.
func (u *URL) SetURL(rawURL string) {
	parsed := parse(rawURL, u.secure)
	parsed.port = u.port
	*u = *parsed
}

// SetSecure sets the security flag.
func (u *URL) SetSecure(secure bool) {
	u.secure = secure
}

// IsSecure reports whether the URL uses https.
func (u *URL) IsSecure() bool {
	return u.secure
}

// Protocol returns "HTTPS" or "HTTP". It is a display label; serialization
// always uses the lowercase scheme.
func (u *URL) Protocol() string {
	if u.secure {
		return ProtocolHTTPS
	}
	return ProtocolHTTP
}

// Scheme returns "https" or "http".
func (u *URL) Scheme() string {
	if u.secure {
		return "https"
	}
	return "http"
}

// SetDomain sets the top-level label.
func (u *URL) SetDomain(domain string) {
	u.domain = &domain
}

// Domain returns the top-level label and whether it is present.
func (u *URL) Domain() (string, bool) {
	return deref(u.domain)
}

// SetName sets the label left of the domain.
func (u *URL) SetName(name string) {
	u.name = &name
}

// Name returns the label left of the domain and whether it is present.
func (u *URL) Name() (string, bool) {
	return deref(u.name)
}

// SetSubDomain sets everything left of the name.
func (u *URL) SetSubDomain(subDomain string) {
	u.subDomain = subDomain
}

// SubDomain returns the dot-joined labels left of the name, or "".
func (u *URL) SubDomain() string {
	return u.subDomain
}

// DomainName returns "<name>.<domain>". Absent labels are left out.
func (u *URL) DomainName() string {
	return joinLabels(u.name, u.domain)
}

// HostName returns "<subDomain>.<name>.<domain>", or "<name>.<domain>" when
// there is no sub-domain. Absent labels are left out.
func (u *URL) HostName() string {
	domainName := u.DomainName()
	if u.subDomain == "" {
		return domainName
	}
	if domainName == "" {
		return u.subDomain
	}
	return u.subDomain + "." + domainName
}

// SetPath replaces the path segments. A nil slice clears the path.
func (u *URL) SetPath(path []string) {
	if path == nil {
		u.path = nil
		return
	}
	u.path = append([]string(nil), path...)
}

// SetPathFromString splits path on "/" and stores the segments. An empty
// string clears the path.
func (u *URL) SetPathFromString(path string) {
	if path == "" {
		u.path = nil
		return
	}
	u.path = strings.Split(path, "/")
}

// Path returns a copy of the path segments. It is never nil.
func (u *URL) Path() []string {
	return append([]string{}, u.path...)
}

// PathString returns the path segments joined with "/", without a leading
// slash.
func (u *URL) PathString() string {
	return strings.Join(u.path, "/")
}

// SetPort sets the port from a number or a numeric string. Any other input,
// including negative numbers, clears it.
func (u *URL) SetPort(port any) {
	u.port = toPort(port)
	if u.port == nil && port != nil {
		logutil.Debug("port cleared", "component", "urlvalue", "input", port)
	}
}

// ClearPort removes the port.
func (u *URL) ClearPort() {
	u.port = nil
}

// Port returns the port and whether one is set.
func (u *URL) Port() (int, bool) {
	if u.port == nil {
		return 0, false
	}
	return *u.port, true
}

// URL serializes the value. addPrefix adds the "https://" or "http://"
// scheme; addPort appends ":<port>" after the path when a port is set.
func (u *URL) URL(addPort, addPrefix bool) string {
	var b strings.Builder
	if addPrefix {
		if u.secure {
			b.WriteString(PrefixHTTPS)
		} else {
			b.WriteString(PrefixHTTP)
		}
	}
	b.WriteString(u.HostName())
	if len(u.path) > 0 {
		b.WriteString("/")
		b.WriteString(u.PathString())
	}
	if addPort && u.port != nil {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(*u.port))
	}
	return b.String()
}

// FullURL returns the URL with both the scheme and the port.
func (u *URL) FullURL() string {
	return u.URL(true, true)
}

// String returns the URL with the scheme and without the port.
func (u *URL) String() string {
	return u.URL(false, true)
}

// Clone returns a deep copy of u.
func (u *URL) Clone() *URL {
	c := &URL{
		secure:    u.secure,
		subDomain: u.subDomain,
		path:      append([]string(nil), u.path...),
	}
	if u.domain != nil {
		d := *u.domain
		c.domain = &d
	}
	if u.name != nil {
		n := *u.name
		c.name = &n
	}
	if u.port != nil {
		p := *u.port
		c.port = &p
	}
	return c
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func joinLabels(labels ...*string) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != nil {
			parts = append(parts, *l)
		}
	}
	return strings.Join(parts, ".")
}
