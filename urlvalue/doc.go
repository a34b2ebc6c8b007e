// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package urlvalue splits simple service endpoint URLs into their parts and
// puts them back together.
//
// A URL value holds a security flag, the host labels (sub-domain, name and
// top-level domain), the path segments and an optional port. It targets a
// narrow subset of URLs: there is no support for query strings, fragments,
// user info, IPv6 literals, percent-encoding or IDN hosts.
//
// # Usage
//
//	u := urlvalue.New("https://api.example.com/v1/users", urlvalue.WithPort(443))
//	u.HostName()  // "api.example.com"
//	u.String()    // "https://api.example.com/v1/users"
//	u.FullURL()   // "https://api.example.com/v1/users:443"
//	u.Protocol()  // "HTTPS"
//
// Input that does not come from typed Go code (decoded YAML or JSON) goes
// through From, which reports an InvalidInputError when the URL is not a
// string:
//
//	u, err := urlvalue.From(raw["url"], urlvalue.WithPort(raw["port"]))
//	if errors.Is(err, urlvalue.ErrInvalidInput) {
//		...
//	}
//
// # Parsing
//
// A leading "https://" marks the value secure and a leading "http://" marks it
// insecure. Without a scheme the WithSecure option decides (secure by default).
// The remainder is split on "/": the first segment is the host and the rest is
// the path, empty segments included. The host is split on ".": the last label is
// the domain, the one before it the name, and everything else is re-joined as the
// sub-domain.
//
// Hosts with fewer than two labels parse without error. The missing name or
// domain is reported as absent by Name and Domain rather than as an empty string.
//
// # Mutation
//
// Setters update exactly one field. Nothing is re-derived: changing the name does
// not touch the domain, and changing the path does not touch the host. Callers
// that need consistency checks should run them after mutating, for example with
// the urlutil package.
package urlvalue
