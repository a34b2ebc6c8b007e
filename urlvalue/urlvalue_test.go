// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/azd-endpoint/logutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		opts          []Option
		wantSecure    bool
		wantSubDomain string
		wantName      string
		wantDomain    string
		wantPath      []string
	}{
		{
			name:          "sub name domain with path",
			url:           "sub.name.domain/p1/p2",
			wantSecure:    true,
			wantSubDomain: "sub",
			wantName:      "name",
			wantDomain:    "domain",
			wantPath:      []string{"p1", "p2"},
		},
		{
			name:       "two labels no path",
			url:        "example.com",
			wantSecure: true,
			wantName:   "example",
			wantDomain: "com",
			wantPath:   []string{},
		},
		{
			name:          "http prefix",
			url:           "http://a.b.c",
			wantSecure:    false,
			wantSubDomain: "a",
			wantName:      "b",
			wantDomain:    "c",
			wantPath:      []string{},
		},
		{
			name:          "https prefix overrides insecure option",
			url:           "https://a.b.c",
			opts:          []Option{WithSecure(false)},
			wantSecure:    true,
			wantSubDomain: "a",
			wantName:      "b",
			wantDomain:    "c",
			wantPath:      []string{},
		},
		{
			name:          "http prefix overrides secure option",
			url:           "http://a.b.c",
			opts:          []Option{WithSecure(true)},
			wantSecure:    false,
			wantSubDomain: "a",
			wantName:      "b",
			wantDomain:    "c",
			wantPath:      []string{},
		},
		{
			name:       "no prefix uses insecure option",
			url:        "example.com/x",
			opts:       []Option{WithSecure(false)},
			wantSecure: false,
			wantName:   "example",
			wantDomain: "com",
			wantPath:   []string{"x"},
		},
		{
			name:          "multi-level sub-domain",
			url:           "https://a.b.c.example.org/api",
			wantSecure:    true,
			wantSubDomain: "a.b.c",
			wantName:      "example",
			wantDomain:    "org",
			wantPath:      []string{"api"},
		},
		{
			name:       "trailing slash keeps empty segment",
			url:        "example.com/",
			wantSecure: true,
			wantName:   "example",
			wantDomain: "com",
			wantPath:   []string{""},
		},
		{
			name:       "double slash keeps empty segments",
			url:        "example.com/a//b",
			wantSecure: true,
			wantName:   "example",
			wantDomain: "com",
			wantPath:   []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := New(tt.url, tt.opts...)

			assert.Equal(t, tt.wantSecure, u.IsSecure())
			assert.Equal(t, tt.wantSubDomain, u.SubDomain())

			name, ok := u.Name()
			assert.True(t, ok)
			assert.Equal(t, tt.wantName, name)

			domain, ok := u.Domain()
			assert.True(t, ok)
			assert.Equal(t, tt.wantDomain, domain)

			assert.Equal(t, tt.wantPath, u.Path())
		})
	}
}

func TestHostNameRoundTrip(t *testing.T) {
	hosts := []string{
		"a.b",
		"example.com",
		"api.example.com",
		"a.b.c.d.e.f",
		"my-app.azurewebsites.net",
		"a..b",
		".com",
	}

	for _, host := range hosts {
		t.Run(host, func(t *testing.T) {
			u := New(host + "/x/y")
			assert.Equal(t, host, u.HostName())
			assert.Equal(t, host, New("http://"+host).HostName())
		})
	}
}

func TestShortHost(t *testing.T) {
	t.Run("single label", func(t *testing.T) {
		u := New("localhost/health")

		domain, ok := u.Domain()
		assert.True(t, ok)
		assert.Equal(t, "localhost", domain)

		_, ok = u.Name()
		assert.False(t, ok, "name should be absent")

		assert.Equal(t, "", u.SubDomain())
		assert.Equal(t, "localhost", u.HostName())
		assert.Equal(t, "https://localhost/health", u.String())
	})

	t.Run("empty string", func(t *testing.T) {
		u := New("")

		domain, ok := u.Domain()
		assert.True(t, ok)
		assert.Equal(t, "", domain)

		_, ok = u.Name()
		assert.False(t, ok)
		assert.Equal(t, []string{}, u.Path())
		assert.Equal(t, "https://", u.String())
	})

	t.Run("scheme only", func(t *testing.T) {
		u := New("http://")
		assert.False(t, u.IsSecure())
		assert.Equal(t, "", u.HostName())
	})
}

func TestSchemeMatchesLeadingPrefixOnly(t *testing.T) {
	// A containment check would strip the first len("http://") bytes and mark
	// the URL insecure. Only a leading prefix is honoured.
	u := New("foo.com/http://bar")

	assert.True(t, u.IsSecure())
	assert.Equal(t, "foo.com", u.HostName())
	assert.Equal(t, []string{"http:", "", "bar"}, u.Path())
	assert.Equal(t, "https://foo.com/http://bar", u.String())

	legacyHost := strings.Split("foo.com/http://bar"[len(PrefixHTTP):], "/")[0]
	assert.NotEqual(t, legacyHost, u.HostName(), "must differ from the containment-based result")

	u = New("api.example.com/redirect/https://evil.test", WithSecure(false))
	assert.False(t, u.IsSecure())
	assert.Equal(t, "api.example.com", u.HostName())
}

func TestSchemeIsCaseSensitive(t *testing.T) {
	u := New("HTTP://example.com", WithSecure(true))
	assert.True(t, u.IsSecure())
	assert.Equal(t, "HTTP:", u.HostName())
}

func TestPort(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name string
		port any
		want *int
	}{
		{name: "int", port: 8080, want: intPtr(8080)},
		{name: "zero", port: 0, want: intPtr(0)},
		{name: "int64", port: int64(443), want: intPtr(443)},
		{name: "uint16", port: uint16(65535), want: intPtr(65535)},
		{name: "float truncated", port: 8080.9, want: intPtr(8080)},
		{name: "numeric string", port: "3000", want: intPtr(3000)},
		{name: "string with spaces", port: "  3000", want: intPtr(3000)},
		{name: "string leading integer", port: "8080/tcp", want: intPtr(8080)},
		{name: "decimal string", port: "12.9", want: intPtr(12)},
		{name: "plus sign", port: "+80", want: intPtr(80)},
		{name: "json number", port: json.Number("9000"), want: intPtr(9000)},
		{name: "int pointer", port: intPtr(5000), want: intPtr(5000)},
		{name: "not a number", port: "notanumber", want: nil},
		{name: "empty string", port: "", want: nil},
		{name: "sign only", port: "-", want: nil},
		{name: "nil", port: nil, want: nil},
		{name: "nil int pointer", port: (*int)(nil), want: nil},
		{name: "bool", port: true, want: nil},
		{name: "negative", port: -1, want: nil},
		{name: "negative string", port: "-80", want: nil},
		{name: "NaN", port: math.NaN(), want: nil},
		{name: "infinity", port: math.Inf(1), want: nil},
		{name: "overflow", port: "99999999999999999999", want: nil},
		{name: "slice", port: []int{80}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := New("a.b", WithPort(tt.port))
			got, ok := u.Port()
			if tt.want == nil {
				assert.False(t, ok)
				assert.Equal(t, 0, got)
				assert.Equal(t, "a.b", u.URL(true, false))
				return
			}
			assert.True(t, ok)
			assert.Equal(t, *tt.want, got)
		})
	}
}

func TestPortSerialization(t *testing.T) {
	u := New("a.b", WithPort(8080))
	assert.Equal(t, "a.b:8080", u.URL(true, false))
	assert.Equal(t, "a.b", u.URL(false, false))

	u = New("a.b", WithPort("notanumber"))
	_, ok := u.Port()
	assert.False(t, ok)
	assert.Equal(t, "a.b", u.URL(true, false))
}

func TestSetPortClearsOnBadInput(t *testing.T) {
	u := New("a.b", WithPort(80))
	u.SetPort("nope")
	_, ok := u.Port()
	assert.False(t, ok)

	u.SetPort("81")
	p, ok := u.Port()
	assert.True(t, ok)
	assert.Equal(t, 81, p)

	u.ClearPort()
	_, ok = u.Port()
	assert.False(t, ok)
}

func TestURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		opts      []Option
		addPort   bool
		addPrefix bool
		want      string
	}{
		{
			name:      "prefix and path",
			url:       "https://api.example.com/v1/users",
			opts:      []Option{WithPort(443)},
			addPrefix: true,
			want:      "https://api.example.com/v1/users",
		},
		{
			name:      "prefix path and port",
			url:       "https://api.example.com/v1/users",
			opts:      []Option{WithPort(443)},
			addPort:   true,
			addPrefix: true,
			want:      "https://api.example.com/v1/users:443",
		},
		{
			name:    "port without prefix",
			url:     "http://api.example.com",
			opts:    []Option{WithPort(8080)},
			addPort: true,
			want:    "api.example.com:8080",
		},
		{
			name:      "insecure prefix",
			url:       "http://example.com/a",
			addPrefix: true,
			want:      "http://example.com/a",
		},
		{
			name:      "no path has no trailing slash",
			url:       "a.b.com",
			addPrefix: true,
			want:      "https://a.b.com",
		},
		{
			name:      "port requested but absent",
			url:       "a.b.com/x",
			addPort:   true,
			addPrefix: true,
			want:      "https://a.b.com/x",
		},
		{
			name:      "trailing slash preserved",
			url:       "example.com/",
			addPrefix: true,
			want:      "https://example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := New(tt.url, tt.opts...)
			assert.Equal(t, tt.want, u.URL(tt.addPort, tt.addPrefix))
		})
	}
}

func TestFullURLAndString(t *testing.T) {
	u := New("https://api.example.com/v1/users", WithPort(443))

	assert.Equal(t, "https://api.example.com/v1/users", u.String())
	assert.Equal(t, "https://api.example.com/v1/users:443", u.FullURL())

	noPort := New("https://api.example.com/v1/users")
	assert.Equal(t, "https://api.example.com/v1/users", noPort.FullURL())
}

func TestEmptyPath(t *testing.T) {
	u := New("a.b.com")
	assert.Empty(t, u.Path())
	assert.NotNil(t, u.Path())
	assert.Equal(t, "", u.PathString())
	assert.False(t, strings.HasSuffix(u.String(), "/"))
}

func TestProtocol(t *testing.T) {
	assert.Equal(t, "HTTPS", New("https://a.b").Protocol())
	assert.Equal(t, "HTTP", New("http://a.b").Protocol())
	assert.Equal(t, "https", New("https://a.b").Scheme())
	assert.Equal(t, "http", New("http://a.b").Scheme())

	u := New("http://a.b")
	u.SetSecure(true)
	assert.Equal(t, "HTTPS", u.Protocol())
	assert.Equal(t, "https://a.b", u.String())
}

func TestSettersDoNotRederive(t *testing.T) {
	u := New("https://api.example.com/v1", WithPort(443))

	u.SetName("contoso")
	domain, _ := u.Domain()
	assert.Equal(t, "com", domain)
	assert.Equal(t, "api", u.SubDomain())
	assert.Equal(t, "api.contoso.com", u.HostName())

	u.SetDomain("net")
	u.SetSubDomain("")
	assert.Equal(t, "contoso.net", u.HostName())
	assert.Equal(t, "contoso.net", u.DomainName())

	u.SetPath([]string{"v2", "items"})
	assert.Equal(t, "https://contoso.net/v2/items", u.String())

	u.SetPathFromString("a/b/c")
	assert.Equal(t, []string{"a", "b", "c"}, u.Path())

	u.SetPathFromString("")
	assert.Empty(t, u.Path())

	u.SetPath(nil)
	assert.Equal(t, "https://contoso.net:443", u.FullURL())
}

func TestSetName_FillsAbsentLabel(t *testing.T) {
	u := New("localhost")
	u.SetName("my")
	assert.Equal(t, "my.localhost", u.HostName())
}

func TestSetURL(t *testing.T) {
	u := New("http://old.example.com/a", WithPort(8080))
	u.SetURL("new.example.org/b/c")

	assert.False(t, u.IsSecure(), "security flag falls back to the current value")
	assert.Equal(t, "new.example.org", u.HostName())
	assert.Equal(t, []string{"b", "c"}, u.Path())

	p, ok := u.Port()
	assert.True(t, ok)
	assert.Equal(t, 8080, p)

	u.SetURL("https://secure.example.org")
	assert.True(t, u.IsSecure())
	assert.Empty(t, u.Path())
}

func TestPathIsCopied(t *testing.T) {
	segments := []string{"a", "b"}
	u := New("example.com")
	u.SetPath(segments)
	segments[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, u.Path())

	got := u.Path()
	got[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, u.Path())
}

func TestGettersAreIdempotent(t *testing.T) {
	u := New("https://x.y.example.com/p/q", WithPort("8443"))

	assert.Equal(t, u.HostName(), u.HostName())
	assert.Equal(t, u.Path(), u.Path())
	assert.Equal(t, u.String(), u.String())
	assert.Equal(t, u.FullURL(), u.FullURL())
	assert.Equal(t, u.URL(true, false), u.URL(true, false))
	assert.Equal(t, u.Protocol(), u.Protocol())

	p1, ok1 := u.Port()
	p2, ok2 := u.Port()
	assert.Equal(t, p1, p2)
	assert.Equal(t, ok1, ok2)

	n1, _ := u.Name()
	n2, _ := u.Name()
	assert.Equal(t, n1, n2)
}

func TestFrom(t *testing.T) {
	u, err := From("http://api.example.com/v1", WithPort("8080"))
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.com/v1:8080", u.FullURL())

	tests := []struct {
		name     string
		raw      any
		wantType string
	}{
		{name: "nil", raw: nil, wantType: "nil"},
		{name: "int", raw: 42, wantType: "int"},
		{name: "map", raw: map[string]any{"url": "a.b"}, wantType: "map[string]interface {}"},
		{name: "string slice", raw: []string{"a.b"}, wantType: "[]string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := From(tt.raw)
			require.Error(t, err)
			assert.Nil(t, u)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var inputErr *InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.wantType, inputErr.Type)
			assert.Contains(t, err.Error(), "expected URL to be a string")
		})
	}
}

func TestClone(t *testing.T) {
	u := New("https://api.example.com/v1", WithPort(443))
	c := u.Clone()

	c.SetName("other")
	c.SetPort(80)
	c.SetPath([]string{"v2"})

	assert.Equal(t, "https://api.example.com/v1:443", u.FullURL())
	assert.Equal(t, "https://api.other.com/v2:80", c.FullURL())
}

func TestMarshalJSON(t *testing.T) {
	u := New("https://api.example.com/v1/users", WithPort(443))

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, true, got["secure"])
	assert.Equal(t, "HTTPS", got["protocol"])
	assert.Equal(t, "api", got["subDomain"])
	assert.Equal(t, "example", got["name"])
	assert.Equal(t, "com", got["domain"])
	assert.Equal(t, "api.example.com", got["hostName"])
	assert.Equal(t, []any{"v1", "users"}, got["path"])
	assert.Equal(t, float64(443), got["port"])
	assert.Equal(t, "https://api.example.com/v1/users", got["url"])
	assert.Equal(t, "https://api.example.com/v1/users:443", got["fullUrl"])

	short, err := json.Marshal(New("localhost"))
	require.NoError(t, err)
	assert.Contains(t, string(short), `"name":null`)
	assert.Contains(t, string(short), `"port":null`)
	assert.Contains(t, string(short), `"path":[]`)
}

func TestZeroValue(t *testing.T) {
	var u URL
	assert.False(t, u.IsSecure())
	assert.Equal(t, "", u.HostName())
	assert.Equal(t, "http://", u.String())
	assert.NotNil(t, u.Path())
}

func TestNormalizationIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetupLoggerWithWriter(&buf, true, false)
	t.Cleanup(func() { logutil.SetupLogger(false, false) })

	u := New("localhost", WithPort(80))
	u.SetPort("abc")

	out := buf.String()
	assert.Contains(t, out, "host has fewer than two labels")
	assert.Contains(t, out, "port cleared")
	assert.Contains(t, out, "component=urlvalue")
}
