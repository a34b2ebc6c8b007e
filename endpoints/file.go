// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package endpoints

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jongio/azd-endpoint/fileutil"
	"github.com/jongio/azd-endpoint/logutil"
	"github.com/jongio/azd-endpoint/security"
	"github.com/jongio/azd-endpoint/urlutil"
	"github.com/jongio/azd-endpoint/urlvalue"
)

const (
	// DefaultFile is the definitions file used when none is given.
	DefaultFile = "endpoints.yaml"
	// EnvFile overrides DefaultFile.
	EnvFile = "AZD_ENDPOINT_FILE"
)

// LoadOptions controls how definitions are checked while loading.
type LoadOptions struct {
	// Strict runs urlutil.Validate on every endpoint.
	Strict bool
	// HTTPSOnly runs urlutil.ValidateHTTPSOnly on every endpoint. Implies Strict.
	HTTPSOnly bool
}

type definition struct {
	URL    any   `yaml:"url"`
	Port   any   `yaml:"port,omitempty"`
	Secure *bool `yaml:"secure,omitempty"`
}

type document struct {
	Endpoints map[string]definition `yaml:"endpoints"`
}

// ResolveFile picks the definitions file: flagValue when set, then
// AZD_ENDPOINT_FILE, then DefaultFile.
func ResolveFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvFile); env != "" {
		return env
	}
	return DefaultFile
}

// Load reads definitions from path.
func Load(path string, opts LoadOptions) (*Registry, error) {
	if err := security.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid endpoints file: %w", err)
	}

	// #nosec G304 -- Path validated by security.ValidatePath
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read endpoints file: %w", err)
	}

	if errors.Is(security.ValidateFilePermissions(path), security.ErrInsecureFilePermissions) {
		logutil.Warn("endpoints file is writable by group or others", "file", path)
	}

	reg, err := Decode(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Decode reads definitions from r. Endpoints are processed in name order and
// the first invalid one aborts decoding.
func Decode(r io.Reader, opts LoadOptions) (*Registry, error) {
	log := logutil.NewLogger("endpoints").WithOperation("decode")

	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse endpoints: %w", err)
	}

	names := make([]string, 0, len(doc.Endpoints))
	for name := range doc.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	reg := NewRegistry()
	for _, name := range names {
		u, err := doc.Endpoints[name].build(opts)
		if err == nil {
			err = reg.Register(name, u)
		}
		if err != nil {
			definitionsTotal.WithLabelValues(resultInvalid).Inc()
			return nil, fmt.Errorf("endpoint %s: %w", name, err)
		}
		definitionsTotal.WithLabelValues(resultLoaded).Inc()
		log.WithEndpoint(name).Debug("loaded endpoint", "url", u.FullURL())
	}

	log.Debug("endpoints decoded", "count", reg.Len())
	return reg, nil
}

func (d definition) build(opts LoadOptions) (*urlvalue.URL, error) {
	urlOpts := []urlvalue.Option{urlvalue.WithPort(d.Port)}
	if d.Secure != nil {
		urlOpts = append(urlOpts, urlvalue.WithSecure(*d.Secure))
	}

	u, err := urlvalue.From(d.URL, urlOpts...)
	if err != nil {
		return nil, err
	}

	switch {
	case opts.HTTPSOnly:
		err = urlutil.ValidateHTTPSOnly(u)
	case opts.Strict:
		err = urlutil.Validate(u)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Encode writes reg as YAML. The scheme is written into url, so secure is
// never emitted.
func Encode(w io.Writer, reg *Registry) error {
	doc := document{Endpoints: make(map[string]definition)}
	for _, ep := range reg.ListAll() {
		def := definition{URL: ep.URL.String()}
		if port, ok := ep.URL.Port(); ok {
			def.Port = port
		}
		doc.Endpoints[ep.Name] = def
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode endpoints: %w", err)
	}
	return enc.Close()
}

// Save writes reg to path atomically.
func Save(path string, reg *Registry) error {
	if err := security.ValidatePath(path); err != nil {
		return fmt.Errorf("invalid endpoints file: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, reg); err != nil {
		return err
	}
	if err := fileutil.AtomicWriteFile(path, buf.Bytes(), fileutil.FilePermission); err != nil {
		return fmt.Errorf("failed to write endpoints file: %w", err)
	}

	logutil.Debug("saved endpoints", "component", "endpoints", "file", path, "count", reg.Len())
	return nil
}
