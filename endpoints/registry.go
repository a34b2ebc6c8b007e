// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package endpoints

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jongio/azd-endpoint/logutil"
	"github.com/jongio/azd-endpoint/security"
	"github.com/jongio/azd-endpoint/urlvalue"
)

var (
	// ErrEndpointNotFound is returned when a named endpoint is not registered.
	ErrEndpointNotFound = errors.New("endpoint not found")
	// ErrDuplicateEndpoint is returned when registering a name that is taken.
	ErrDuplicateEndpoint = errors.New("endpoint already registered")
)

// Endpoint is a named URL.
type Endpoint struct {
	Name string        `json:"name"`
	URL  *urlvalue.URL `json:"url"`
}

// Registry holds named endpoints. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]*urlvalue.URL
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		endpoints: make(map[string]*urlvalue.URL),
	}
}

// Register adds an endpoint. The registry keeps its own copy of u.
func (r *Registry) Register(name string, u *urlvalue.URL) error {
	if err := security.ValidateEndpointName(name); err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("endpoint %s: url cannot be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.endpoints[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEndpoint, name)
	}
	r.endpoints[name] = u.Clone()
	registrationsTotal.WithLabelValues("register").Inc()

	logutil.Debug("registered endpoint", "component", "endpoints", "name", name, "url", u.String())
	return nil
}

// Unregister removes an endpoint.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.endpoints[name]; !exists {
		return fmt.Errorf("%w: %s", ErrEndpointNotFound, name)
	}
	delete(r.endpoints, name)
	registrationsTotal.WithLabelValues("unregister").Inc()

	logutil.Debug("unregistered endpoint", "component", "endpoints", "name", name)
	return nil
}

// Get returns a copy of the named endpoint.
func (r *Registry) Get(name string) (Endpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.endpoints[name]
	if !exists {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrEndpointNotFound, name)
	}
	return Endpoint{Name: name, URL: u.Clone()}, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.endpoints))
	for name := range r.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListAll returns copies of all endpoints sorted by name.
func (r *Registry) ListAll() []Endpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Endpoint, 0, len(r.endpoints))
	for name, u := range r.endpoints {
		result = append(result, Endpoint{Name: name, URL: u.Clone()})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.endpoints)
}

// Clear removes all endpoints.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.endpoints = make(map[string]*urlvalue.URL)
	logutil.Debug("cleared registry", "component", "endpoints")
}
