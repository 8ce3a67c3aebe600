// Package payload holds the request-building primitives shared by the API
// facade and the resource sub-clients: a concurrency-safe header mapping
// that is shared by reference, and the JSON body bundle produced by
// (*api.Facade).ToJSON.
package payload

import (
	"net/http"
	"sync"
)

// Headers is a mutable header mapping shared between the facade and every
// resource handle. Handles keep the pointer, never a copy, so updates made
// by the facade are visible to them immediately.
//
// All methods are safe for concurrent use. Readers that need several
// values at once should take a snapshot with Clone or ApplyTo so they never
// observe a half-applied update.
type Headers struct {
	mu sync.RWMutex
	h  http.Header
}

// NewHeaders returns a mapping pre-populated with the given name/value pairs.
func NewHeaders(values map[string]string) *Headers {
	h := &Headers{h: make(http.Header, len(values))}
	for k, v := range values {
		h.h.Set(k, v)
	}
	return h
}

// Set replaces the value of the named header.
func (h *Headers) Set(name, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.h.Set(name, value)
}

// Delete removes the named header.
func (h *Headers) Delete(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.h.Del(name)
}

// Get returns the value of the named header or "" when absent.
func (h *Headers) Get(name string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.h.Get(name)
}

// Has reports whether the named header is present.
func (h *Headers) Has(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.h[http.CanonicalHeaderKey(name)]
	return ok
}

// Clone returns a consistent snapshot of the mapping.
func (h *Headers) Clone() http.Header {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.h.Clone()
}

// ApplyTo copies every field into dst, replacing existing values.
func (h *Headers) ApplyTo(dst http.Header) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for k, vv := range h.h {
		dst[k] = append([]string(nil), vv...)
	}
}
