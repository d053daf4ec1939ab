// Package registry provides a shared key/value store used to hand data from
// one scene to the next (for example, the final score of a finished run).
package registry

import (
	"fmt"
	"sync"
)

// Well-known keys.
const (
	// KeyFinalScore holds the HUD score text of the last finished run.
	KeyFinalScore = "final-score"
)

// Registry is a concurrency-safe key/value store.
// The zero value is ready to use.
type Registry struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{values: make(map[string]any)}
}

// Set stores a value, replacing any previous one.
func (r *Registry) Set(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.values == nil {
		r.values = make(map[string]any)
	}
	r.values[key] = value
}

// Get returns the value for key and whether it was present.
func (r *Registry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	return v, ok
}

// String returns the value for key formatted as a string.
// Missing keys return an empty string.
func (r *Registry) String(key string) string {
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprint(v)
}
