package adapters

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-planconfig/pkg/logging"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// Registry stores adapters by name.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// Default returns a registry holding every built-in adapter.
func Default() *Registry {
	registry := NewRegistry()
	registry.MustRegister(NewDesignJSON())
	registry.MustRegister(NewFigmaNodes())
	registry.MustRegister(NewDBMappingSheet())
	registry.MustRegister(NewValidationSheet())
	registry.MustRegister(NewFormulaXML())
	return registry
}

// Register adds an adapter by its Name(). Duplicate names return an error.
func (r *Registry) Register(adapter Adapter) error {
	if adapter == nil {
		return errors.New("adapters: adapter is required")
	}
	name := normalizeName(adapter.Name())
	if name == "" {
		return errors.New("adapters: adapter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("adapters: adapter %q already registered", name)
	}
	r.adapters[name] = adapter
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(adapter Adapter) {
	if err := r.Register(adapter); err != nil {
		panic(err)
	}
}

// Get retrieves an adapter by name.
func (r *Registry) Get(name string) (Adapter, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, errors.New("adapters: adapter name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[key]
	if !ok {
		return nil, fmt.Errorf("adapters: adapter %q not found", key)
	}
	return adapter, nil
}

// List returns a sorted list of adapter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForRole returns the adapters serving role, sorted by name.
func (r *Registry) ForRole(role Role) []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Adapter
	for _, name := range r.sortedNames() {
		if adapter := r.adapters[name]; adapter.Role() == role {
			out = append(out, adapter)
		}
	}
	return out
}

// Detect returns every adapter, of any role, that matches the payload.
func (r *Registry) Detect(src sources.Source, raw []byte) []Adapter {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []Adapter
	for _, name := range r.sortedNames() {
		adapter := r.adapters[name]
		if adapter.Detect(src, raw) {
			matches = append(matches, adapter)
		}
	}
	return matches
}

// Resolve picks the first adapter for role, by name, that detects doc.
func (r *Registry) Resolve(role Role, doc sources.Document) (Adapter, error) {
	raw := doc.Raw()
	for _, adapter := range r.ForRole(role) {
		if adapter.Detect(doc.Source(), raw) {
			return adapter, nil
		}
	}
	return nil, fmt.Errorf("%w: %s source %q", ErrNoAdapter, role, doc.Location())
}

// Decode resolves the adapter for role and decodes doc with it.
func (r *Registry) Decode(ctx context.Context, role Role, doc sources.Document) (sources.Bundle, error) {
	if ctx == nil {
		return sources.Bundle{}, errors.New("adapters: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return sources.Bundle{}, err
	}
	adapter, err := r.Resolve(role, doc)
	if err != nil {
		return sources.Bundle{}, err
	}

	logging.FromContext(ctx).Debug().
		Str("adapter", adapter.Name()).
		Str("role", string(role)).
		Str("location", doc.Location()).
		Msg("decoding source")

	bundle, err := adapter.Decode(ctx, doc)
	if err != nil {
		return sources.Bundle{}, fmt.Errorf("adapters: %s: %w", adapter.Name(), err)
	}
	return bundle, nil
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
