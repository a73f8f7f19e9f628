package gensyn

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the table of gate classes that can be instantiated by name.
// Classes are added once, typically at startup, and never change or go away
// afterwards, so lookups are safe from any goroutine.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]*Definition
}

func NewRegistry() *Registry {
	return &Registry{definitions: make(map[string]*Definition)}
}

// Register validates the class and adds it to the registry. On error nothing
// is added.
func (r *Registry) Register(c Class) (*Definition, error) {
	d, err := newDefinition(c)
	if err != nil {
		return nil, fmt.Errorf("cannot register gate class: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.definitions[d.name]; exists {
		return nil, fmt.Errorf("cannot register gate class: %w: %s", ErrDuplicateName, d.name)
	}
	r.definitions[d.name] = d
	return d, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(c Class) *Definition {
	d, err := r.Register(c)
	if err != nil {
		panic("gensyn registry: " + err.Error())
	}
	return d
}

// Lookup returns the definition of a registered class.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.definitions[name]
	return d, ok
}

// Names returns the names of all registered classes in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ret := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
