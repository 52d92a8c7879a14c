// Package registry maintains named mask definitions and mints
// per-field reformatters from them.
//
// A Definition describes a mask by name: either a template for the
// placeholder formatter or the grouping variant. Definitions are
// registered once (built-ins at construction, more from configuration)
// and looked up by the form layer when fields are created.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/maskedit/internal/mask"
)

// Errors returned by registry operations.
var (
	// ErrMaskAlreadyRegistered indicates a duplicate mask name.
	ErrMaskAlreadyRegistered = errors.New("mask already registered")

	// ErrMaskNotFound indicates the named mask doesn't exist.
	ErrMaskNotFound = errors.New("mask not found")

	// ErrBadDefinition indicates a definition that is neither a
	// template mask nor the grouping variant, or both.
	ErrBadDefinition = errors.New("bad mask definition")
)

// Definition describes a named mask.
type Definition struct {
	// Name is the unique lookup key.
	Name string

	// Template is the placeholder template ("??/??"). Empty when
	// Grouping is set.
	Template string

	// Grouping selects the fixed-group variant instead of a template.
	Grouping bool
}

// Validate checks the definition is internally consistent.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrBadDefinition)
	}
	if d.Grouping == (d.Template != "") {
		return fmt.Errorf("%w: %s must set exactly one of template or grouping", ErrBadDefinition, d.Name)
	}
	return nil
}

// NewReformatter constructs a fresh reformatter for this definition.
// Template formatters are stateless, but the grouping variant caches
// its raw string per instance, so every field gets its own.
func (d Definition) NewReformatter() (mask.Reformatter, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Grouping {
		return mask.NewGrouping(), nil
	}
	return mask.New(d.Template)
}

// Registry maintains all known mask definitions.
type Registry struct {
	mu    sync.RWMutex
	masks map[string]Definition
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{masks: make(map[string]Definition)}
}

// NewWithDefaults creates a registry with the built-in masks.
func NewWithDefaults() *Registry {
	r := New()
	r.RegisterDefaults()
	return r
}

// RegisterDefaults registers the built-in mask set.
func (r *Registry) RegisterDefaults() {
	r.MustRegister(Definition{Name: "expiry", Template: "??/??"})
	r.MustRegister(Definition{Name: "date", Template: "??/??/????"})
	r.MustRegister(Definition{Name: "phone", Template: "(???) ???-????"})
	r.MustRegister(Definition{Name: "card", Grouping: true})
}

// Register adds a mask definition to the registry.
// Returns an error if the definition is invalid or the name is taken.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.masks[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrMaskAlreadyRegistered, def.Name)
	}
	r.masks[def.Name] = def
	return nil
}

// MustRegister registers a definition and panics on error.
// Useful for registering built-in masks at construction time.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Get returns the definition for the given name.
func (r *Registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.masks[name]
	return def, ok
}

// Has checks if a mask is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// NewReformatter constructs a fresh reformatter for the named mask.
func (r *Registry) NewReformatter(name string) (mask.Reformatter, error) {
	def, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMaskNotFound, name)
	}
	return def.NewReformatter()
}

// Names returns all registered mask names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.masks))
	for name := range r.masks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
