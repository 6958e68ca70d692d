// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package element

import (
	"fmt"
	"sort"
	"sync"
)

// Descriptor tells the Builder how to construct an element from a node.
type Descriptor struct {
	// Name is the element name used in SML.
	Name string
	// Fields are resolved in order from the node properties. Children are not fields,
	// they are passed to Container.AddChild after construction.
	Fields []Field
	// New constructs the element. Values contains every declared field, either
	// resolved from the node or set to its default.
	New func(v Values) (Element, error)
}

// Field returns the declared field of that name.
func (d *Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Registry maps element names to descriptors.
// Register all element types before parsing. Lookups may happen concurrently.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

// NewRegistry returns an empty registry. Use Builtin for one with all standard elements.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: map[string]*Descriptor{},
	}
}

// Register adds or replaces the descriptor for d.Name.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("cannot register element without a name")
	}

	if d.New == nil {
		return fmt.Errorf("element '%s' has no constructor", d.Name)
	}

	fields := make([]Field, 0, len(d.Fields))
	seen := map[string]bool{}

	for _, f := range d.Fields {
		nf, err := f.normalize()
		if err != nil {
			return fmt.Errorf("element '%s': %w", d.Name, err)
		}

		if seen[nf.Name] {
			return fmt.Errorf("element '%s': field '%s' declared twice", d.Name, nf.Name)
		}

		seen[nf.Name] = true
		fields = append(fields, nf)
	}

	d.Fields = fields

	r.mu.Lock()
	defer r.mu.Unlock()

	r.descriptors[d.Name] = &d

	return nil
}

// MustRegister is like Register but panics on an invalid descriptor.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered for name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[name]

	return d, ok
}

// Names returns all registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.descriptors))
	for n := range r.descriptors {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}
