package table

import (
	"fmt"
	"sort"
)

// Registry maps function names to constructors. Lookups build a fresh
// Function value per call so concurrent invocations never share state.
type Registry struct {
	builders map[string]func() Function
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: map[string]func() Function{}}
}

// Register adds a function constructor under the name its product reports.
func (r *Registry) Register(builder func() Function) error {
	name := builder().Name()
	if _, ok := r.builders[name]; ok {
		return fmt.Errorf("table function %q registered twice", name)
	}
	r.builders[name] = builder
	return nil
}

// Lookup builds a fresh Function for name.
func (r *Registry) Lookup(name string) (Function, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown table function %q", ErrInvalidArgument, name)
	}
	return builder(), nil
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
