package experiment

import (
	"fmt"
	"sort"

	"github.com/avik-so/lorenzlab/internal/dynamo"
	"github.com/avik-so/lorenzlab/internal/field"
	"github.com/avik-so/lorenzlab/internal/integrators"
)

// Registry maps names from configuration to field and integrator
// constructors.
type Registry struct {
	fields      map[string]func() dynamo.Field
	integrators map[string]func() dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		fields:      make(map[string]func() dynamo.Field),
		integrators: make(map[string]func() dynamo.Integrator),
	}

	r.fields["lorenz"] = func() dynamo.Field { return field.NewLorenz() }
	r.fields["rossler"] = func() dynamo.Field { return field.NewRossler() }

	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }
	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }

	return r
}

func (r *Registry) GetField(name string) (dynamo.Field, error) {
	fn, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// FieldFactory returns a constructor for repeated instantiation, e.g. one
// field per ensemble goroutine.
func (r *Registry) FieldFactory(name string) (func() dynamo.Field, error) {
	fn, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", name)
	}
	return fn, nil
}

// IntegratorFactory returns a constructor for repeated instantiation, one
// integrator per goroutine (scratch buffers are not shared).
func (r *Registry) IntegratorFactory(name string) (func() dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn, nil
}

func (r *Registry) ListFields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
