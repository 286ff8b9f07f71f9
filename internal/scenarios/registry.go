package scenarios

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/drills/pkg/types"
)

// Registry indexes scenarios by name and preserves registration order.
type Registry struct {
	order  []types.Scenario
	byName map[string]types.Scenario
}

// NewRegistry builds a Registry from scenarios. Duplicate names are rejected.
func NewRegistry(scenarios ...types.Scenario) (*Registry, error) {
	r := &Registry{byName: make(map[string]types.Scenario, len(scenarios))}
	for _, s := range scenarios {
		if _, ok := r.byName[s.Name()]; ok {
			return nil, fmt.Errorf("duplicate scenario %q", s.Name())
		}
		r.byName[s.Name()] = s
		r.order = append(r.order, s)
	}
	return r, nil
}

// Default returns a Registry holding every built-in scenario.
func Default() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic(err) // built-in names are fixed
	}
	return r
}

// Builtin returns a fresh instance of every built-in scenario in
// presentation order.
func Builtin() []types.Scenario {
	return []types.Scenario{
		FlowControl{},
		Expressions{},
		DirectionScenario{},
		ColorScenario{},
		DrinkScenario{},
		CoordinateScenario{},
		NameMatch{},
		Tuples{},
	}
}

// Lookup returns the scenario registered under name.
// Returns ErrScenarioNotFound if there is none.
func (r *Registry) Lookup(name string) (types.Scenario, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrScenarioNotFound, name)
	}
	return s, nil
}

// All returns the registered scenarios in registration order.
func (r *Registry) All() []types.Scenario {
	return append([]types.Scenario(nil), r.order...)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, s := range r.order {
		names = append(names, s.Name())
	}
	return names
}

// writeLines writes each line to out followed by a newline.
func writeLines(out io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
