// Package domain contains the core domain models of the resource embedding build.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents a dependency graph of steps.
type Graph struct {
	steps          map[InternedString]Step
	producers      map[InternedString]InternedString
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		steps:     make(map[InternedString]Step),
		producers: make(map[InternedString]InternedString),
	}
}

// AddStep adds a step to the graph.
// It returns an error if a step with the same name already exists or if one of its
// outputs is already declared by another step.
func (g *Graph) AddStep(s *Step) error {
	if _, exists := g.steps[s.Name]; exists {
		return zerr.With(zerr.Wrap(ErrStepAlreadyExists, "cannot add step"), "step", s.Name.String())
	}
	for _, out := range s.Outputs {
		if owner, taken := g.producers[out]; taken {
			err := zerr.With(zerr.Wrap(ErrOutputConflict, "cannot add step"), "step", s.Name.String())
			err = zerr.With(err, "output", out.String())
			return zerr.With(err, "declared_by", owner.String())
		}
	}
	for _, out := range s.Outputs {
		g.producers[out] = s.Name
	}
	g.steps[s.Name] = *s
	return nil
}

// Link makes every step depend on the steps producing its inputs.
func (g *Graph) Link() {
	for name, s := range g.steps {
		deps := slices.Clone(s.Dependencies)
		for _, in := range s.Inputs {
			producer, ok := g.producers[in]
			if !ok || producer == name || slices.Contains(deps, producer) {
				continue
			}
			deps = append(deps, producer)
		}
		s.Dependencies = deps
		g.steps[name] = s
	}
}

// Validate checks for cycles in the graph using a topological sort.
// It populates the execution order if successful. Steps are visited in name order
// so the execution order is deterministic.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.steps))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		step, exists := g.steps[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "invalid graph"), "dependency", u.String())
		}

		for _, dep := range step.Dependencies {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, name := range g.sortedNames() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	startIdx := slices.Index(path, dep)
	names := make([]string, 0, len(path)-startIdx+1)
	for _, node := range path[startIdx:] {
		names = append(names, node.String())
	}
	names = append(names, dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid graph"), "cycle", strings.Join(names, " -> "))
}

// Walk returns an iterator that yields steps in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.steps[name]) {
				return
			}
		}
	}
}

// GetStep returns the step with the given name.
func (g *Graph) GetStep(name InternedString) (Step, bool) {
	s, ok := g.steps[name]
	return s, ok
}

// StepCount returns the number of steps in the graph.
func (g *Graph) StepCount() int {
	return len(g.steps)
}

// Dependents returns the names of the steps that depend directly on name.
func (g *Graph) Dependents(name InternedString) []InternedString {
	var out []InternedString
	for _, n := range g.sortedNames() {
		if slices.Contains(g.steps[n].Dependencies, name) {
			out = append(out, n)
		}
	}
	return out
}

// Subgraph returns a validated graph holding the named steps and everything they depend on.
func (g *Graph) Subgraph(names []InternedString) (*Graph, error) {
	sub := NewGraph()
	queue := slices.Clone(names)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, done := sub.steps[name]; done {
			continue
		}
		step, ok := g.steps[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrStepNotFound, "cannot select step"), "step", name.String())
		}
		if err := sub.AddStep(&step); err != nil {
			return nil, err
		}
		queue = append(queue, step.Dependencies...)
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	return sub, nil
}

func (g *Graph) sortedNames() []InternedString {
	names := make([]InternedString, 0, len(g.steps))
	for name := range g.steps {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})
	return names
}
