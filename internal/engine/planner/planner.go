// Package planner turns a loaded workspace into a validated graph of build steps.
package planner

import (
	"slices"
	"strings"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/rodata/internal/engine/rodata"
	"go.trai.ch/zerr"
)

// Plan is the set of commands planned for a workspace together with the graph ordering them.
type Plan struct {
	Workspace *domain.Workspace
	Graph     *domain.Graph
	commands  map[domain.InternedString]ports.Command
}

// NewPlan assembles a plan from an already validated graph and the commands of its steps.
func NewPlan(ws *domain.Workspace, graph *domain.Graph, commands map[domain.InternedString]ports.Command) *Plan {
	return &Plan{Workspace: ws, Graph: graph, commands: commands}
}

// Command returns the command planned under the given step name.
func (p *Plan) Command(name domain.InternedString) (ports.Command, bool) {
	cmd, ok := p.commands[name]
	return cmd, ok
}

// Select narrows the plan to the steps matched by targets and everything they depend on.
// A target is a step name, a unit name or a resource path, with or without the "$S/" prefix.
// An empty target list selects the whole plan.
func (p *Plan) Select(targets []string) (*Plan, error) {
	if len(targets) == 0 {
		return p, nil
	}

	var names []domain.InternedString
	for _, target := range targets {
		matched := p.match(target)
		if len(matched) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrStepNotFound, "no step matches target"), "target", target)
		}
		names = append(names, matched...)
	}

	sub, err := p.Graph.Subgraph(names)
	if err != nil {
		return nil, err
	}
	return &Plan{Workspace: p.Workspace, Graph: sub, commands: p.commands}, nil
}

func (p *Plan) match(target string) []domain.InternedString {
	if _, ok := p.Graph.GetStep(domain.NewInternedString(target)); ok {
		return []domain.InternedString{domain.NewInternedString(target)}
	}

	resource := target
	if !strings.HasPrefix(target, domain.SourceRoot+"/") {
		resource = domain.SourcePath(target)
	}

	var out []domain.InternedString
	for step := range p.Graph.Walk() {
		if step.Unit.String() == target || step.Resource == resource {
			out = append(out, step.Name)
		}
	}
	return out
}

// Planner builds plans using the registered rules.
type Planner struct {
	rules ports.RuleRegistry
}

// New creates a Planner.
func New(rules ports.RuleRegistry) *Planner {
	return &Planner{rules: rules}
}

// Plan runs every unit's rule over its resources and links the resulting steps.
// The first rule error aborts planning.
func (p *Planner) Plan(ws *domain.Workspace) (*Plan, error) {
	plan := &Plan{
		Workspace: ws,
		Graph:     domain.NewGraph(),
		commands:  make(map[domain.InternedString]ports.Command),
	}

	for _, unit := range ws.Units {
		if err := p.planUnit(plan, unit); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPlanFailed.Error()), "unit", unit.Name())
		}
	}

	plan.Graph.Link()
	if err := plan.Graph.Validate(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPlanFailed.Error())
	}
	return plan, nil
}

func (p *Planner) planUnit(plan *Plan, unit *domain.Unit) error {
	ruleName := unit.Rule()
	if ruleName == "" {
		ruleName = rodata.RuleName
	}
	rule, err := p.rules.Lookup(ruleName)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidRule, err.Error()), "rule", ruleName)
	}

	for _, resource := range unit.Resources() {
		cmd, err := rule(resource, unit)
		if err != nil {
			return zerr.With(err, "resource", resource)
		}

		step := newStep(unit, resource, cmd)
		if err := plan.Graph.AddStep(step); err != nil {
			return err
		}
		plan.commands[step.Name] = cmd
	}
	return nil
}

func newStep(unit *domain.Unit, resource string, cmd ports.Command) *domain.Step {
	return &domain.Step{
		Name:     domain.NewInternedString(domain.StepName(unit.Name(), resource)),
		Unit:     domain.NewInternedString(unit.Name()),
		Resource: resource,
		Descr:    cmd.Descr(),
		Inputs:   resolveAll(unit, cmd.Inputs()),
		Outputs:  resolveAll(unit, cmd.Outputs()),
		Tools:    domain.NewInternedStrings(cmd.Tools()),
		Flags:    slices.Clone(cmd.Flags()),
	}
}

func resolveAll(unit *domain.Unit, logical []string) []domain.InternedString {
	resolved := make([]string, len(logical))
	for i, p := range logical {
		resolved[i] = unit.ResolvePath(p)
	}
	return domain.NewInternedStrings(resolved)
}
