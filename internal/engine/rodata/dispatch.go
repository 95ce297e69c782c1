package rodata

import (
	"go.trai.ch/rodata/internal/core/ports"
)

// RuleName is the name the resource embedding rule is registered under.
const RuleName = "rodata"

// Architectures recognised by the dispatcher.
var knownArchitectures = []string{
	"ARCH_X86_64", "ARCH_I386", "ARCH_I686",
	"ARCH_AARCH64", "ARCH_ARM", "ARCH_ARM64", "ARCH_ARM7", "ARCH_PPC64LE",
}

type selector struct {
	name  string
	match func(ports.BuildUnit) bool
	build func(r *Rules, path string, unit ports.BuildUnit) (ports.Command, error)
}

// selectors are tried in order; defaultSelector applies when none matches.
var selectors = []selector{
	{
		name: "source",
		match: func(u ports.BuildUnit) bool {
			return anyEnabled(u, "ARCH_AARCH64", "ARCH_ARM", "ARCH_PPC64LE")
		},
		build: func(_ *Rules, path string, unit ports.BuildUnit) (ports.Command, error) {
			return NewSource(path, unit), nil
		},
	},
}

var defaultSelector = selector{
	name: "object",
	build: func(r *Rules, path string, unit ports.BuildUnit) (ports.Command, error) {
		return NewObject(path, unit, r.executor)
	},
}

// Rules builds rodata commands. It carries the collaborators commands need at run time.
type Rules struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewRules creates the rule set.
func NewRules(executor ports.Executor, logger ports.Logger) *Rules {
	return &Rules{executor: executor, logger: logger}
}

// ROData selects the command embedding the resource at path for unit.
func (r *Rules) ROData(path string, unit ports.BuildUnit) (ports.Command, error) {
	for _, s := range selectors {
		if s.match(unit) {
			return s.build(r, path, unit)
		}
	}

	if !anyEnabled(unit, knownArchitectures...) {
		r.logger.Warn("unit enables no known architecture, embedding through the assembler",
			"unit", unit.Name(), "path", path)
	}
	return defaultSelector.build(r, path, unit)
}

// Register adds the rodata rule to registry.
func (r *Rules) Register(registry ports.RuleRegistry) error {
	return registry.Register(RuleName, r.ROData)
}
