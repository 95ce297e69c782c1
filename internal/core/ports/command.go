package ports

import (
	"context"

	"go.trai.ch/rodata/internal/core/domain"
)

// Command is one build step produced by a rule for a single resource.
//
// The build calls Descr, Inputs, Outputs, Tools and Flags while planning, then Run exactly once
// after the inputs are ready and the tool binary has been resolved.
//
//go:generate mockgen -source=command.go -destination=mocks/mock_command.go -package=mocks
type Command interface {
	// Descr returns the progress description of the step.
	Descr() domain.Descr
	// Inputs returns the logical input paths.
	Inputs() []string
	// Outputs returns the logical output paths.
	Outputs() []string
	// Tools returns the identifiers of the external tools the command needs.
	Tools() []string
	// Flags returns the derived flags, for information only.
	Flags() []string
	// Run performs the transformation. binary is the resolved path of the first tool, or empty
	// when the command needs no tool.
	Run(ctx context.Context, binary string) error
}

// CommandLiner is implemented by commands that invoke an external tool and can report
// the exact argument vector they would run.
type CommandLiner interface {
	CommandLine(binary string) []string
}

// Rule maps a resource path and a unit to a Command.
type Rule func(path string, unit BuildUnit) (Command, error)

// RuleRegistry holds the named rules available to build units.
type RuleRegistry interface {
	// Register adds a rule under name. Registering a name twice is an error.
	Register(name string, rule Rule) error
	// Lookup returns the rule registered under name.
	Lookup(name string) (Rule, error)
	// Names returns the registered rule names in sorted order.
	Names() []string
}
