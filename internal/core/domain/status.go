package domain

import "strings"

// StepStatus represents the lifecycle state of a step in the build graph.
type StepStatus string

const (
	// StepStatusPending indicates the step is waiting for its dependencies.
	StepStatusPending StepStatus = "pending"
	// StepStatusRunning indicates the step is currently executing.
	StepStatusRunning StepStatus = "running"
	// StepStatusCompleted indicates the step executed successfully.
	StepStatusCompleted StepStatus = "completed"
	// StepStatusFailed indicates the step execution failed.
	StepStatusFailed StepStatus = "failed"
	// StepStatusCached indicates the step was skipped because its build info was up to date.
	StepStatusCached StepStatus = "cached"
)

// IsTerminal checks if a status is a terminal state.
func (s StepStatus) IsTerminal() bool {
	switch s {
	case StepStatusCompleted, StepStatusFailed, StepStatusCached:
		return true
	default:
		return false
	}
}

// ParseStepStatus converts a string to a StepStatus, defaulting to pending if unknown.
func ParseStepStatus(s string) StepStatus {
	switch st := StepStatus(strings.ToLower(s)); st {
	case StepStatusRunning, StepStatusCompleted, StepStatusFailed, StepStatusCached:
		return st
	default:
		return StepStatusPending
	}
}
