package domain

import "time"

// BuildInfo records the hashes of a successfully executed step.
type BuildInfo struct {
	StepName   string    `json:"step_name,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
