package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rodata/internal/core/domain"
)

func TestStepStatus(t *testing.T) {
	tests := []struct {
		status     domain.StepStatus
		isTerminal bool
	}{
		{domain.StepStatusPending, false},
		{domain.StepStatusRunning, false},
		{domain.StepStatusCompleted, true},
		{domain.StepStatusFailed, true},
		{domain.StepStatusCached, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
			assert.Equal(t, tt.status, domain.ParseStepStatus(string(tt.status)))
		})
	}

	assert.Equal(t, domain.StepStatusCached, domain.ParseStepStatus("CACHED"))
	assert.Equal(t, domain.StepStatusPending, domain.ParseStepStatus("unknown"))
}
