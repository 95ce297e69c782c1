package ports

import "go.trai.ch/rodata/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeInputHash hashes the step definition, the resolved tool path and the input file contents.
	ComputeInputHash(step *domain.Step, toolPath string) (string, error)
	// ComputeFileHash hashes the contents of the given files in order.
	ComputeFileHash(paths []string) (string, error)
}
