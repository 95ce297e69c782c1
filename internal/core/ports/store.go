package ports

import "go.trai.ch/rodata/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving build information.
// root is the workspace root the store lives under.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for a given step name.
	// Returns nil, nil if not found.
	Get(root, stepName string) (*domain.BuildInfo, error)

	// Put stores the build info.
	Put(root string, info domain.BuildInfo) error

	// Reset removes every stored build info.
	Reset(root string) error
}
