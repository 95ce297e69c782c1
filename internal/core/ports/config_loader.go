package ports

import "go.trai.ch/rodata/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds rodata.yaml starting from cwd and returns the workspace it describes.
	Load(cwd string) (*domain.Workspace, error)

	// DiscoverRoot walks up from cwd to the directory containing rodata.yaml.
	DiscoverRoot(cwd string) (string, error)
}
