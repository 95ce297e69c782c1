package ports

// ResourceResolver expands resource patterns into concrete files.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ResourceResolver interface {
	// ResolveResources expands glob patterns relative to root, dropping paths matched by
	// the gitignore-style exclude patterns. It returns sorted, slash-separated paths
	// relative to root.
	ResolveResources(root string, patterns, exclude []string) ([]string, error)
}
