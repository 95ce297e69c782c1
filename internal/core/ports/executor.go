package ports

import "context"

// Executor runs external tools.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv in dir. argv[0] is the binary, never interpreted by a shell.
	//
	// It returns an error carrying the exit code if the process fails.
	Execute(ctx context.Context, argv []string, dir string) error
}
