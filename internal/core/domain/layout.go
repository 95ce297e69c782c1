package domain

import "path/filepath"

const (
	// RodataDirName is the name of the internal workspace directory.
	RodataDirName = ".rodata"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "rodata.yaml"

	// DefaultBuildDir is the build root used when the configuration does not name one.
	DefaultBuildDir = "build"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultRodataPath returns the default root directory for rodata metadata.
func DefaultRodataPath() string {
	return RodataDirName
}

// DefaultStorePath returns the default path for the build info store.
// It joins .rodata and store.
func DefaultStorePath() string {
	return filepath.Join(RodataDirName, StoreDirName)
}
