// Package ports defines the core interfaces for the application.
package ports

// BuildUnit is the build context a rule is constructed against.
// Flag and option names follow the existing build configuration contract
// (darwin, win64, ARCH_AARCH64, YASM_FLAGS, hardware_arch, ...).
//
//go:generate mockgen -source=build_unit.go -destination=mocks/mock_build_unit.go -package=mocks
type BuildUnit interface {
	// Name returns the unit name.
	Name() string
	// Enabled reports whether a boolean feature flag is set. Names are case-insensitive.
	Enabled(flag string) bool
	// Option returns a string option and whether it is set.
	Option(name string) (string, bool)
	// Includes returns the declared include directories as logical paths.
	Includes() []string
	// ResolvePath maps a logical path ($S/..., $B/..., relative or absolute) to a filesystem path.
	ResolvePath(path string) string
	// ResolveInclude locates name relative to the file base and returns its logical path.
	ResolveInclude(base, name string) string
}
