package domain

import (
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// UnitSpec is the declarative description of a build unit.
type UnitSpec struct {
	Name      string
	Rule      string
	SourceDir string
	BuildDir  string
	Flags     []string
	Options   map[string]string
	Includes  []string
	Resources []string
}

// Unit is a configured build unit: the context a rule queries for platform flags,
// string options, include directories and path resolution.
// A Unit is immutable once constructed.
type Unit struct {
	name      string
	rule      string
	sourceDir string
	buildDir  string
	flags     map[string]struct{}
	options   map[string]string
	includes  []string
	resources []string
}

// NewUnit creates a Unit from its spec.
// Flag names are normalised so lookups are case-insensitive.
func NewUnit(spec UnitSpec) *Unit {
	flags := make(map[string]struct{}, len(spec.Flags))
	for _, f := range spec.Flags {
		flags[normalizeFlag(f)] = struct{}{}
	}

	options := make(map[string]string, len(spec.Options))
	maps.Copy(options, spec.Options)

	return &Unit{
		name:      spec.Name,
		rule:      spec.Rule,
		sourceDir: filepath.Clean(spec.SourceDir),
		buildDir:  filepath.Clean(spec.BuildDir),
		flags:     flags,
		options:   options,
		includes:  slices.Clone(spec.Includes),
		resources: slices.Clone(spec.Resources),
	}
}

// Name returns the unit name.
func (u *Unit) Name() string {
	return u.name
}

// Rule returns the name of the rule the unit's resources are built with.
func (u *Unit) Rule() string {
	return u.rule
}

// Resources returns the logical paths of the unit's resources.
func (u *Unit) Resources() []string {
	return slices.Clone(u.resources)
}

// SourceDir returns the absolute source root.
func (u *Unit) SourceDir() string {
	return u.sourceDir
}

// BuildDir returns the absolute build root.
func (u *Unit) BuildDir() string {
	return u.buildDir
}

// Enabled reports whether the named feature flag is set on the unit.
func (u *Unit) Enabled(flag string) bool {
	_, ok := u.flags[normalizeFlag(flag)]
	return ok
}

// Option returns the value of a string option and whether it is set to a non-empty value.
func (u *Unit) Option(name string) (string, bool) {
	v, ok := u.options[name]
	return v, ok && v != ""
}

// Includes returns the unit's declared include directories as logical paths.
func (u *Unit) Includes() []string {
	return slices.Clone(u.includes)
}

// ResolvePath maps a logical path onto the filesystem.
// "$S" and "$B" expand to the source and build roots, relative paths are
// anchored at the source root and absolute paths are returned cleaned.
func (u *Unit) ResolvePath(p string) string {
	switch {
	case p == SourceRoot:
		return u.sourceDir
	case p == BuildRoot:
		return u.buildDir
	case strings.HasPrefix(p, SourceRoot+"/"):
		return filepath.Join(u.sourceDir, filepath.FromSlash(strings.TrimPrefix(p, SourceRoot+"/")))
	case strings.HasPrefix(p, BuildRoot+"/"):
		return filepath.Join(u.buildDir, filepath.FromSlash(strings.TrimPrefix(p, BuildRoot+"/")))
	case filepath.IsAbs(p):
		return filepath.Clean(p)
	default:
		return filepath.Join(u.sourceDir, filepath.FromSlash(p))
	}
}

// ResolveInclude locates an included file named relative to base.
// Candidates are tried in order: the directory of base, each include directory,
// the source root and the build root. The first candidate that exists wins;
// when none exists the candidate next to base is returned.
func (u *Unit) ResolveInclude(base, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}

	candidates := make([]string, 0, len(u.includes)+3)
	candidates = append(candidates, path.Join(path.Dir(base), name))
	for _, dir := range u.includes {
		candidates = append(candidates, path.Join(dir, name))
	}
	candidates = append(candidates, path.Join(SourceRoot, name), path.Join(BuildRoot, name))

	for _, c := range candidates {
		if _, err := os.Stat(u.ResolvePath(c)); err == nil {
			return c
		}
	}
	return candidates[0]
}

func normalizeFlag(flag string) string {
	return strings.ToUpper(strings.TrimSpace(flag))
}
