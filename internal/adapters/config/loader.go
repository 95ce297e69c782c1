// Package config provides the configuration loader for rodata.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

var validUnitNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	Resolver ports.ResourceResolver
}

// NewLoader creates a new Loader with the given logger and resource resolver.
func NewLoader(logger ports.Logger, resolver ports.ResourceResolver) *Loader {
	return &Loader{Logger: logger, Resolver: resolver}
}

// DiscoverRoot walks up from cwd and returns the directory holding rodata.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// Load finds rodata.yaml starting from cwd and builds the workspace it describes.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file Rodatafile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	root := resolveRoot(filepath.Dir(configPath), file.Root)
	buildRoot := file.BuildRoot
	if buildRoot == "" {
		buildRoot = domain.DefaultBuildDir
	}
	buildRoot = resolveRoot(root, buildRoot)

	ws := &domain.Workspace{
		Root:      root,
		BuildRoot: buildRoot,
		Tools:     file.Tools,
		Units:     make([]*domain.Unit, 0, len(file.Units)),
	}

	seen := make(map[string]int, len(file.Units))
	for i := range file.Units {
		dto := &file.Units[i]
		if err := validateUnit(dto, i, seen); err != nil {
			return nil, err
		}

		unit, err := l.buildUnit(dto, root, buildRoot)
		if err != nil {
			return nil, zerr.With(err, "unit", dto.Name)
		}
		ws.Units = append(ws.Units, unit)
	}

	return ws, nil
}

func (l *Loader) buildUnit(dto *UnitDTO, root, buildRoot string) (*domain.Unit, error) {
	matches, err := l.Resolver.ResolveResources(root, dto.Resources, dto.Exclude)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		l.Logger.Warn("unit matches no resources", "unit", dto.Name)
	}

	resources := make([]string, len(matches))
	for i, rel := range matches {
		resources[i] = domain.SourcePath(rel)
	}

	includes := make([]string, len(dto.Includes))
	for i, inc := range dto.Includes {
		includes[i] = logicalDir(inc)
	}

	return domain.NewUnit(domain.UnitSpec{
		Name:      dto.Name,
		Rule:      dto.Rule,
		SourceDir: root,
		BuildDir:  buildRoot,
		Flags:     dto.Flags,
		Options:   dto.Options,
		Includes:  includes,
		Resources: resources,
	}), nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no configuration above working directory"), "cwd", cwd)
}

// validateUnit checks the unit name and records it in seen, keyed to its position.
func validateUnit(dto *UnitDTO, index int, seen map[string]int) error {
	if dto.Name == "" {
		return zerr.With(zerr.Wrap(domain.ErrMissingUnitName, "invalid unit"), "index", index)
	}
	if !validUnitNameRegex.MatchString(dto.Name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidUnitName, "invalid unit"), "unit", dto.Name)
	}
	if first, exists := seen[dto.Name]; exists {
		err := zerr.With(zerr.Wrap(domain.ErrDuplicateUnitName, "invalid unit"), "unit", dto.Name)
		err = zerr.With(err, "first_occurrence", first)
		return zerr.With(err, "duplicate_at", index)
	}
	seen[dto.Name] = index
	return nil
}

// logicalDir anchors a configured include directory at the source root unless it
// already names a root marker or an absolute path.
func logicalDir(dir string) string {
	switch {
	case dir == domain.SourceRoot, dir == domain.BuildRoot,
		strings.HasPrefix(dir, domain.SourceRoot+"/"), strings.HasPrefix(dir, domain.BuildRoot+"/"):
		return path.Clean(dir)
	case filepath.IsAbs(dir):
		return filepath.Clean(dir)
	default:
		return domain.SourcePath(filepath.ToSlash(dir))
	}
}

func resolveRoot(baseDir, configured string) string {
	if configured == "" {
		return filepath.Clean(baseDir)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(baseDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrConfigNotFound, err.Error()), "path", configPath)
		}
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error()), "path", configPath)
	}

	return nil
}
