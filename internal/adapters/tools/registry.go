// Package tools resolves build tool identifiers to executables.
package tools

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolResolver = (*Registry)(nil)

type cacheKey struct {
	root string
	tool string
}

// Registry resolves tool identifiers through the workspace tool map and PATH.
// Resolutions are cached per workspace root.
type Registry struct {
	mu    sync.Mutex
	cache map[cacheKey]string
	env   func() []string
}

// NewRegistry creates a Registry that searches the process PATH.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[cacheKey]string),
		env:   os.Environ,
	}
}

// Resolve returns the executable for tool.
// A mapped value that is a path must name an executable file; any other value, or the
// base name of an unmapped identifier, is looked up on PATH.
func (r *Registry) Resolve(ws *domain.Workspace, tool string) (string, error) {
	key := cacheKey{root: ws.Root, tool: tool}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.cache[key]; ok {
		return p, nil
	}

	name, mapped := ws.Tools[tool]
	if !mapped || name == "" {
		name = path.Base(tool)
	}

	var (
		resolved string
		err      error
	)
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		resolved = name
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(ws.Root, filepath.FromSlash(resolved))
		}
		err = findExecutable(resolved)
	} else {
		resolved, err = lookPath(name, r.env())
		if err == nil {
			// An empty PATH element yields a path relative to the process, not to the step's directory.
			resolved, err = filepath.Abs(resolved)
		}
	}
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrToolNotFound, err.Error()), "tool", tool)
		return "", zerr.With(wrapped, "binary", name)
	}

	r.cache[key] = resolved
	return resolved, nil
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var pathList string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			pathList = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if pathList == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
