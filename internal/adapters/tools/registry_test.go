package tools_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/adapters/tools"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeTool(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"), mode))
	return p
}

func TestRegistry_Resolve(t *testing.T) {
	bin := t.TempDir()
	root := t.TempDir()
	yasm := writeTool(t, bin, "yasm", 0o755)
	custom := writeTool(t, bin, "yasm-1.3", 0o755)
	vendored := writeTool(t, root, "tools/yasm", 0o755)

	tests := []struct {
		name  string
		tools map[string]string
		want  string
	}{
		{name: "unmapped uses base name", want: yasm},
		{name: "mapped name", tools: map[string]string{"contrib/tools/yasm": "yasm-1.3"}, want: custom},
		{name: "mapped absolute path", tools: map[string]string{"contrib/tools/yasm": custom}, want: custom},
		{name: "mapped relative path", tools: map[string]string{"contrib/tools/yasm": "tools/yasm"}, want: vendored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := tools.NewRegistry().WithPath(bin)
			ws := &domain.Workspace{Root: root, Tools: tt.tools}

			got, err := reg.Resolve(ws, "contrib/tools/yasm")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Resolve_Cached(t *testing.T) {
	bin := t.TempDir()
	yasm := writeTool(t, bin, "yasm", 0o755)
	reg := tools.NewRegistry().WithPath(bin)
	ws := &domain.Workspace{Root: t.TempDir()}

	first, err := reg.Resolve(ws, "contrib/tools/yasm")
	require.NoError(t, err)
	require.NoError(t, os.Remove(yasm))

	second, err := reg.Resolve(ws, "contrib/tools/yasm")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRegistry_Resolve_NotFound(t *testing.T) {
	bin := t.TempDir()
	writeTool(t, bin, "yasm", 0o644)
	reg := tools.NewRegistry().WithPath(bin)

	_, err := reg.Resolve(&domain.Workspace{Root: t.TempDir()}, "contrib/tools/yasm")
	require.ErrorIs(t, err, domain.ErrToolNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, "contrib/tools/yasm", meta["tool"])
	assert.Equal(t, "yasm", meta["binary"])
}

func TestRegistry_Resolve_EmptyPathElement(t *testing.T) {
	bin := t.TempDir()
	yasm := writeTool(t, bin, "yasm", 0o755)
	t.Chdir(bin)

	reg := tools.NewRegistry().WithPath(string(os.PathListSeparator) + filepath.Join(bin, "missing"))
	got, err := reg.Resolve(&domain.Workspace{Root: t.TempDir()}, "contrib/tools/yasm")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(got), "resolved path %q is relative", got)
	gotInfo, err := os.Stat(got)
	require.NoError(t, err)
	wantInfo, err := os.Stat(yasm)
	require.NoError(t, err)
	assert.True(t, os.SameFile(wantInfo, gotInfo))
}
