package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/adapters/fs"
	"go.trai.ch/rodata/internal/core/domain"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func relPaths(t *testing.T, root string, paths func(func(string) bool)) []string {
	t.Helper()
	var out []string
	for p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	slices.Sort(out)
	return out
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/config", "git config")
	writeFile(t, root, ".rodata/store/x.json", "{}")
	writeFile(t, root, "ignored/file", "ignored content")
	writeFile(t, root, "assets/logo.bin", "logo")
	writeFile(t, root, "assets/logo.tmp", "tmp")
	writeFile(t, root, "README.md", "# Readme")

	files := relPaths(t, root, fs.NewWalker().WalkFiles(root, []string{"ignored/", "*.tmp"}))

	assert.Equal(t, []string{"README.md", "assets/logo.bin"}, files)
}

func TestWalker_WalkDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/config", "")
	writeFile(t, root, "build/out.o", "")
	writeFile(t, root, "assets/nested/a.bin", "")

	dirs := relPaths(t, root, fs.NewWalker().WalkDirs(root, []string{"build/"}))

	assert.Equal(t, []string{".", "assets", "assets/nested"}, dirs)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a.bin", "hello world")
	b := writeFile(t, root, "b.bin", "other")

	hasher := fs.NewHasher()

	hash1, err := hasher.ComputeFileHash([]string{a, b})
	require.NoError(t, err)
	assert.Len(t, hash1, 16)

	hash2, err := hasher.ComputeFileHash([]string{a, b})
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")

	swapped, err := hasher.ComputeFileHash([]string{b, a})
	require.NoError(t, err)
	assert.NotEqual(t, hash1, swapped, "expected order to matter")

	writeFile(t, root, "a.bin", "changed")
	hash3, err := hasher.ComputeFileHash([]string{a, b})
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash([]string{filepath.Join(t.TempDir(), "missing")})
	require.ErrorIs(t, err, domain.ErrFileOpenFailed)
}

func TestHasher_ComputeInputHash(t *testing.T) {
	root := t.TempDir()
	input := writeFile(t, root, "logo.bin", "input content")

	hasher := fs.NewHasher()
	step := &domain.Step{
		Name:    domain.NewInternedString("assets:logo.bin"),
		Descr:   domain.Descr{Tag: "RD", Path: "$S/logo.bin", Color: domain.ColorLightGreen},
		Inputs:  domain.NewInternedStrings([]string{input}),
		Outputs: domain.NewInternedStrings([]string{filepath.Join(root, "build", "logo.cpp")}),
	}

	base, err := hasher.ComputeInputHash(step, "")
	require.NoError(t, err)

	t.Run("deterministic", func(t *testing.T) {
		again, err := hasher.ComputeInputHash(step, "")
		require.NoError(t, err)
		assert.Equal(t, base, again)
	})

	t.Run("tool path", func(t *testing.T) {
		withTool, err := hasher.ComputeInputHash(step, "/usr/bin/yasm")
		require.NoError(t, err)
		assert.NotEqual(t, base, withTool)
	})

	t.Run("flags", func(t *testing.T) {
		flagged := *step
		flagged.Flags = []string{"-g", "dwarf2"}
		got, err := hasher.ComputeInputHash(&flagged, "")
		require.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("outputs", func(t *testing.T) {
		moved := *step
		moved.Outputs = domain.NewInternedStrings([]string{filepath.Join(root, "build", "logo.o")})
		got, err := hasher.ComputeInputHash(&moved, "")
		require.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("content", func(t *testing.T) {
		writeFile(t, root, "logo.bin", "modified content")
		got, err := hasher.ComputeInputHash(step, "")
		require.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("missing input", func(t *testing.T) {
		missing := *step
		missing.Inputs = domain.NewInternedStrings([]string{filepath.Join(root, "nope.bin")})
		_, err := hasher.ComputeInputHash(&missing, "")
		require.ErrorIs(t, err, domain.ErrFileOpenFailed)
	})
}
