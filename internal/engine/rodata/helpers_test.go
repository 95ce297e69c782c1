package rodata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/core/domain"
)

// newUnit returns a unit rooted in a fresh temporary source tree.
func newUnit(t *testing.T, flags []string, options map[string]string, includes ...string) *domain.Unit {
	t.Helper()
	root := t.TempDir()
	return domain.NewUnit(domain.UnitSpec{
		Name:      "assets",
		Rule:      "rodata",
		SourceDir: root,
		BuildDir:  filepath.Join(root, "build"),
		Flags:     flags,
		Options:   options,
		Includes:  includes,
	})
}

// writeResource creates the file behind a logical path of unit.
func writeResource(t *testing.T, unit *domain.Unit, logical string, data []byte) string {
	t.Helper()
	p := unit.ResolvePath(logical)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}
