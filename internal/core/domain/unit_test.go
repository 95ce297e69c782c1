package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/core/domain"
)

func TestUnit_FlagsAndOptions(t *testing.T) {
	u := domain.NewUnit(domain.UnitSpec{
		Name:    "assets",
		Flags:   []string{"darwin", "ARCH_AARCH64"},
		Options: map[string]string{"ASM_PREFIX": "pfx", "YASM_FLAGS": ""},
	})

	assert.Equal(t, "assets", u.Name())
	assert.True(t, u.Enabled("DARWIN"))
	assert.True(t, u.Enabled("arch_aarch64"))
	assert.False(t, u.Enabled("win64"))

	v, ok := u.Option("ASM_PREFIX")
	assert.True(t, ok)
	assert.Equal(t, "pfx", v)

	_, ok = u.Option("YASM_FLAGS")
	assert.False(t, ok, "empty options count as unset")
	_, ok = u.Option("hardware_arch")
	assert.False(t, ok)
}

func TestUnit_ResolvePath(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src")
	bld := filepath.Join(src, "build")
	u := domain.NewUnit(domain.UnitSpec{SourceDir: src, BuildDir: bld})

	assert.Equal(t, src, u.ResolvePath("$S"))
	assert.Equal(t, bld, u.ResolvePath("$B"))
	assert.Equal(t, filepath.Join(src, "foo", "bar.bin"), u.ResolvePath("$S/foo/bar.bin"))
	assert.Equal(t, filepath.Join(bld, "foo", "bar.o"), u.ResolvePath("$B/foo/bar.o"))
	assert.Equal(t, filepath.Join(src, "foo", "bar.bin"), u.ResolvePath("foo/bar.bin"))

	abs := filepath.Join(t.TempDir(), "x.bin")
	assert.Equal(t, abs, u.ResolvePath(abs))
}

func TestUnit_ResolveInclude(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "assets"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "include"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(src, "include", "common.asm"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "assets", "local.asm"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "root.asm"), nil, 0o600))

	u := domain.NewUnit(domain.UnitSpec{
		SourceDir: src,
		BuildDir:  filepath.Join(src, "build"),
		Includes:  []string{"$S/include"},
	})
	base := "$S/assets/logo.bin"

	assert.Equal(t, "$S/assets/local.asm", u.ResolveInclude(base, "local.asm"))
	assert.Equal(t, "$S/include/common.asm", u.ResolveInclude(base, "common.asm"))
	assert.Equal(t, "$S/root.asm", u.ResolveInclude(base, "root.asm"))
	assert.Equal(t, "$S/assets/missing.asm", u.ResolveInclude(base, "missing.asm"))
}

func TestUnit_IsImmutable(t *testing.T) {
	includes := []string{"$S/include"}
	u := domain.NewUnit(domain.UnitSpec{Includes: includes})

	includes[0] = "changed"
	got := u.Includes()
	got = append(got, "extra")

	assert.Equal(t, []string{"$S/include"}, u.Includes())
	assert.Len(t, got, 2)
}
