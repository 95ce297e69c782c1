package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/adapters/fs"
	"go.trai.ch/rodata/internal/core/domain"
)

func TestResolver_ResolveResources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/a.bin", "a")
	writeFile(t, root, "assets/b.bin", "b")
	writeFile(t, root, "assets/c.tmp.bin", "c")
	writeFile(t, root, "assets/sub/d.bin", "d")
	writeFile(t, root, "fonts/e.ttf", "e")

	resolver := fs.NewResolver()

	tests := []struct {
		name     string
		patterns []string
		exclude  []string
		want     []string
	}{
		{
			name:     "glob",
			patterns: []string{"assets/*.bin"},
			want:     []string{"assets/a.bin", "assets/b.bin", "assets/c.tmp.bin"},
		},
		{
			name:     "literal and glob deduplicated",
			patterns: []string{"assets/a.bin", "assets/*.bin", "fonts/e.ttf"},
			want:     []string{"assets/a.bin", "assets/b.bin", "assets/c.tmp.bin", "fonts/e.ttf"},
		},
		{
			name:     "directories skipped",
			patterns: []string{"assets/*"},
			want:     []string{"assets/a.bin", "assets/b.bin", "assets/c.tmp.bin"},
		},
		{
			name:     "exclude",
			patterns: []string{"assets/*.bin", "assets/sub/*.bin"},
			exclude:  []string{"*.tmp.bin", "sub/"},
			want:     []string{"assets/a.bin", "assets/b.bin"},
		},
		{
			name:     "no match",
			patterns: []string{"missing/*.bin"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ResolveResources(root, tt.patterns, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_InvalidPattern(t *testing.T) {
	_, err := fs.NewResolver().ResolveResources(t.TempDir(), []string{"assets/[.bin"}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidPattern)
}
