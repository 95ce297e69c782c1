package rodata_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/engine/rodata"
)

var hexLiteral = regexp.MustCompile(`0x([0-9a-f]{2}), `)

func decodeArray(t *testing.T, src string) []byte {
	t.Helper()
	out := []byte{}
	for _, m := range hexLiteral.FindAllStringSubmatch(src, -1) {
		b, err := hex.DecodeString(m[1])
		require.NoError(t, err)
		out = append(out, b...)
	}
	return out
}

func TestSource_Contract(t *testing.T) {
	src := rodata.NewSource(resource, newUnit(t, []string{"ARCH_AARCH64"}, nil))

	assert.Equal(t, domain.Descr{Tag: "RD", Path: resource, Color: "light-green"}, src.Descr())
	assert.Equal(t, []string{resource}, src.Inputs())
	assert.Equal(t, []string{"$B/assets/logo.cpp"}, src.Outputs())
	assert.Empty(t, src.Tools())
	assert.Empty(t, src.Flags())
}

func TestWriteSource_Golden(t *testing.T) {
	g := goldie.New(t)

	data := make([]byte, 120)
	for i := range data {
		data[i] = byte(i * 7)
	}

	tests := map[string][]byte{
		"source_small": data,
		"source_empty": {},
		"source_one":   {0xff},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, rodata.WriteSource(&buf, bytes.NewReader(in), "logo"))
			g.Assert(t, name, buf.Bytes())
		})
	}
}

func TestWriteSource_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{1, 49, 50, 51, 100, 101, 4096} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(rng.UintN(256))
		}

		var buf bytes.Buffer
		require.NoError(t, rodata.WriteSource(&buf, bytes.NewReader(data), "blob"))

		out := buf.String()
		assert.Equal(t, data, decodeArray(t, out), "size %d", n)
		assert.Contains(t, out, "    extern const unsigned int blobSize = sizeof(blob);\n")

		// One value on the first line, then lines of 50.
		lines := strings.Split(out, "\n")
		assert.Equal(t, "0x"+hex.EncodeToString(data[:1])+", ", lines[4])
	}
}

func TestSource_Run(t *testing.T) {
	unit := newUnit(t, []string{"ARCH_ARM"}, nil)
	data := []byte("\x00\x10\xfe\xff")
	writeResource(t, unit, "$S/foo/bar.bin", data)

	src := rodata.NewSource("$S/foo/bar.bin", unit)
	require.NoError(t, src.Run(context.Background(), "ignored"))

	out, err := os.ReadFile(filepath.Join(unit.BuildDir(), "foo", "bar.cpp"))
	require.NoError(t, err)
	assert.Equal(t, data, decodeArray(t, string(out)))
	assert.Contains(t, string(out), "extern const unsigned char bar[] = {\n")
	assert.Contains(t, string(out), "extern const unsigned int barSize = sizeof(bar);\n")
}

func TestSource_RunEmptyResource(t *testing.T) {
	unit := newUnit(t, []string{"ARCH_PPC64LE"}, nil)
	writeResource(t, unit, resource, nil)

	require.NoError(t, rodata.NewSource(resource, unit).Run(context.Background(), ""))

	out, err := os.ReadFile(filepath.Join(unit.BuildDir(), "assets", "logo.cpp"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "    extern const unsigned char logo[] = {\n    };\n")
	assert.Contains(t, string(out), "    extern const unsigned int logoSize = sizeof(logo);\n")
	assert.Empty(t, decodeArray(t, string(out)))
}

func TestSource_RunMissingResource(t *testing.T) {
	unit := newUnit(t, nil, nil)

	err := rodata.NewSource(resource, unit).Run(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrResourceReadFailed)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.NoFileExists(t, filepath.Join(unit.BuildDir(), "assets", "logo.cpp"))
}

func TestSource_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rodata.NewSource(resource, newUnit(t, nil, nil)).Run(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
