package rodata

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

const bytesPerLine = 50

// Source embeds a resource as a C++ array initializer compiled by the regular compiler.
// It needs no external tool.
type Source struct {
	path string
	base string
	unit ports.BuildUnit
}

// NewSource creates the source-emitting command for the resource at path.
func NewSource(path string, unit ports.BuildUnit) *Source {
	return &Source{
		path: path,
		base: domain.BaseName(path),
		unit: unit,
	}
}

// Descr implements ports.Command.
func (s *Source) Descr() domain.Descr {
	return domain.Descr{Tag: "RD", Path: s.path, Color: domain.ColorLightGreen}
}

// Inputs implements ports.Command.
func (s *Source) Inputs() []string {
	return []string{s.path}
}

// Outputs returns the generated .cpp file next to the resource in the build tree.
func (s *Source) Outputs() []string {
	return []string{s.output()}
}

// Tools implements ports.Command.
func (s *Source) Tools() []string {
	return nil
}

// Flags implements ports.Command.
func (s *Source) Flags() []string {
	return nil
}

// Run writes the C++ source. binary is ignored.
func (s *Source) Run(ctx context.Context, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in := s.unit.ResolvePath(s.path)
	src, err := os.Open(in)
	if err != nil {
		return zerr.With(ioFailure(domain.ErrResourceReadFailed, err), "path", in)
	}
	defer func() { _ = src.Close() }()

	out := s.unit.ResolvePath(s.output())
	if err := os.MkdirAll(filepath.Dir(out), domain.DirPerm); err != nil {
		return zerr.With(ioFailure(domain.ErrGeneratedWriteFailed, err), "path", filepath.Dir(out))
	}
	dst, err := os.Create(out)
	if err != nil {
		return zerr.With(ioFailure(domain.ErrGeneratedWriteFailed, err), "path", out)
	}

	if err := writeSource(dst, src, s.base); err != nil {
		_ = dst.Close()
		return zerr.With(err, "path", out)
	}
	if err := dst.Close(); err != nil {
		return zerr.With(ioFailure(domain.ErrGeneratedWriteFailed, err), "path", out)
	}
	return nil
}

func (s *Source) output() string {
	return domain.StripExt(domain.ToBuildDir(s.path)) + ".cpp"
}

// writeSource streams r into w as the body of a C++ translation unit defining base and baseSize.
// A newline follows every byte whose running count modulo 50 is 1, so the first line holds a
// single value.
func writeSource(w io.Writer, r io.Reader, base string) error {
	const hexDigits = "0123456789abcdef"

	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("static_assert(sizeof(unsigned int) == 4, \"ups, something gone wrong\");\n\n")
	_, _ = bw.WriteString("extern \"C\" {\n")
	_, _ = bw.WriteString("    extern const unsigned char " + base + "[] = {\n")

	br := bufio.NewReader(r)
	lit := []byte("0x00, ")
	for cnt := 1; ; cnt++ {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ioFailure(domain.ErrResourceReadFailed, err)
		}
		lit[2], lit[3] = hexDigits[c>>4], hexDigits[c&0x0f]
		_, _ = bw.Write(lit)
		if cnt%bytesPerLine == 1 {
			_ = bw.WriteByte('\n')
		}
	}

	_, _ = bw.WriteString("    };\n")
	_, _ = bw.WriteString("    extern const unsigned int " + base + "Size = sizeof(" + base + ");\n")
	_, _ = bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return ioFailure(domain.ErrGeneratedWriteFailed, err)
	}
	return nil
}
