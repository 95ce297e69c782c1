package rodata

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Object embeds a resource by assembling a generated source that incbins it.
// The object exports <prefix><base> and <prefix><base>Size.
type Object struct {
	*Assembler
	prefix string
}

// NewObject creates the assembler-based command for the resource at path.
func NewObject(path string, unit ports.BuildUnit, executor ports.Executor) (*Object, error) {
	asm, err := NewAssembler(path, unit, executor)
	if err != nil {
		return nil, err
	}
	return &Object{Assembler: asm, prefix: symbolPrefix(unit)}, nil
}

// Prefix returns the symbol prefix.
func (o *Object) Prefix() string {
	return o.prefix
}

// Run writes <output>.asm and assembles it into the declared object.
// The size symbol holds the resource size observed when the source is generated.
func (o *Object) Run(ctx context.Context, binary string) error {
	in, err := filepath.Abs(o.unit.ResolvePath(o.path))
	if err != nil {
		return zerr.With(ioFailure(domain.ErrResourceReadFailed, err), "path", o.path)
	}

	info, err := os.Stat(in)
	if err != nil {
		return zerr.With(ioFailure(domain.ErrResourceReadFailed, err), "path", in)
	}
	if info.Size() > math.MaxUint32 {
		err := zerr.With(zerr.Wrap(domain.ErrResourceTooLarge, "cannot embed resource"), "path", in)
		return zerr.With(err, "size", info.Size())
	}

	asmPath := o.asmPath()
	if err := os.MkdirAll(filepath.Dir(asmPath), domain.DirPerm); err != nil {
		return zerr.With(ioFailure(domain.ErrGeneratedWriteFailed, err), "path", filepath.Dir(asmPath))
	}
	src := o.asmSource(in, info.Size())
	if err := os.WriteFile(asmPath, []byte(src), domain.FilePerm); err != nil {
		return zerr.With(ioFailure(domain.ErrGeneratedWriteFailed, err), "path", asmPath)
	}

	return o.assemble(ctx, binary, asmPath)
}

// CommandLine returns the argument vector assembling the generated source.
func (o *Object) CommandLine(binary string) []string {
	return o.commandLine(binary, o.asmPath())
}

func (o *Object) asmPath() string {
	return o.unit.ResolvePath(o.output() + ".asm")
}

func (o *Object) asmSource(input string, size int64) string {
	sym := o.prefix + domain.BaseName(input)

	var b strings.Builder
	b.WriteString("global " + sym + "\n")
	b.WriteString("global " + sym + "Size\n")
	b.WriteString("SECTION .rodata\n")
	b.WriteString(sym + ":\nincbin \"" + input + "\"\n")
	b.WriteString(sym + "Size:\ndd " + strconv.FormatInt(size, 10) + "\n")
	return b.String()
}
