// Package rodata implements the rule embedding binary resources into linkable objects.
//
// Depending on the target architecture a resource is either assembled into a native object
// exposing a byte array and a size symbol, or rewritten as a C++ source file with the same
// symbols for the regular compiler.
package rodata

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

// YasmTool is the identifier of the assembler tool.
const YasmTool = "contrib/tools/yasm"

// Assembler is the build command running yasm on a resource.
type Assembler struct {
	path     string
	unit     ports.BuildUnit
	executor ports.Executor
	inv      Invocation
}

// NewAssembler derives the assembler invocation for the resource at path.
// It fails when YASM_FLAGS carries a -I flag or a -P flag without a file name.
func NewAssembler(path string, unit ports.BuildUnit, executor ports.Executor) (*Assembler, error) {
	inv, err := NewInvocation(path, unit)
	if err != nil {
		return nil, err
	}
	return &Assembler{
		path:     path,
		unit:     unit,
		executor: executor,
		inv:      inv,
	}, nil
}

// Invocation returns the derived assembler configuration.
func (a *Assembler) Invocation() Invocation {
	return a.inv
}

// Descr implements ports.Command.
func (a *Assembler) Descr() domain.Descr {
	return domain.Descr{Tag: "AS", Path: a.path, Color: domain.ColorLightGreen}
}

// Flags returns the flags, then the platform defines, the format and the hardware type.
func (a *Assembler) Flags() []string {
	flags := a.inv.Flags()
	flags = append(flags, a.inv.Defines()...)
	return append(flags, a.inv.Format(), a.inv.HardwareType())
}

// Tools implements ports.Command.
func (a *Assembler) Tools() []string {
	return []string{YasmTool}
}

// Inputs returns the pre-included files followed by the resource.
func (a *Assembler) Inputs() []string {
	return append(a.inv.PreIncludes(), a.path)
}

// Outputs returns the object file next to the resource in the build tree.
func (a *Assembler) Outputs() []string {
	return []string{a.output()}
}

// Run assembles the resource itself.
func (a *Assembler) Run(ctx context.Context, binary string) error {
	return a.assemble(ctx, binary, a.unit.ResolvePath(a.path))
}

// CommandLine returns the argument vector Run executes.
func (a *Assembler) CommandLine(binary string) []string {
	return a.commandLine(binary, a.unit.ResolvePath(a.path))
}

func (a *Assembler) output() string {
	return domain.StripExt(domain.ToBuildDir(a.path)) + ".o"
}

func (a *Assembler) commandLine(binary, input string) []string {
	dirs := make([]string, 0, len(a.inv.includeDirs))
	for _, d := range a.inv.includeDirs {
		dirs = append(dirs, a.unit.ResolvePath(d))
	}

	return argv{binary}.
		with("-f", a.inv.Format()).
		define(a.inv.platform.Defines...).
		define("_"+a.inv.HardwareType()+"_").
		with("-D_YASM_").
		with(a.inv.flags...).
		include(dirs...).
		with("-o", a.unit.ResolvePath(a.output()), input)
}

func (a *Assembler) assemble(ctx context.Context, binary, input string) error {
	out := a.unit.ResolvePath(a.output())
	if err := os.MkdirAll(filepath.Dir(out), domain.DirPerm); err != nil {
		return zerr.With(ioFailure(domain.ErrGeneratedWriteFailed, err), "path", filepath.Dir(out))
	}

	cmd := a.commandLine(binary, input)
	if err := a.executor.Execute(ctx, cmd, filepath.Dir(out)); err != nil {
		return zerr.With(zerr.Wrap(err, "assembler failed"), "path", a.path)
	}
	return nil
}
