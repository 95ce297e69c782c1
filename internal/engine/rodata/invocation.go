package rodata

import (
	"slices"
	"strings"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

// Unit option names read by the assembler path.
const (
	OptionPrefix       = "ASM_PREFIX"
	OptionFlags        = "YASM_FLAGS"
	OptionHardwareArch = "hardware_arch"
	OptionHardwareType = "hardware_type"
)

// Invocation is the assembler configuration derived from a unit for one resource.
// It is computed once and never changes afterwards.
type Invocation struct {
	flags        []string
	preIncludes  []string
	includeDirs  []string
	platform     Platform
	format       string
	hardwareType string
}

// NewInvocation derives the assembler configuration for the resource at path.
func NewInvocation(path string, unit ports.BuildUnit) (Invocation, error) {
	var flags []string
	if prefix, ok := unit.Option(OptionPrefix); ok {
		flags = append(flags, "--prefix="+prefix)
	}

	includeDirs := append([]string{domain.SourceRoot, domain.BuildRoot}, unit.Includes()...)

	var preIncludes []string
	if raw, ok := unit.Option(OptionFlags); ok {
		parsed, pre, err := parseFlags(path, unit, strings.Split(raw, " "))
		if err != nil {
			return Invocation{}, zerr.With(zerr.With(err, "unit", unit.Name()), "path", path)
		}
		flags = append(flags, parsed...)
		preIncludes = pre
	}

	platform := SelectPlatform(unit)
	if platform.Family == FamilyELF {
		flags = append(flags, "-g", "dwarf2")
	}

	arch, _ := unit.Option(OptionHardwareArch)
	hwType, _ := unit.Option(OptionHardwareType)

	return Invocation{
		flags:        flags,
		preIncludes:  preIncludes,
		includeDirs:  includeDirs,
		platform:     platform,
		format:       platform.Family + arch,
		hardwareType: hwType,
	}, nil
}

// parseFlags consumes the YASM_FLAGS tokens left to right.
// "-P" takes its file name from the rest of the token or, when that is empty, from the next token.
func parseFlags(path string, unit ports.BuildUnit, tokens []string) (flags, preIncludes []string, err error) {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case strings.HasPrefix(tok, "-I"):
			return nil, nil, zerr.With(zerr.Wrap(domain.ErrIncludeFlag, "invalid YASM_FLAGS"), "flag", tok)
		case strings.HasPrefix(tok, "-P"):
			name := tok[len("-P"):]
			if name == "" {
				if i+1 >= len(tokens) || tokens[i+1] == "" {
					return nil, nil, zerr.Wrap(domain.ErrMissingPreInclude, "invalid YASM_FLAGS")
				}
				i++
				name = tokens[i]
			}
			include := unit.ResolveInclude(path, name)
			preIncludes = append(preIncludes, include)
			flags = append(flags, "-P", unit.ResolvePath(include))
		default:
			flags = append(flags, tok)
		}
	}
	return flags, preIncludes, nil
}

// Flags returns the derived assembler flags.
func (i Invocation) Flags() []string { return slices.Clone(i.flags) }

// PreIncludes returns the logical paths of the pre-included files.
func (i Invocation) PreIncludes() []string { return slices.Clone(i.preIncludes) }

// IncludeDirs returns the logical include directories passed with -I.
func (i Invocation) IncludeDirs() []string { return slices.Clone(i.includeDirs) }

// Defines returns the platform defines.
func (i Invocation) Defines() []string { return slices.Clone(i.platform.Defines) }

// Family returns the object format family.
func (i Invocation) Family() string { return i.platform.Family }

// Format returns the object format, the family followed by the hardware architecture.
func (i Invocation) Format() string { return i.format }

// HardwareType returns the hardware type marker.
func (i Invocation) HardwareType() string { return i.hardwareType }
