package rodata

import (
	"slices"

	"go.trai.ch/rodata/internal/core/ports"
)

// Object format families.
const (
	FamilyMachO = "macho"
	FamilyWin   = "win"
	FamilyELF   = "elf"
)

// Platform is the assembler target derived from the unit flags.
type Platform struct {
	Defines []string
	Family  string
}

type platformRule struct {
	anyOf    []string
	platform Platform
}

// platformRules are evaluated in order; the first rule with an enabled flag wins.
var platformRules = []platformRule{
	{anyOf: []string{"darwin", "ios"}, platform: Platform{Defines: []string{"DARWIN", "UNIX"}, Family: FamilyMachO}},
	{anyOf: []string{"win64", "cygwin"}, platform: Platform{Defines: []string{"WIN64"}, Family: FamilyWin}},
	{anyOf: []string{"win32"}, platform: Platform{Defines: []string{"WIN32"}, Family: FamilyWin}},
}

var defaultPlatform = Platform{Defines: []string{"UNIX"}, Family: FamilyELF}

// SelectPlatform returns the platform of the first matching rule, or the ELF default.
func SelectPlatform(unit ports.BuildUnit) Platform {
	for _, rule := range platformRules {
		if anyEnabled(unit, rule.anyOf...) {
			return clonePlatform(rule.platform)
		}
	}
	return clonePlatform(defaultPlatform)
}

func clonePlatform(p Platform) Platform {
	return Platform{Defines: slices.Clone(p.Defines), Family: p.Family}
}

func anyEnabled(unit ports.BuildUnit, flags ...string) bool {
	return slices.ContainsFunc(flags, unit.Enabled)
}

// symbolPrefix returns the prefix C symbols carry on the target: "_" on Darwin and on 32-bit Windows.
func symbolPrefix(unit ports.BuildUnit) string {
	if unit.Enabled("darwin") || (unit.Enabled("windows") && unit.Enabled("arch_type_32")) {
		return "_"
	}
	return ""
}
