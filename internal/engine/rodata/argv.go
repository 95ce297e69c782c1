package rodata

// argv builds an assembler command line without ever going through a shell.
type argv []string

func (a argv) with(args ...string) argv {
	return append(a, args...)
}

func (a argv) define(names ...string) argv {
	for _, n := range names {
		a = append(a, "-D", n)
	}
	return a
}

func (a argv) include(dirs ...string) argv {
	for _, d := range dirs {
		a = append(a, "-I", d)
	}
	return a
}
