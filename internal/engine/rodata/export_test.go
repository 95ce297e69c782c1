package rodata

import "io"

// WriteSource exposes the C++ encoder for golden tests.
func WriteSource(w io.Writer, r io.Reader, base string) error {
	return writeSource(w, r, base)
}

// AsmSource exposes the generated assembler source for golden tests.
func (o *Object) AsmSource(input string, size int64) string {
	return o.asmSource(input, size)
}
