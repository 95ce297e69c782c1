package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks that step outputs exist on disk.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs reports whether every output file exists.
// Outputs are filesystem paths, already resolved against the build root.
func (v *Verifier) VerifyOutputs(outputs []string) (bool, error) {
	for _, output := range outputs {
		if _, err := os.Stat(output); err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", output)
		}
	}
	return true, nil
}
