package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/rodata/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for steps and files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes a combined XXHash over the contents of the given files, in order.
func (h *Hasher) ComputeFileHash(paths []string) (string, error) {
	hasher := xxhash.New()
	for _, path := range paths {
		sum, err := fileSum(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrFileHashFailed, err.Error()), "path", path)
		}
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeInputHash computes a single hash representing the step definition,
// the tool binary it runs and the contents of its input files.
func (h *Hasher) ComputeInputHash(step *domain.Step, toolPath string) (string, error) {
	hasher := xxhash.New()

	hashStepDefinition(step, hasher)
	_, _ = hasher.WriteString(toolPath)
	_, _ = hasher.Write([]byte{0})

	for _, input := range step.Inputs {
		if err := hashFile(input.String(), hasher); err != nil {
			return "", zerr.With(err, "step", step.Name.String())
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func hashStepDefinition(step *domain.Step, hasher *xxhash.Digest) {
	_, _ = hasher.WriteString(step.Name.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(step.Descr.String())
	_, _ = hasher.Write([]byte{0})

	for _, section := range [][]domain.InternedString{step.Inputs, step.Outputs, step.Tools, step.Dependencies} {
		for _, item := range section {
			_, _ = hasher.WriteString(item.String())
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}

	for _, flag := range step.Flags {
		_, _ = hasher.WriteString(flag)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

func hashFile(path string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(path))
	_, _ = mainHasher.Write([]byte{0})

	sum, err := fileSum(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, sum); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileHashFailed, err.Error()), "path", path)
	}
	return nil
}

func fileSum(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrFileOpenFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrFileHashFailed, err.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}
