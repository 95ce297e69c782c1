package domain_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestClassify(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "logo.bin", Err: fs.ErrNotExist}
	err := zerr.With(zerr.Wrap(domain.Classify(domain.ErrResourceReadFailed, cause), cause.Error()), "path", "logo.bin")

	assert.ErrorIs(t, err, domain.ErrResourceReadFailed)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "open logo.bin: file does not exist: "+domain.ErrResourceReadFailed.Error(), err.Error())

	assert.NoError(t, domain.Classify(domain.ErrResourceReadFailed, nil))
}
