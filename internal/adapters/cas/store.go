// Package cas implements the build info store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rodata/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildInfoStore with one JSON file per step under .rodata/store.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the build info for a given step name.
func (s *Store) Get(root, stepName string) (*domain.BuildInfo, error) {
	filename := s.filename(root, stepName)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", filename)
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", filename)
	}

	return &info, nil
}

// Put stores the build info.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	filename := s.filename(root, info.StepName)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", filepath.Dir(filename))
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", filename)
	}

	return nil
}

// Reset removes the store directory.
func (s *Store) Reset(root string) error {
	dir := filepath.Join(root, domain.DefaultStorePath())
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCleanFailed, err.Error()), "path", dir)
	}
	return nil
}

func (s *Store) filename(root, stepName string) string {
	hash := sha256.Sum256([]byte(stepName))
	return filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")
}
