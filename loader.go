package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultStoreFile is the store file name looked up in the working
// directory when none is given.
const DefaultStoreFile = "finbook.json"

// LoadStore reads a store from a file. A missing file yields a fresh empty
// store, so a first run needs no setup step.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening store file %q: %w", path, err)
	}
	defer f.Close()
	s := NewStore()
	if err := s.ImportData(f); err != nil {
		return nil, fmt.Errorf("loading store file %q: %w", path, err)
	}
	return s, nil
}

// SaveStore writes the store to a file. The write goes through a temp file
// in the same directory and a rename, so a crash mid-write never leaves a
// truncated store behind.
func SaveStore(path string, s *Store) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := s.ExportData(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing store file %q: %w", path, err)
	}
	return nil
}
