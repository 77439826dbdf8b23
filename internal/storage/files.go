package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore discards stored images. Relative paths resolve against Root.
type FileStore struct {
	Root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

// Discard removes the file at path. A file that is already gone counts as
// discarded, so concurrent or repeated calls on the same path are safe.
func (s *FileStore) Discard(path string) error {
	if path == "" {
		return nil
	}
	full := s.resolve(path)
	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("discard %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) resolve(path string) string {
	p := filepath.FromSlash(path)
	if filepath.IsAbs(p) || s.Root == "" {
		return p
	}
	return filepath.Join(s.Root, p)
}
