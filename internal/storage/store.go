// Package storage keeps uploaded datasheets and generated reports on local
// disk between requests. Files are named by UUID so concurrent sessions
// never collide.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Store interface {
	Save(data io.Reader, suffix string) (string, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

type TempStore struct {
	dir string
}

func NewTempStore(dir string) (*TempStore, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "cablecalc")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &TempStore{dir: dir}, nil
}

// Save writes data to a fresh file and returns its absolute path. The suffix
// keeps the file recognizable in the temp dir ("-datasheet.pdf" and so on).
func (s *TempStore) Save(data io.Reader, suffix string) (string, error) {
	path := filepath.Join(s.dir, uuid.New().String()+suffix)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close file: %w", err)
	}
	return path, nil
}

func (s *TempStore) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Remove deletes a stored file. A missing file is not an error; a session
// may reference a file an earlier request already replaced.
func (s *TempStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
