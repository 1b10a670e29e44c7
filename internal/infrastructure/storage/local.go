// Package storage handles picture intake for blog posts. Uploads are
// opaque byte streams: they are written to disk untouched and only the
// resulting public path is recorded on the entity.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path the stored files are served under.
const PublicPrefix = "/uploads"

// LocalStore saves uploads to a directory on local disk.
type LocalStore struct {
	dir string
}

// NewLocalStore ensures dir exists and returns a store writing into it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a fresh uuid-based name, keeping the
// original extension, and returns the public path to record on the entity.
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return PublicPrefix + "/" + name, nil
}
