package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes blobs under baseDir and serves them through the
// app's static /uploads route.
type LocalStorage struct {
	baseDir   string
	publicURL string
}

func NewLocalStorage(baseDir, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}
	return &LocalStorage{
		baseDir:   baseDir,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *LocalStorage) Upload(key string, src io.Reader) error {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", key, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file %s: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) Delete(key string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorage) PublicURL(key string) string {
	return s.publicURL + "/uploads/tours/" + key
}
