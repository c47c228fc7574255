package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

type localStorage struct {
	dir string
}

// NewLocalStorage copies uploads into an app-private directory and hands
// back absolute paths. This is the default backend.
func NewLocalStorage(dir string) (MediaStorage, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, os.ModePerm); err != nil {
		return nil, err
	}
	return &localStorage{dir: abs}, nil
}

func (s *localStorage) PersistImage(_ context.Context, filename string, file io.Reader) (string, error) {
	path := filepath.Join(s.dir, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return path, nil
}
