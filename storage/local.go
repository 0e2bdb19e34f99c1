package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage writes under dir and returns URLs below baseURL/uploads,
// which main serves statically. Dev fallback for the S3 media host.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

func (l *LocalStorage) Store(ctx context.Context, filename string, content io.Reader, contentType string) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFilename(filename))
	path := filepath.Join(l.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", err
	}

	return l.baseURL + "/uploads/" + name, nil
}
