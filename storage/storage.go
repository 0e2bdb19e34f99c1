package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// Storage puts an uploaded file somewhere reachable by URL. The rest of
// the system only ever keeps the returned URL.
type Storage interface {
	Store(ctx context.Context, filename string, content io.Reader, contentType string) (string, error)
}

var ErrUnsupportedType = errors.New("unsupported file type")

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// AllowedExt reports whether the filename carries an accepted extension
// (document scans and bike photos only).
func AllowedExt(filename string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(filename))]
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(" ", "_", "\\", "_", "/", "_")
	return replacer.Replace(name)
}
