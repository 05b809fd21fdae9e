package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local stores files on disk under a base directory and serves them
// through the static file route.
type Local struct {
	baseDir string
	urlPath string
}

// NewLocal creates a disk-backed storage rooted at baseDir. Saved keys
// resolve to urlPath/<key>.
func NewLocal(baseDir, urlPath string) *Local {
	return &Local{
		baseDir: baseDir,
		urlPath: strings.TrimSuffix(urlPath, "/"),
	}
}

func (l *Local) path(key string) string {
	return filepath.Join(l.baseDir, filepath.FromSlash(key))
}

// Save writes the file, creating parent directories as needed.
func (l *Local) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	target := l.path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	f, err := os.Create(target)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Open returns the stored file for reading.
func (l *Local) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return os.Open(l.path(key))
}

// Delete removes the stored file. Missing files are not an error.
func (l *Local) Delete(ctx context.Context, key string) error {
	err := os.Remove(l.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// URL resolves a key to its public path.
func (l *Local) URL(key string) string {
	return l.urlPath + "/" + path.Clean(strings.TrimPrefix(key, "/"))
}
