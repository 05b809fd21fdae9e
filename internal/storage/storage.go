package storage

import (
	"context"
	"io"
)

// Storage persists photo files and resolves their public URLs.
// Keys are slash-separated relative paths such as photos/2026/01/x.jpg.
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
