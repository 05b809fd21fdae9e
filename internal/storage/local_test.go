package storage

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalSaveOpenDelete(t *testing.T) {
	store := NewLocal(t.TempDir(), "/static/uploads/")
	ctx := context.Background()

	content := "jpeg bytes"
	if err := store.Save(ctx, "photos/2026/01/a.jpg", strings.NewReader(content), int64(len(content)), "image/jpeg"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	f, err := store.Open(ctx, "photos/2026/01/a.jpg")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != content {
		t.Fatalf("unexpected content %q", data)
	}

	if err := store.Delete(ctx, "photos/2026/01/a.jpg"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Open(ctx, "photos/2026/01/a.jpg"); err == nil {
		t.Fatalf("expected open to fail after delete")
	}

	// Deleting a missing file is not an error.
	if err := store.Delete(ctx, "photos/2026/01/a.jpg"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestLocalURL(t *testing.T) {
	store := NewLocal(t.TempDir(), "/static/uploads")

	if got := store.URL("photos/a.jpg"); got != "/static/uploads/photos/a.jpg" {
		t.Fatalf("unexpected URL %q", got)
	}
	if got := store.URL("/photos/a.jpg"); got != "/static/uploads/photos/a.jpg" {
		t.Fatalf("unexpected URL for leading slash %q", got)
	}
}
