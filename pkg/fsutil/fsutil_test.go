package fsutil_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/jwslint/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "App.java")
		content := []byte("class App {}\n")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, info, err := fsutil.ReadFile(context.Background(), path, 0)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
		if info.Path != path {
			t.Errorf("Path = %q, want %q", info.Path, path)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}

		sum := sha256.Sum256(content)
		if info.HashHex() != hex.EncodeToString(sum[:]) {
			t.Errorf("HashHex() = %q", info.HashHex())
		}
	})

	t.Run("returns ErrNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), "/nonexistent/path/App.java", 0)
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("returns ErrIsDirectory for directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir(), 0)
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Fatalf("err = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("returns ErrTooLarge above the limit", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "Big.java")
		if err := os.WriteFile(path, make([]byte, 64), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, _, err := fsutil.ReadFile(context.Background(), path, 32)
		if !errors.Is(err, fsutil.ErrTooLarge) {
			t.Fatalf("err = %v, want ErrTooLarge", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever.java", 0)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	})
}

func TestFileInfo_HashHexNil(t *testing.T) {
	t.Parallel()

	var info *fsutil.FileInfo
	if info.HashHex() != "" {
		t.Error("nil FileInfo should have empty hash")
	}
}
