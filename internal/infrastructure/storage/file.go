package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// fileStore writes one file per key under a data directory. Writes go
// through a temp file and rename so readers never observe a partial value.
type fileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("file storage requires a data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Read(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %q: %w", key, err)
	}
	return string(raw), nil
}

func (s *fileStore) Write(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (s *fileStore) Close() error { return nil }

// path maps a key to a filename, escaping separators and other characters
// that are unsafe on common filesystems.
func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
