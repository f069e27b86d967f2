// Package storage provides the key-value backend behind the progress store.
// Keys are opaque strings namespaced by the caller; values are serialized
// documents. Reads and writes are synchronous-complete-or-fail, with no
// partial-write state exposed.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/eslsoft/lexivy/internal/infrastructure/config"
)

// ErrNotFound is returned by Read when a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is the minimal key-value contract the progress store relies on.
type Store interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	Close() error
}

// New builds the Store selected by configuration.
func New(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.Storage.Path)
	case "sqlite":
		return NewSQLiteStore(cfg.Storage.Path)
	case "redis":
		return NewRedisStore(cfg.Storage.Addr, cfg.Storage.DB)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
