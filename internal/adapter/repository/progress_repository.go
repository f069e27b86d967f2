package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eslsoft/lexivy/internal/entity"
	"github.com/eslsoft/lexivy/internal/infrastructure/storage"
	"github.com/eslsoft/lexivy/internal/repository"
)

const progressKeyPrefix = "progress:"

// Fields from retired schema versions, stripped on load instead of rejected.
var legacyProgressFields = []string{"unlockedLevels"}

// progressRepository stores the progress aggregate as a JSON document in the
// key-value backend, one key per user identity.
type progressRepository struct {
	store storage.Store
}

func NewProgressRepository(store storage.Store) repository.ProgressRepository {
	return &progressRepository{store: store}
}

func (r *progressRepository) Load(ctx context.Context, identity string) (*entity.UserData, error) {
	raw, err := r.store.Read(ctx, progressKey(identity))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress: %w", err)
	}
	return decodeUserData([]byte(raw))
}

func (r *progressRepository) Save(ctx context.Context, identity string, data *entity.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := r.store.Write(ctx, progressKey(identity), string(raw)); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

func progressKey(identity string) string {
	if identity == "" {
		identity = "anonymous"
	}
	return progressKeyPrefix + identity
}

// decodeUserData runs the stored document through the schema migration
// before decoding it into the current aggregate shape.
func decodeUserData(raw []byte) (*entity.UserData, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	migrateStoredProgress(fields)

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode migrated progress: %w", err)
	}
	data := entity.NewUserData()
	if err := json.Unmarshal(merged, data); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	data.Normalize()
	return data, nil
}

// migrateStoredProgress maps older persisted shapes onto the current one.
func migrateStoredProgress(fields map[string]json.RawMessage) {
	for _, name := range legacyProgressFields {
		delete(fields, name)
	}
}
