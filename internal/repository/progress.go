package repository

import (
	"context"

	"github.com/eslsoft/lexivy/internal/entity"
)

// ProgressRepository persists the progress aggregate, namespaced per user
// identity. Load returns (nil, nil) when no state has been saved yet.
type ProgressRepository interface {
	Load(ctx context.Context, identity string) (*entity.UserData, error)
	Save(ctx context.Context, identity string, data *entity.UserData) error
}
