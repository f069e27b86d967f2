package repository

import (
	"context"

	"github.com/eslsoft/lexivy/internal/entity"
)

// WordRepository defines read access to the immutable vocabulary dataset.
type WordRepository interface {
	All(ctx context.Context) ([]entity.Word, error)
	ByTopic(ctx context.Context, name string) ([]entity.Word, error)
	ByLevel(ctx context.Context, level int) ([]entity.Word, error)
	// ByID returns (nil, nil) when the id is unknown.
	ByID(ctx context.Context, id string) (*entity.Word, error)
	Topics(ctx context.Context) ([]entity.Topic, error)
}
