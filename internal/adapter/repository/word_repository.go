package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/lexivy/internal/entity"
	"github.com/eslsoft/lexivy/internal/repository"
)

// wordRepository serves the immutable vocabulary dataset from memory. The
// dataset is decoded once at construction; all queries are lock-free reads.
type wordRepository struct {
	words  []entity.Word
	byID   map[string]entity.Word
	topics []entity.Topic
}

// NewWordRepository decodes a vocabulary JSON document (an array of words)
// and indexes it by id. Topics are derived from the distinct topic names
// present in the dataset.
func NewWordRepository(raw []byte) (repository.WordRepository, error) {
	var words []entity.Word
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, fmt.Errorf("decode vocabulary dataset: %w", err)
	}

	byID := make(map[string]entity.Word, len(words))
	for _, word := range words {
		if word.ID == "" {
			return nil, fmt.Errorf("vocabulary entry %q has no id", word.Text)
		}
		if _, dup := byID[word.ID]; dup {
			return nil, fmt.Errorf("duplicate word id %q", word.ID)
		}
		byID[word.ID] = word
	}

	names := lo.Uniq(lo.FilterMap(words, func(w entity.Word, _ int) (string, bool) {
		return w.Topic, w.Topic != ""
	}))
	sort.Strings(names)
	topics := lo.Map(names, func(name string, _ int) entity.Topic {
		return entity.Topic{ID: topicID(name), Name: name}
	})

	return &wordRepository{words: words, byID: byID, topics: topics}, nil
}

func (r *wordRepository) All(ctx context.Context) ([]entity.Word, error) {
	out := make([]entity.Word, len(r.words))
	copy(out, r.words)
	return out, nil
}

func (r *wordRepository) ByTopic(ctx context.Context, name string) ([]entity.Word, error) {
	return lo.Filter(r.words, func(w entity.Word, _ int) bool {
		return strings.EqualFold(w.Topic, name)
	}), nil
}

func (r *wordRepository) ByLevel(ctx context.Context, level int) ([]entity.Word, error) {
	return lo.Filter(r.words, func(w entity.Word, _ int) bool {
		return w.Level == level
	}), nil
}

func (r *wordRepository) ByID(ctx context.Context, id string) (*entity.Word, error) {
	word, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &word, nil
}

func (r *wordRepository) Topics(ctx context.Context) ([]entity.Topic, error) {
	out := make([]entity.Topic, len(r.topics))
	copy(out, r.topics)
	return out, nil
}

func topicID(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
