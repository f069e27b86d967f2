package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/lexivy/internal/entity"
	"github.com/eslsoft/lexivy/internal/repository"
)

// DefaultSuggestionCount is how many review words to ask for by default.
const DefaultSuggestionCount = 5

// LLMClient is the contract with the external language-model proxy. Failures
// are transient and never touch progress state.
type LLMClient interface {
	GenerateMnemonic(ctx context.Context, wordText, wordDefinition string) (string, error)
	SuggestWordsForReview(ctx context.Context, pastPerformance []entity.WordPerformanceRow, count int) ([]string, error)
}

// AssistUsecase wraps the two AI helper flows: mnemonic generation for a
// single word and review-word suggestion based on past performance.
type AssistUsecase interface {
	Mnemonic(ctx context.Context, wordID string) (string, error)
	SuggestReview(ctx context.Context, identity string, count int) ([]entity.Word, error)
}

func NewAssistUsecase(words repository.WordRepository, progress ProgressUsecase, llm LLMClient) AssistUsecase {
	return &assistUsecase{words: words, progress: progress, llm: llm}
}

type assistUsecase struct {
	words    repository.WordRepository
	progress ProgressUsecase
	llm      LLMClient
}

func (u *assistUsecase) Mnemonic(ctx context.Context, wordID string) (string, error) {
	word, err := u.words.ByID(ctx, wordID)
	if err != nil {
		return "", fmt.Errorf("resolve word %q: %w", wordID, err)
	}
	if word == nil {
		return "", entity.ErrWordNotFound
	}
	return u.llm.GenerateMnemonic(ctx, word.Text, word.Definition)
}

func (u *assistUsecase) SuggestReview(ctx context.Context, identity string, count int) ([]entity.Word, error) {
	if count <= 0 {
		count = DefaultSuggestionCount
	}

	data, err := u.progress.Data(ctx, identity)
	if err != nil {
		return nil, err
	}
	ids := lo.Keys(data.WordStats)
	sort.Strings(ids)

	performance, err := u.progress.Performance(ctx, identity, ids)
	if err != nil {
		return nil, err
	}
	if len(performance) == 0 {
		return nil, nil
	}

	suggested, err := u.llm.SuggestWordsForReview(ctx, performance, count)
	if err != nil {
		return nil, err
	}

	pool, err := u.words.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	byText := lo.KeyBy(pool, func(w entity.Word) string { return strings.ToLower(w.Text) })

	words := make([]entity.Word, 0, len(suggested))
	for _, text := range suggested {
		if word, ok := byText[strings.ToLower(strings.TrimSpace(text))]; ok {
			words = append(words, word)
		}
	}
	return words, nil
}
