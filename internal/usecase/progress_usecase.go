package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lexivy/internal/entity"
	"github.com/eslsoft/lexivy/internal/repository"
)

// ProgressUsecase is the single source of truth for a user's cumulative
// learning state. Every mutation persists immediately.
type ProgressUsecase interface {
	Data(ctx context.Context, identity string) (*entity.UserData, error)
	Summary(ctx context.Context, identity string) (*entity.ProgressSummary, error)
	RecordAnswer(ctx context.Context, identity, wordID string, correct bool) error
	RecordQuizCompletion(ctx context.Context, identity string, correctCount, incorrectCount int, wordIDs []string) (*entity.UserData, error)
	Performance(ctx context.Context, identity string, wordIDs []string) ([]entity.WordPerformanceRow, error)
	Reset(ctx context.Context, identity string) error
}

// NewProgressUsecase wires the repositories with the wall clock.
func NewProgressUsecase(repo repository.ProgressRepository, words repository.WordRepository, logger *logrus.Logger) ProgressUsecase {
	return &progressUsecase{
		repo:   repo,
		words:  words,
		logger: logger,
		clock:  time.Now,
	}
}

type progressUsecase struct {
	repo   repository.ProgressRepository
	words  repository.WordRepository
	logger *logrus.Logger
	clock  func() time.Time

	mu sync.Mutex
}

// load reads the persisted aggregate, substituting the zero-valued default
// when nothing is stored or the stored state cannot be decoded. Storage
// problems are logged, never surfaced to the caller.
func (u *progressUsecase) load(ctx context.Context, identity string) *entity.UserData {
	data, err := u.repo.Load(ctx, identity)
	if err != nil {
		u.logger.WithError(err).WithField("identity", identity).
			Warn("failed to load user progress, starting from defaults")
		return entity.NewUserData()
	}
	if data == nil {
		return entity.NewUserData()
	}
	data.Normalize()
	return data
}

func (u *progressUsecase) Data(ctx context.Context, identity string) (*entity.UserData, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.load(ctx, identity), nil
}

func (u *progressUsecase) Summary(ctx context.Context, identity string) (*entity.ProgressSummary, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	data := u.load(ctx, identity)
	league, next := entity.LeagueFor(data.Points)
	return &entity.ProgressSummary{
		Points:                 data.Points,
		CurrentDailyStreak:     data.CurrentDailyStreak,
		LongestDailyStreak:     data.LongestDailyStreak,
		LastQuizCompletionDate: data.LastQuizCompletionDate,
		WordsPracticed:         len(data.WordStats),
		League:                 league,
		NextLeague:             next,
	}, nil
}

func (u *progressUsecase) RecordAnswer(ctx context.Context, identity, wordID string, correct bool) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	data := u.load(ctx, identity)
	stats := data.WordStats[wordID]
	if correct {
		stats.CorrectAnswers++
	} else {
		stats.IncorrectAnswers++
	}
	stats.LastReviewed = u.clock().Format(time.RFC3339)
	data.WordStats[wordID] = stats

	if err := u.repo.Save(ctx, identity, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (u *progressUsecase) RecordQuizCompletion(ctx context.Context, identity string, correctCount, incorrectCount int, wordIDs []string) (*entity.UserData, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	data := u.load(ctx, identity)
	data.Points += entity.QuizPoints(correctCount, incorrectCount)

	today := u.clock().Format(entity.DateLayout)
	streak := data.CurrentDailyStreak
	switch {
	case data.LastQuizCompletionDate == "":
		streak = 1
	case data.LastQuizCompletionDate == today:
		// Repeat completions on the same day leave the streak alone.
	default:
		// Only an exactly-one-day gap continues the streak. Larger gaps,
		// unparseable dates and clock rollbacks all reset it.
		if calendarDaysBetween(data.LastQuizCompletionDate, today) == 1 {
			streak++
		} else {
			streak = 1
		}
	}
	// A quiz completed today always counts as a streak of at least one.
	if data.LastQuizCompletionDate != today && streak < 1 {
		streak = 1
	}

	data.CurrentDailyStreak = streak
	if streak > data.LongestDailyStreak {
		data.LongestDailyStreak = streak
	}
	data.LastQuizCompletionDate = today

	if err := u.repo.Save(ctx, identity, data); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return data, nil
}

func (u *progressUsecase) Performance(ctx context.Context, identity string, wordIDs []string) ([]entity.WordPerformanceRow, error) {
	u.mu.Lock()
	data := u.load(ctx, identity)
	u.mu.Unlock()

	rows := make([]entity.WordPerformanceRow, 0, len(wordIDs))
	for _, id := range wordIDs {
		word, err := u.words.ByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve word %q: %w", id, err)
		}
		if word == nil {
			// Stale ids from removed words are silently dropped.
			continue
		}
		stats := data.WordStats[id]
		rows = append(rows, entity.WordPerformanceRow{
			WordID:           id,
			WordText:         word.Text,
			CorrectAnswers:   stats.CorrectAnswers,
			IncorrectAnswers: stats.IncorrectAnswers,
		})
	}
	return rows, nil
}

func (u *progressUsecase) Reset(ctx context.Context, identity string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.repo.Save(ctx, identity, entity.NewUserData()); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

// calendarDaysBetween returns the signed day difference between two
// calendar-date strings. Unparseable dates count as a broken streak.
func calendarDaysBetween(from, to string) int {
	start, err := time.Parse(entity.DateLayout, from)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	end, err := time.Parse(entity.DateLayout, to)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return int(end.Sub(start).Hours() / 24)
}
