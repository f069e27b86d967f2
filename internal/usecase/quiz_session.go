package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/lexivy/internal/entity"
	"github.com/eslsoft/lexivy/internal/repository"
)

// StartQuizParams selects the candidate word set and quiz shape for a new
// session. At most one of Topic, Level or WordIDs should be set; when none
// is, the whole vocabulary is eligible.
type StartQuizParams struct {
	Identity      string
	Topic         string
	Level         int
	WordIDs       []string
	QuestionCount int
	OptionCount   int
}

// QuizUsecase drives quiz attempts from generation through completion.
// Per-question answers are recorded against the progress store the moment an
// option is selected; the aggregate completion record is written exactly once
// when the last question is advanced past.
type QuizUsecase interface {
	Start(ctx context.Context, params StartQuizParams) (*entity.QuizSession, error)
	Get(ctx context.Context, id string) (*entity.QuizSession, error)
	Answer(ctx context.Context, id, option string) (*entity.QuizSession, error)
	Next(ctx context.Context, id string) (*entity.QuizSession, error)
	Restart(ctx context.Context, id string) (*entity.QuizSession, error)
}

// sessionTTL bounds how long a session is kept in memory. Progress already
// persisted for an expired session is unaffected.
const sessionTTL = 24 * time.Hour

// NewQuizUsecase wires the word dataset and progress store with a
// time-seeded random source.
func NewQuizUsecase(words repository.WordRepository, progress ProgressUsecase) QuizUsecase {
	return &quizUsecase{
		words:    words,
		progress: progress,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:    uuid.NewString,
		sessions: make(map[string]*entity.QuizSession),
	}
}

type quizUsecase struct {
	words    repository.WordRepository
	progress ProgressUsecase
	rng      *rand.Rand
	newID    func() string

	mu       sync.Mutex
	sessions map[string]*entity.QuizSession
}

func (u *quizUsecase) Start(ctx context.Context, params StartQuizParams) (*entity.QuizSession, error) {
	candidates, err := u.candidateWords(ctx, params)
	if err != nil {
		return nil, err
	}

	pool, err := u.words.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	questionCount := params.QuestionCount
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	optionCount := params.OptionCount
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.evictExpired(time.Now())

	questions := GenerateQuiz(u.rng, candidates, pool, questionCount, optionCount)
	if len(questions) == 0 {
		return nil, entity.ErrNoQuestions
	}

	session := &entity.QuizSession{
		ID:            u.newID(),
		Identity:      params.Identity,
		Candidates:    candidates,
		QuestionCount: questionCount,
		OptionCount:   optionCount,
		Questions:     questions,
		State:         entity.SessionInProgress,
		CreatedAt:     time.Now(),
	}
	u.sessions[session.ID] = session
	return session, nil
}

func (u *quizUsecase) Get(ctx context.Context, id string) (*entity.QuizSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lookup(id)
}

func (u *quizUsecase) Answer(ctx context.Context, id, option string) (*entity.QuizSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.lookup(id)
	if err != nil {
		return nil, err
	}
	if session.State == entity.SessionCompleted {
		return nil, entity.ErrQuizCompleted
	}

	question := session.Current()
	if question == nil {
		return nil, entity.ErrQuizCompleted
	}
	if question.Answered {
		// Once answered, a question is locked; repeats are no-ops.
		return session, nil
	}

	correct := option == question.CorrectAnswer
	if err := u.progress.RecordAnswer(ctx, session.Identity, question.WordID, correct); err != nil {
		return nil, err
	}

	question.Answered = true
	question.Selected = option
	question.Correct = correct
	if correct {
		session.CorrectCount++
	} else {
		session.IncorrectCount++
	}
	session.State = entity.SessionAnswerRevealed
	return session, nil
}

func (u *quizUsecase) Next(ctx context.Context, id string) (*entity.QuizSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.lookup(id)
	if err != nil {
		return nil, err
	}
	if session.State == entity.SessionCompleted {
		return nil, entity.ErrQuizCompleted
	}
	question := session.Current()
	if question == nil || !question.Answered {
		return nil, entity.ErrAnswerRequired
	}

	if session.Index < len(session.Questions)-1 {
		session.Index++
		session.State = entity.SessionInProgress
		return session, nil
	}

	wordIDs := make([]string, 0, len(session.Questions))
	for _, q := range session.Questions {
		wordIDs = append(wordIDs, q.WordID)
	}
	if _, err := u.progress.RecordQuizCompletion(ctx, session.Identity, session.CorrectCount, session.IncorrectCount, wordIDs); err != nil {
		return nil, err
	}
	session.State = entity.SessionCompleted
	return session, nil
}

func (u *quizUsecase) Restart(ctx context.Context, id string) (*entity.QuizSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.lookup(id)
	if err != nil {
		return nil, err
	}

	pool, err := u.words.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	questions := GenerateQuiz(u.rng, session.Candidates, pool, session.QuestionCount, session.OptionCount)
	if len(questions) == 0 {
		return nil, entity.ErrNoQuestions
	}

	session.Questions = questions
	session.Index = 0
	session.CorrectCount = 0
	session.IncorrectCount = 0
	session.State = entity.SessionInProgress
	return session, nil
}

// evictExpired drops sessions past their TTL. Called with the lock held.
func (u *quizUsecase) evictExpired(now time.Time) {
	for id, session := range u.sessions {
		if now.Sub(session.CreatedAt) > sessionTTL {
			delete(u.sessions, id)
		}
	}
}

func (u *quizUsecase) lookup(id string) (*entity.QuizSession, error) {
	session, ok := u.sessions[id]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

func (u *quizUsecase) candidateWords(ctx context.Context, params StartQuizParams) ([]entity.Word, error) {
	switch {
	case len(params.WordIDs) > 0:
		words := make([]entity.Word, 0, len(params.WordIDs))
		for _, id := range params.WordIDs {
			word, err := u.words.ByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("resolve word %q: %w", id, err)
			}
			if word == nil {
				continue
			}
			words = append(words, *word)
		}
		return words, nil
	case params.Topic != "":
		return u.words.ByTopic(ctx, params.Topic)
	case params.Level > 0:
		return u.words.ByLevel(ctx, params.Level)
	default:
		return u.words.All(ctx)
	}
}
