package rest

import (
	"github.com/eslsoft/lexivy/internal/entity"
)

// QuestionView is one question as the front end may see it. CorrectAnswer
// and the per-question verdict appear only after the question was answered,
// so the client can never reveal an answer by inspecting the payload.
type QuestionView struct {
	Index             int                 `json:"index"`
	WordID            string              `json:"wordId"`
	QuestionType      entity.QuestionType `json:"questionType"`
	WordToGuess       string              `json:"wordToGuess,omitempty"`
	DefinitionToGuess string              `json:"definitionToGuess,omitempty"`
	Options           []string            `json:"options"`
	Answered          bool                `json:"answered"`
	Selected          string              `json:"selected,omitempty"`
	Correct           *bool               `json:"correct,omitempty"`
	CorrectAnswer     string              `json:"correctAnswer,omitempty"`
}

// SessionView is the API projection of a quiz session.
type SessionView struct {
	ID             string              `json:"id"`
	State          entity.SessionState `json:"state"`
	TotalQuestions int                 `json:"totalQuestions"`
	QuestionIndex  int                 `json:"questionIndex"`
	CorrectCount   int                 `json:"correctCount"`
	IncorrectCount int                 `json:"incorrectCount"`
	Question       *QuestionView       `json:"question,omitempty"`
	PointsEarned   *int                `json:"pointsEarned,omitempty"`
}

func newSessionView(s *entity.QuizSession) SessionView {
	view := SessionView{
		ID:             s.ID,
		State:          s.State,
		TotalQuestions: len(s.Questions),
		QuestionIndex:  s.Index,
		CorrectCount:   s.CorrectCount,
		IncorrectCount: s.IncorrectCount,
	}
	if s.State == entity.SessionCompleted {
		points := s.PointsEarned()
		view.PointsEarned = &points
		return view
	}
	if q := s.Current(); q != nil {
		qv := newQuestionView(s.Index, q)
		view.Question = &qv
	}
	return view
}

func newQuestionView(index int, q *entity.QuizQuestion) QuestionView {
	view := QuestionView{
		Index:             index,
		WordID:            q.WordID,
		QuestionType:      q.Type,
		WordToGuess:       q.WordToGuess,
		DefinitionToGuess: q.DefinitionToGuess,
		Options:           q.Options,
		Answered:          q.Answered,
	}
	if q.Answered {
		correct := q.Correct
		view.Selected = q.Selected
		view.Correct = &correct
		view.CorrectAnswer = q.CorrectAnswer
	}
	return view
}
