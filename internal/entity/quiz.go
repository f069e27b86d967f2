package entity

import "time"

// QuestionType determines the direction of a quiz question.
type QuestionType string

const (
	// WordToDefinition shows the word and asks for its definition.
	WordToDefinition QuestionType = "wordToDefinition"
	// DefinitionToWord shows the definition and asks for the word.
	DefinitionToWord QuestionType = "definitionToWord"
)

// QuizQuestion is one multiple-choice question derived from a word. Exactly
// one of WordToGuess / DefinitionToGuess is set, matching Type.
type QuizQuestion struct {
	WordID            string       `json:"wordId"`
	WordText          string       `json:"wordText"`
	Type              QuestionType `json:"questionType"`
	WordToGuess       string       `json:"wordToGuess,omitempty"`
	DefinitionToGuess string       `json:"definitionToGuess,omitempty"`
	Options           []string     `json:"options"`
	CorrectAnswer     string       `json:"correctAnswer"`

	// Answer state, populated once the user picks an option.
	Answered bool   `json:"answered"`
	Selected string `json:"selected,omitempty"`
	Correct  bool   `json:"correct"`
}

// SessionState tracks where a quiz attempt is in its lifecycle.
type SessionState string

const (
	SessionInProgress     SessionState = "in_progress"
	SessionAnswerRevealed SessionState = "answer_revealed"
	SessionCompleted      SessionState = "completed"
)

// QuizSession is one quiz attempt: the generated questions, the cursor and
// the running tally. Candidates and the requested counts are retained so a
// restart regenerates the same quiz shape from the same word pool.
type QuizSession struct {
	ID             string
	Identity       string
	Candidates     []Word
	QuestionCount  int
	OptionCount    int
	Questions      []QuizQuestion
	Index          int
	CorrectCount   int
	IncorrectCount int
	State          SessionState
	CreatedAt      time.Time
}

// Current returns the question at the cursor, or nil once completed.
func (s *QuizSession) Current() *QuizQuestion {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// PointsEarned applies the scoring formula to the session tally.
func (s *QuizSession) PointsEarned() int {
	return QuizPoints(s.CorrectCount, s.IncorrectCount)
}

// QuizPoints computes the points for a completed quiz. Never negative.
func QuizPoints(correct, incorrect int) int {
	points := correct*10 - incorrect*5
	if points < 0 {
		return 0
	}
	return points
}
