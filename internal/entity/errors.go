package entity

import "errors"

// Domain errors for quiz sessions and vocabulary lookups.
var (
	ErrWordNotFound    = errors.New("word not found")
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrNoQuestions     = errors.New("not enough words to start a quiz")
	ErrAnswerRequired  = errors.New("current question has not been answered")
	ErrQuizCompleted   = errors.New("quiz already completed")
)
