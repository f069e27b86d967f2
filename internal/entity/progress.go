package entity

// DateLayout is the calendar-date format used for streak bookkeeping. Streak
// math compares calendar dates, not instants, so it is timezone-agnostic.
const DateLayout = "2006-01-02"

// WordPerformance accumulates per-word answer counters.
type WordPerformance struct {
	CorrectAnswers   int    `json:"correctAnswers"`
	IncorrectAnswers int    `json:"incorrectAnswers"`
	LastReviewed     string `json:"lastReviewed,omitempty"` // RFC3339
}

// UserData is the progress aggregate for one user identity.
type UserData struct {
	Points                 int                        `json:"points"`
	CurrentDailyStreak     int                        `json:"currentDailyStreak"`
	LongestDailyStreak     int                        `json:"longestDailyStreak"`
	LastQuizCompletionDate string                     `json:"lastQuizCompletionDate,omitempty"` // YYYY-MM-DD
	WordStats              map[string]WordPerformance `json:"wordStats"`
}

// NewUserData returns the zero-valued progress aggregate.
func NewUserData() *UserData {
	return &UserData{WordStats: make(map[string]WordPerformance)}
}

// Normalize repairs nil maps after deserialization.
func (d *UserData) Normalize() {
	if d.WordStats == nil {
		d.WordStats = make(map[string]WordPerformance)
	}
}

// WordPerformanceRow is the reporting view of a word's counters, with the
// word text resolved against the vocabulary dataset.
type WordPerformanceRow struct {
	WordID           string `json:"wordId"`
	WordText         string `json:"word"`
	CorrectAnswers   int    `json:"correctAnswers"`
	IncorrectAnswers int    `json:"incorrectAnswers"`
}

// ProgressSummary is the dashboard projection of UserData.
type ProgressSummary struct {
	Points                 int     `json:"points"`
	CurrentDailyStreak     int     `json:"currentDailyStreak"`
	LongestDailyStreak     int     `json:"longestDailyStreak"`
	LastQuizCompletionDate string  `json:"lastQuizCompletionDate,omitempty"`
	WordsPracticed         int     `json:"wordsPracticed"`
	League                 League  `json:"league"`
	NextLeague             *League `json:"nextLeague,omitempty"`
}
