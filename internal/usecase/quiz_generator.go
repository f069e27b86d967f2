package usecase

import (
	"math/rand"

	"github.com/eslsoft/lexivy/internal/entity"
)

const (
	// DefaultQuestionCount caps a quiz at ten questions unless fewer
	// candidate words are available.
	DefaultQuestionCount = 10
	// DefaultOptionCount is the multiple-choice option count per question.
	DefaultOptionCount = 4
)

// GenerateQuiz turns a candidate word set into an ordered multiple-choice
// question sequence. Distractors are sampled from the full vocabulary pool,
// never from the current word, and never duplicate each other or the correct
// answer. An empty candidate set yields an empty sequence.
//
// The random source is an explicit argument so callers can pin a seed for
// deterministic generation.
func GenerateQuiz(rng *rand.Rand, candidates, pool []entity.Word, questionCount, optionCount int) []entity.QuizQuestion {
	if len(candidates) == 0 || questionCount <= 0 {
		return nil
	}
	if optionCount < 1 {
		optionCount = DefaultOptionCount
	}

	selected := make([]entity.Word, len(candidates))
	copy(selected, candidates)
	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if questionCount < len(selected) {
		selected = selected[:questionCount]
	}

	questions := make([]entity.QuizQuestion, 0, len(selected))
	for _, word := range selected {
		questionType := entity.WordToDefinition
		if rng.Float64() < 0.5 {
			questionType = entity.DefinitionToWord
		}

		question := entity.QuizQuestion{
			WordID:   word.ID,
			WordText: word.Text,
			Type:     questionType,
		}
		var correct string
		if questionType == entity.WordToDefinition {
			question.WordToGuess = word.Text
			correct = word.Definition
		} else {
			question.DefinitionToGuess = word.Definition
			correct = word.Text
		}

		options := append([]string{correct}, sampleDistractors(rng, pool, word.ID, correct, questionType, optionCount-1)...)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		question.Options = options
		question.CorrectAnswer = correct
		questions = append(questions, question)
	}
	return questions
}

// sampleDistractors draws up to n distinct wrong answers of the right kind
// from the pool. When the pool holds fewer distinct values, the whole
// distinct set is used.
func sampleDistractors(rng *rand.Rand, pool []entity.Word, excludeID, correct string, questionType entity.QuestionType, n int) []string {
	if n <= 0 {
		return nil
	}

	seen := map[string]struct{}{correct: {}}
	values := make([]string, 0, len(pool))
	for _, word := range pool {
		if word.ID == excludeID {
			continue
		}
		value := word.Definition
		if questionType == entity.DefinitionToWord {
			value = word.Text
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	if n < len(values) {
		values = values[:n]
	}
	return values
}
