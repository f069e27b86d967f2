// Package dataset converts word-list spreadsheets into the vocabulary JSON
// document served by the word repository.
package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eslsoft/lexivy/internal/entity"
)

// ImportConfig defines where the spreadsheet rows live. Expected columns:
// id, text, definition, topic, level, example sentence, synonyms, antonyms,
// roots, confused with, pronunciation, part of speech. List cells are
// comma-separated.
type ImportConfig struct {
	SheetName string
	StartRow  int // 1-based; rows before it are headers
}

// DefaultImportConfig reads Sheet1 and skips one header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{SheetName: "Sheet1", StartRow: 2}
}

// ImportXLSX reads a spreadsheet into word entries, validating ids as it
// goes. Blank rows are skipped.
func ImportXLSX(path string, config ImportConfig) ([]entity.Word, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", config.SheetName, err)
	}

	seen := make(map[string]struct{})
	words := make([]entity.Word, 0, len(rows))
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}

		word, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if word == nil {
			continue
		}
		if _, dup := seen[word.ID]; dup {
			return nil, fmt.Errorf("row %d: duplicate word id %q", i+1, word.ID)
		}
		seen[word.ID] = struct{}{}
		words = append(words, *word)
	}
	return words, nil
}

// Marshal renders the words as the vocabulary JSON document.
func Marshal(words []entity.Word) ([]byte, error) {
	return json.MarshalIndent(words, "", "  ")
}

func parseRow(row []string) (*entity.Word, error) {
	if cell(row, 0) == "" && cell(row, 1) == "" {
		return nil, nil
	}

	word := entity.Word{
		ID:              cell(row, 0),
		Text:            cell(row, 1),
		Definition:      cell(row, 2),
		Topic:           cell(row, 3),
		ExampleSentence: cell(row, 5),
		Synonyms:        splitList(cell(row, 6)),
		Antonyms:        splitList(cell(row, 7)),
		Roots:           splitList(cell(row, 8)),
		ConfusedWith:    splitList(cell(row, 9)),
		Pronunciation:   cell(row, 10),
		PartOfSpeech:    cell(row, 11),
	}
	if word.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	if word.Text == "" || word.Definition == "" {
		return nil, fmt.Errorf("word %q needs both text and definition", word.ID)
	}

	if raw := cell(row, 4); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("word %q has non-numeric level %q", word.ID, raw)
		}
		word.Level = level
	}
	if word.Topic != "" && word.Level != 0 {
		return nil, fmt.Errorf("word %q sets both topic and level", word.ID)
	}
	return &word, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
