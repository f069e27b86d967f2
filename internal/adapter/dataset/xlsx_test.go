package dataset

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

var importHeader = []any{
	"id", "text", "definition", "topic", "level", "exampleSentence",
	"synonyms", "antonyms", "roots", "confusedWith", "pronunciation", "partOfSpeech",
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	all := append([][]any{importHeader}, rows...)
	for i, row := range all {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, value); err != nil {
				t.Fatalf("set cell %s: %v", cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "words.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestImportXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"abate", "Abate", "to lessen in intensity", "", 1, "The storm abated.",
			"subside, diminish", "intensify", "bat-", "abet, bate", "/əˈbeɪt/", "verb"},
		{"candid", "Candid", "truthful and straightforward", "Character", "", "",
			"", "", "", "", "", ""},
		{}, // blank rows are tolerated
	})

	words, err := ImportXLSX(path, DefaultImportConfig())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}

	abate := words[0]
	if abate.ID != "abate" || abate.Text != "Abate" || abate.Level != 1 {
		t.Fatalf("unexpected first word: %+v", abate)
	}
	if len(abate.Synonyms) != 2 || abate.Synonyms[0] != "subside" || abate.Synonyms[1] != "diminish" {
		t.Fatalf("comma list not split: %v", abate.Synonyms)
	}
	if len(abate.ConfusedWith) != 2 || abate.ConfusedWith[0] != "abet" || abate.ConfusedWith[1] != "bate" {
		t.Fatalf("confusedWith column lost: %v", abate.ConfusedWith)
	}
	if abate.Pronunciation != "/əˈbeɪt/" || abate.PartOfSpeech != "verb" {
		t.Fatalf("trailing columns lost: %+v", abate)
	}

	candid := words[1]
	if candid.Topic != "Character" || candid.Level != 0 {
		t.Fatalf("unexpected second word: %+v", candid)
	}
	if candid.Synonyms != nil {
		t.Fatalf("empty list cell must stay nil, got %v", candid.Synonyms)
	}
}

func TestImportXLSXValidation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]any
	}{
		{"missing definition", [][]any{{"abate", "Abate", ""}}},
		{"missing id", [][]any{{"", "Abate", "to lessen"}}},
		{"duplicate id", [][]any{
			{"abate", "Abate", "to lessen"},
			{"abate", "Abate", "to lessen"},
		}},
		{"non-numeric level", [][]any{{"abate", "Abate", "to lessen", "", "hard"}}},
		{"topic and level both set", [][]any{{"abate", "Abate", "to lessen", "Nature", 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeWorkbook(t, tc.rows)
			if _, err := ImportXLSX(path, DefaultImportConfig()); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestImportXLSXMissingSheet(t *testing.T) {
	path := writeWorkbook(t, nil)
	if _, err := ImportXLSX(path, ImportConfig{SheetName: "NoSuchSheet", StartRow: 2}); err == nil {
		t.Fatal("expected an error for a missing sheet")
	}
}

func TestMarshalRoundTrips(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"abate", "Abate", "to lessen in intensity", "", 1},
	})
	words, err := ImportXLSX(path, DefaultImportConfig())
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	raw, err := Marshal(words)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(raw) == 0 || raw[0] != '[' {
		t.Fatalf("expected a JSON array document, got %q", raw)
	}
}
