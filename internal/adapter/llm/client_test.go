package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eslsoft/lexivy/internal/entity"
)

func TestGenerateMnemonic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/mnemonic" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["wordText"] != "Abate" || req["wordDefinition"] != "to lessen" {
			t.Errorf("unexpected request body: %v", req)
		}
		json.NewEncoder(w).Encode(map[string]string{"mnemonic": "a bait that shrinks"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	mnemonic, err := client.GenerateMnemonic(context.Background(), "Abate", "to lessen")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if mnemonic != "a bait that shrinks" {
		t.Fatalf("unexpected mnemonic %q", mnemonic)
	}
}

func TestGenerateMnemonicRejectsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"mnemonic": ""})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.GenerateMnemonic(context.Background(), "Abate", "to lessen"); err == nil {
		t.Fatal("expected an error for an empty mnemonic")
	}
}

func TestSuggestWordsForReview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/review-suggestions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			PastPerformance []struct {
				Word             string `json:"word"`
				CorrectAnswers   int    `json:"correctAnswers"`
				IncorrectAnswers int    `json:"incorrectAnswers"`
			} `json:"pastPerformance"`
			NumberOfWordsToSuggest int `json:"numberOfWordsToSuggest"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.PastPerformance) != 2 || req.NumberOfWordsToSuggest != 3 {
			t.Errorf("unexpected request: %+v", req)
		}
		if req.PastPerformance[0].Word != "Abate" || req.PastPerformance[0].IncorrectAnswers != 4 {
			t.Errorf("unexpected performance row: %+v", req.PastPerformance[0])
		}
		json.NewEncoder(w).Encode(map[string][]string{"suggestedWords": {"Abate", "Guile"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	rows := []entity.WordPerformanceRow{
		{WordID: "abate", WordText: "Abate", CorrectAnswers: 1, IncorrectAnswers: 4},
		{WordID: "guile", WordText: "Guile", CorrectAnswers: 2, IncorrectAnswers: 2},
	}
	words, err := client.SuggestWordsForReview(context.Background(), rows, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(words) != 2 || words[0] != "Abate" || words[1] != "Guile" {
		t.Fatalf("unexpected suggestions %v", words)
	}
}

func TestClientSurfacesUpstreamErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.GenerateMnemonic(context.Background(), "Abate", "to lessen")
	if err == nil {
		t.Fatal("expected an error for a 503 response")
	}
}
