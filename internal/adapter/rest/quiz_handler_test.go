package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/lexivy/internal/adapter/repository"
	"github.com/eslsoft/lexivy/internal/infrastructure/storage"
	"github.com/eslsoft/lexivy/internal/usecase"
)

func testAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataset := `[
	  {"id": "w1", "text": "Abate", "definition": "to lessen in intensity", "level": 1},
	  {"id": "w2", "text": "Candid", "definition": "truthful and straightforward", "level": 1},
	  {"id": "w3", "text": "Guile", "definition": "sly cunning", "level": 1},
	  {"id": "w4", "text": "Zephyr", "definition": "a gentle breeze", "level": 2},
	  {"id": "w5", "text": "Placid", "definition": "calm and peaceful", "level": 2}
	]`
	words, err := adapterrepo.NewWordRepository([]byte(dataset))
	if err != nil {
		t.Fatalf("word repository: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	progressRepo := adapterrepo.NewProgressRepository(storage.NewMemoryStore())
	progress := usecase.NewProgressUsecase(progressRepo, words, logger)
	quiz := usecase.NewQuizUsecase(words, progress)

	engine := gin.New()
	api := engine.Group("/api")
	NewWordHandler(words).Register(api)
	NewQuizHandler(quiz, "anonymous").Register(api)
	NewProgressHandler(progress, "anonymous").Register(api)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User", "alice")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Body.String(), "{") {
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return rec, payload
}

func TestQuizFlowOverHTTP(t *testing.T) {
	engine := testAPI(t)

	rec, session := doJSON(t, engine, http.MethodPost, "/api/quiz", `{"level": 1, "questions": 3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start: status %d, body %s", rec.Code, rec.Body.String())
	}
	id, _ := session["id"].(string)
	if id == "" {
		t.Fatalf("start returned no session id: %v", session)
	}
	if session["totalQuestions"].(float64) != 3 {
		t.Fatalf("expected 3 questions, got %v", session["totalQuestions"])
	}
	if q, ok := session["question"].(map[string]any); !ok {
		t.Fatalf("start returned no current question: %v", session)
	} else if _, leaked := q["correctAnswer"]; leaked {
		t.Fatalf("unanswered question leaked the answer: %v", q)
	}

	for i := 0; i < 3; i++ {
		rec, current := doJSON(t, engine, http.MethodGet, "/api/quiz/"+id, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("get %d: status %d", i, rec.Code)
		}
		question := current["question"].(map[string]any)
		options := question["options"].([]any)
		first := options[0].(string)

		rec, answered := doJSON(t, engine, http.MethodPost, "/api/quiz/"+id+"/answer",
			fmt.Sprintf(`{"option": %q}`, first))
		if rec.Code != http.StatusOK {
			t.Fatalf("answer %d: status %d, body %s", i, rec.Code, rec.Body.String())
		}
		if answered["state"] != "answer_revealed" {
			t.Fatalf("answer %d: state %v", i, answered["state"])
		}
		revealed := answered["question"].(map[string]any)
		if answer, ok := revealed["correctAnswer"].(string); !ok || answer == "" {
			t.Fatalf("answer %d: correct answer not revealed: %v", i, revealed)
		}
		if _, ok := revealed["correct"].(bool); !ok {
			t.Fatalf("answer %d: verdict not revealed: %v", i, revealed)
		}

		rec, _ = doJSON(t, engine, http.MethodPost, "/api/quiz/"+id+"/next", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("next %d: status %d, body %s", i, rec.Code, rec.Body.String())
		}
	}

	rec, final := doJSON(t, engine, http.MethodGet, "/api/quiz/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("final get: status %d", rec.Code)
	}
	if final["state"] != "completed" {
		t.Fatalf("expected completed session, got %v", final["state"])
	}
	if _, ok := final["pointsEarned"]; !ok {
		t.Fatalf("completed session missing pointsEarned: %v", final)
	}
	if _, ok := final["question"]; ok {
		t.Fatalf("completed session still carries a question: %v", final)
	}

	// The completion must be visible on the progress dashboard.
	rec, summary := doJSON(t, engine, http.MethodGet, "/api/progress", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("progress: status %d", rec.Code)
	}
	if summary["currentDailyStreak"].(float64) != 1 {
		t.Fatalf("expected streak 1 after completion, got %v", summary["currentDailyStreak"])
	}
	if summary["wordsPracticed"].(float64) != 3 {
		t.Fatalf("expected 3 practiced words, got %v", summary["wordsPracticed"])
	}
}

func TestQuizAnswerRequiredOverHTTP(t *testing.T) {
	engine := testAPI(t)

	rec, session := doJSON(t, engine, http.MethodPost, "/api/quiz", `{"questions": 2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start: status %d", rec.Code)
	}
	id := session["id"].(string)

	rec, _ = doJSON(t, engine, http.MethodPost, "/api/quiz/"+id+"/next", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for next without answer, got %d", rec.Code)
	}
}

func TestQuizStartNoCandidatesOverHTTP(t *testing.T) {
	engine := testAPI(t)

	rec, _ := doJSON(t, engine, http.MethodPost, "/api/quiz", `{"topic": "no-such-topic"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for an empty candidate set, got %d", rec.Code)
	}
}

func TestQuizUnknownSessionOverHTTP(t *testing.T) {
	engine := testAPI(t)

	rec, _ := doJSON(t, engine, http.MethodGet, "/api/quiz/no-such-session", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown session, got %d", rec.Code)
	}
}

func TestQuizAnswerRequiresOption(t *testing.T) {
	engine := testAPI(t)

	rec, session := doJSON(t, engine, http.MethodPost, "/api/quiz", `{"questions": 1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("start: status %d", rec.Code)
	}
	id := session["id"].(string)

	rec, _ = doJSON(t, engine, http.MethodPost, "/api/quiz/"+id+"/answer", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing option, got %d", rec.Code)
	}
}

func TestWordEndpointsOverHTTP(t *testing.T) {
	engine := testAPI(t)

	rec, _ := doJSON(t, engine, http.MethodGet, "/api/words?level=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("words by level: status %d", rec.Code)
	}
	var words []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &words); err != nil {
		t.Fatalf("decode words: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 level-2 words, got %d", len(words))
	}

	rec, word := doJSON(t, engine, http.MethodGet, "/api/words/w1", "")
	if rec.Code != http.StatusOK || word["text"] != "Abate" {
		t.Fatalf("word by id: status %d, %v", rec.Code, word)
	}

	rec, _ = doJSON(t, engine, http.MethodGet, "/api/words/ghost", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown word, got %d", rec.Code)
	}
}
