package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/eslsoft/lexivy/internal/entity"
	"github.com/eslsoft/lexivy/internal/infrastructure/storage"
)

func TestProgressRepositoryRoundTrip(t *testing.T) {
	repo := NewProgressRepository(storage.NewMemoryStore())
	ctx := context.Background()

	data := entity.NewUserData()
	data.Points = 120
	data.CurrentDailyStreak = 2
	data.LongestDailyStreak = 4
	data.LastQuizCompletionDate = "2024-03-01"
	data.WordStats["abate"] = entity.WordPerformance{CorrectAnswers: 3, IncorrectAnswers: 1}

	if err := repo.Save(ctx, "alice", data); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Points != 120 || got.LongestDailyStreak != 4 || got.LastQuizCompletionDate != "2024-03-01" {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if stats := got.WordStats["abate"]; stats.CorrectAnswers != 3 || stats.IncorrectAnswers != 1 {
		t.Fatalf("round trip lost word stats: %+v", stats)
	}
}

func TestProgressRepositoryAbsentUser(t *testing.T) {
	repo := NewProgressRepository(storage.NewMemoryStore())

	got, err := repo.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("absent user must not error: %v", err)
	}
	if got != nil {
		t.Fatalf("absent user must load nil, got %+v", got)
	}
}

func TestProgressRepositoryIdentityIsolation(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewProgressRepository(store)
	ctx := context.Background()

	alice := entity.NewUserData()
	alice.Points = 100
	bob := entity.NewUserData()
	bob.Points = 200
	if err := repo.Save(ctx, "alice", alice); err != nil {
		t.Fatalf("save alice: %v", err)
	}
	if err := repo.Save(ctx, "bob", bob); err != nil {
		t.Fatalf("save bob: %v", err)
	}

	got, err := repo.Load(ctx, "alice")
	if err != nil || got.Points != 100 {
		t.Fatalf("alice load: %v, %+v", err, got)
	}
}

func TestProgressRepositoryEmptyIdentityIsAnonymous(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewProgressRepository(store)
	ctx := context.Background()

	data := entity.NewUserData()
	data.Points = 42
	if err := repo.Save(ctx, "", data); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, "anonymous")
	if err != nil || got == nil || got.Points != 42 {
		t.Fatalf("empty identity must alias anonymous: %v, %+v", err, got)
	}
}

func TestProgressRepositoryStripsLegacyFields(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewProgressRepository(store)
	ctx := context.Background()

	stored := `{"points": 50, "currentDailyStreak": 1, "unlockedLevels": [1, 2, 3], "wordStats": {}}`
	if err := store.Write(ctx, "progress:alice", stored); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	got, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Points != 50 || got.CurrentDailyStreak != 1 {
		t.Fatalf("migration lost current fields: %+v", got)
	}

	// A save after the migration must not resurrect the legacy field.
	if err := repo.Save(ctx, "alice", got); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := store.Read(ctx, "progress:alice")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.Contains(raw, "unlockedLevels") {
		t.Fatalf("legacy field persisted after migration: %s", raw)
	}
}

func TestProgressRepositoryCorruptDocument(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewProgressRepository(store)
	ctx := context.Background()

	if err := store.Write(ctx, "progress:alice", "{broken"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	if _, err := repo.Load(ctx, "alice"); err == nil {
		t.Fatal("expected a decode error for a corrupt document")
	}
}

func TestProgressRepositoryNilStatsNormalized(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewProgressRepository(store)
	ctx := context.Background()

	if err := store.Write(ctx, "progress:alice", `{"points": 10}`); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	got, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.WordStats == nil {
		t.Fatal("wordStats must never be nil after load")
	}
}
