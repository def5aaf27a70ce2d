package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"daily-trivia-service/internal/domain"
)

func TestUserStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")

	store, err := NewUserStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	rec := domain.NewUserRecord(42)
	rec.Username = "alice"
	rec.CurrentStreak = 2
	rec.LongestStreak = 4
	rec.LastPlayedDay = "2026-08-29"
	rec.LastAnswerCorrect = true
	rec.TotalPlayed = 6
	rec.TotalCorrect = 4
	rec.AnswerHistory["2026-08-29"] = domain.AnswerRecord{Correct: true}
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	reopened, err := NewUserStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	got, err := reopened.Get(ctx, 42)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Username != "alice" || got.LongestStreak != 4 || got.TotalPlayed != 6 {
		t.Fatalf("record lost across restart: %+v", got)
	}
	if ans, ok := got.AnswerOn("2026-08-29"); !ok || !ans.Correct {
		t.Fatalf("history lost across restart: %+v", got.AnswerHistory)
	}
}

func TestUserStoreMissingFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "..", "users.json")

	store, err := NewUserStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	all, err := store.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %+v", all)
	}
}

func TestUserStoreCorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	store, err := NewUserStore(path)
	if err != nil {
		t.Fatalf("corrupt store should open empty, got %v", err)
	}
	if _, err := store.Get(context.Background(), 1); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// Writes still work after recovering from corruption.
	if err := store.Put(context.Background(), domain.NewUserRecord(1)); err != nil {
		t.Fatalf("put after corrupt load: %v", err)
	}
}

func TestUserStoreWriteFailurePropagatesAndRollsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.json")

	store, err := NewUserStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Put(context.Background(), domain.NewUserRecord(1)); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Replace the store file with a directory so the rename fails.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := store.Put(context.Background(), domain.NewUserRecord(2)); err == nil {
		t.Fatalf("expected write failure to propagate")
	}
	if _, err := store.Get(context.Background(), 2); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("failed write left record in memory")
	}
}
