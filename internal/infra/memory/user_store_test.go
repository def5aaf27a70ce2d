package memory

import (
	"context"
	"errors"
	"testing"

	"daily-trivia-service/internal/domain"
)

func TestUserStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	if _, err := store.Get(ctx, 42); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	rec := domain.NewUserRecord(42)
	rec.Username = "alice"
	rec.AnswerHistory["2026-08-29"] = domain.AnswerRecord{Correct: true}
	if err := store.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "alice" || len(got.AnswerHistory) != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Mutating the returned record must not leak into the store.
	got.AnswerHistory["2026-08-30"] = domain.AnswerRecord{}
	again, _ := store.Get(ctx, 42)
	if len(again.AnswerHistory) != 1 {
		t.Fatalf("caller mutation leaked into store")
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all[0].FID != 42 {
		t.Fatalf("unexpected snapshot: %+v", all)
	}
}
