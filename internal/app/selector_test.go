package app

import (
	"testing"

	"daily-trivia-service/internal/domain"
)

func fixedCatalog(n int) domain.Catalog {
	catalog := make(domain.Catalog, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, domain.Question{
			ID:           i + 1,
			Text:         "q",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
		})
	}
	return catalog
}

func TestSelectQuestionMatchesSeedModulo(t *testing.T) {
	catalog := fixedCatalog(7)
	day := domain.DayKey("2026-08-29")

	got, err := SelectQuestion(catalog, day)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	want := catalog[day.Seed()%len(catalog)]
	if got.ID != want.ID {
		t.Fatalf("selected %d, want %d", got.ID, want.ID)
	}

	// Same day always yields the same entry.
	for i := 0; i < 10; i++ {
		q, _ := SelectQuestion(catalog, day)
		if q.ID != got.ID {
			t.Fatalf("selection not stable: %d vs %d", q.ID, got.ID)
		}
	}
}

func TestSelectQuestionCyclesThroughCatalog(t *testing.T) {
	catalog := fixedCatalog(3)
	day := domain.DayKey("2026-08-01")

	seen := make(map[int]bool)
	for i := 0; i < 3; i++ {
		q, err := SelectQuestion(catalog, day)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		seen[q.ID] = true
		day = day.Next()
	}
	if len(seen) != 3 {
		t.Fatalf("3 consecutive days hit %d distinct questions, want 3", len(seen))
	}
}

func TestSelectQuestionEmptyCatalogIsFatal(t *testing.T) {
	if _, err := SelectQuestion(nil, "2026-08-29"); err != domain.ErrEmptyCatalog {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestEpochNumberingIsContinuous(t *testing.T) {
	numbering := Numbering{Policy: NumberPolicyEpoch, Epoch: "2024-01-01"}

	if got := numbering.QuestionNumber("2024-01-01"); got != 1 {
		t.Fatalf("epoch day number = %d, want 1", got)
	}

	// No reset-to-1 discontinuity across the year boundary.
	before := numbering.QuestionNumber("2025-12-31")
	after := numbering.QuestionNumber("2026-01-01")
	if after != before+1 {
		t.Fatalf("numbering jumped from %d to %d at year end", before, after)
	}
}

func TestYearlyNumberingUsesDayOfYear(t *testing.T) {
	numbering := Numbering{Policy: NumberPolicyYearly}

	if got := numbering.QuestionNumber("2026-01-01"); got != 1 {
		t.Fatalf("jan 1 = %d, want 1", got)
	}
	if got := numbering.QuestionNumber("2026-02-01"); got != 32 {
		t.Fatalf("feb 1 = %d, want 32", got)
	}
	if got := numbering.QuestionNumber("2024-12-31"); got != 366 {
		t.Fatalf("leap dec 31 = %d, want 366", got)
	}
}
