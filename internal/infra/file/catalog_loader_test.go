package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"daily-trivia-service/internal/domain"
)

func TestCatalogLoaderReadsOrderedQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `[
		{"id": 1, "question": "Q1", "options": ["a","b","c","d"], "correctIndex": 2, "category": "geo", "funFact": "f1"},
		{"id": 2, "question": "Q2", "options": ["a","b","c","d"], "correctIndex": 0, "category": "sci", "funFact": "f2"}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	catalog, err := NewCatalogLoader(path).LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(catalog) != 2 || catalog[0].ID != 1 || catalog[1].ID != 2 {
		t.Fatalf("order not preserved: %+v", catalog)
	}
	if catalog[0].CorrectIndex != 2 || catalog[0].Category != "geo" || catalog[0].FunFact != "f1" {
		t.Fatalf("fields lost: %+v", catalog[0])
	}
}

func TestCatalogLoaderMissingFile(t *testing.T) {
	loader := NewCatalogLoader(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := loader.LoadCatalog(context.Background()); !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

func TestCatalogLoaderEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := NewCatalogLoader(path).LoadCatalog(context.Background()); !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}
