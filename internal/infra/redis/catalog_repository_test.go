package redis

import (
	"context"
	"testing"
	"time"

	"daily-trivia-service/internal/domain"
	"daily-trivia-service/internal/infra/memory"
	miniredis "github.com/alicebob/miniredis/v2"
)

func TestCatalogRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	loader := &countingLoader{
		CatalogLoader: memory.NewStaticCatalogLoader(sampleCatalog()),
	}
	repo := NewCatalogRepository(newClient(mr), loader, time.Minute)

	catalog, err := repo.Catalog(context.Background())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if len(catalog) != 2 || catalog[0].ID != 1 || catalog[1].ID != 2 {
		t.Fatalf("catalog order not preserved: %+v", catalog)
	}
	if !mr.Exists("trivia:catalog") {
		t.Fatalf("expected catalog cached in redis")
	}

	// Second call hits the redis cache; loader not incremented.
	if _, err := repo.Catalog(context.Background()); err != nil {
		t.Fatalf("load catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
}

func TestCatalogRepositoryReloadsAfterExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	loader := &countingLoader{
		CatalogLoader: memory.NewStaticCatalogLoader(sampleCatalog()),
	}
	repo := NewCatalogRepository(newClient(mr), loader, time.Minute)

	if _, err := repo.Catalog(context.Background()); err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := repo.Catalog(context.Background()); err != nil {
		t.Fatalf("load after expiry: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected reload after expiry, loader calls=%d", loader.calls)
	}
}

type countingLoader struct {
	memory.CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		{ID: 1, Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, FunFact: "f1"},
		{ID: 2, Text: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3, FunFact: "f2"},
	}
}
