package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"daily-trivia-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader loads the question catalog from Postgres, ordered by
// position so selection stays index-stable across restarts.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT id, text, options, correct_index, category, fun_fact
		FROM questions
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var catalog domain.Catalog
	for rows.Next() {
		var (
			q       domain.Question
			options []byte
		)
		if err := rows.Scan(&q.ID, &q.Text, &options, &q.CorrectIndex, &q.Category, &q.FunFact); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options for question %d: %w", q.ID, err)
		}
		catalog = append(catalog, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	return catalog, nil
}
