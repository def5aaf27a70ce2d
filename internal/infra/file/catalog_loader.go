package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"daily-trivia-service/internal/domain"
)

// CatalogLoader reads the question catalog from a JSON file. Unlike the
// user store, an unreadable catalog is a configuration error: the service
// cannot pick a daily question without one.
type CatalogLoader struct {
	path string
}

func NewCatalogLoader(path string) *CatalogLoader {
	return &CatalogLoader{path: path}
}

func (l *CatalogLoader) LoadCatalog(context.Context) (domain.Catalog, error) {
	raw, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("catalog file %s: %w", l.path, domain.ErrCatalogNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", l.path, err)
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", l.path, err)
	}
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	return catalog, nil
}
