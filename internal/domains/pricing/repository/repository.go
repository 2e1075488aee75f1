package repository

import (
	"context"
	"strings"
	"sync"

	"sahayak/internal/domains/pricing/model"
)

// PriceBook holds the pricing table rows grouped by service category. The
// default implementation is an in-process store seeded with the shipped
// catalogue; embedding applications replace the rows wholesale when their
// backend delivers fresher ones.
type PriceBook interface {
	GetByCategory(ctx context.Context, category string) ([]model.PriceRow, error)
	GetAll(ctx context.Context) ([]model.PriceRow, error)
	Replace(ctx context.Context, rows []model.PriceRow) error
}

type repositoryImpl struct {
	mu   sync.RWMutex
	rows map[string][]model.PriceRow
}

func New() PriceBook {
	repo := &repositoryImpl{
		rows: make(map[string][]model.PriceRow),
	}

	repo.replaceLocked(seedRows())

	return repo
}

func (r *repositoryImpl) GetByCategory(_ context.Context, category string) ([]model.PriceRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.rows[strings.ToLower(category)]

	out := make([]model.PriceRow, len(rows))
	copy(out, rows)

	return out, nil
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.PriceRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.PriceRow
	for _, rows := range r.rows {
		out = append(out, rows...)
	}

	return out, nil
}

func (r *repositoryImpl) Replace(_ context.Context, rows []model.PriceRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.replaceLocked(rows)

	return nil
}

func (r *repositoryImpl) replaceLocked(rows []model.PriceRow) {
	grouped := make(map[string][]model.PriceRow)
	for _, row := range rows {
		key := strings.ToLower(row.Category)
		grouped[key] = append(grouped[key], row)
	}

	r.rows = grouped
}
