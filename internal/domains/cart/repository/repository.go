package repository

import (
	"context"
	"sort"
	"sync"

	"sahayak/infras/otel"
	"sahayak/internal/domains/cart/model"
	"sahayak/shared/constant"
	"sahayak/shared/failure"
)

type Cart interface {
	Insert(ctx context.Context, item model.LineItem) error
	GetByID(ctx context.Context, id string) (model.LineItem, error)
	GetAll(ctx context.Context) ([]model.LineItem, error)
	Update(ctx context.Context, item model.LineItem) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// repositoryImpl keeps the cart in process memory. The cart never outlives
// the session, so a guarded map is the whole store.
type repositoryImpl struct {
	mu    sync.RWMutex
	items map[string]model.LineItem
	otel  otel.Otel
}

func New(o otel.Otel) Cart {
	return &repositoryImpl{
		items: make(map[string]model.LineItem),
		otel:  o,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, item model.LineItem) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertCartItem")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		err := failure.Conflict("item is already in the cart")
		scope.TraceError(err)

		return err // nolint:wrapcheck
	}
	r.items[item.ID] = item

	return nil
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.LineItem, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetCartItemByID")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.items[id], nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.LineItem, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetCartItems")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.LineItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}

	// Oldest first, so the cart renders in the order items were added.
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

func (r *repositoryImpl) Update(ctx context.Context, item model.LineItem) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateCartItem")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		err := failure.NotFound(model.EntityName)
		scope.TraceError(err)

		return err // nolint:wrapcheck
	}
	r.items[item.ID] = item

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteCartItem")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		err := failure.NotFound(model.EntityName)
		scope.TraceError(err)

		return err // nolint:wrapcheck
	}
	delete(r.items, id)

	return nil
}

func (r *repositoryImpl) Clear(ctx context.Context) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ClearCart")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]model.LineItem)

	return nil
}
