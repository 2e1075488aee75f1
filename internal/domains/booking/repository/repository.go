package repository

import (
	"context"
	"sync"

	"sahayak/infras/otel"
	"sahayak/internal/domains/booking/model"
	"sahayak/shared/constant"
	"sahayak/shared/failure"
)

type Session interface {
	Insert(ctx context.Context, session model.Session) error
	GetByID(ctx context.Context, id string) (model.Session, error)
	Update(ctx context.Context, session model.Session) error
	Delete(ctx context.Context, id string) error
}

// Dialog sessions are transient UI state, discarded when the dialog closes.
// A guarded map is the whole store.
type repositoryImpl struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
	otel     otel.Otel
}

func New(o otel.Otel) Session {
	return &repositoryImpl{
		sessions: make(map[string]model.Session),
		otel:     o,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, session model.Session) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertDialogSession")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		err := failure.Conflict("dialog session already open")
		scope.TraceError(err)

		return err // nolint:wrapcheck
	}
	r.sessions[session.ID] = session

	return nil
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Session, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetDialogSession")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sessions[id], nil
}

func (r *repositoryImpl) Update(ctx context.Context, session model.Session) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateDialogSession")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		err := failure.NotFound(model.EntityName)
		scope.TraceError(err)

		return err // nolint:wrapcheck
	}
	r.sessions[session.ID] = session

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteDialogSession")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		err := failure.NotFound(model.EntityName)
		scope.TraceError(err)

		return err // nolint:wrapcheck
	}
	delete(r.sessions, id)

	return nil
}
