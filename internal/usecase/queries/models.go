package queries

import (
	"context"

	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
)

type ModelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ModelView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ModelView, error)
	FindPublic(ctx context.Context, limit int) ([]*ModelView, error)
	FindReusable(ctx context.Context, limit int) ([]*ModelView, error)
	FindFeatured(ctx context.Context, limit int) ([]*ModelView, error)
}

type ModelQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ModelView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ModelView, error)
	ListPublic(ctx context.Context, limit int) ([]*ModelView, error)
	ListReusable(ctx context.Context, limit int) ([]*ModelView, error)
	ListFeatured(ctx context.Context, limit int) ([]*ModelView, error)
}

type modelQueriesImpl struct {
	store ModelReadStore
}

func NewModelQueries(store ModelReadStore) ModelQueries {
	return &modelQueriesImpl{store: store}
}

// GetByID hides private models from everyone but their owner.
func (q *modelQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ModelView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrModelNotFound
		}
		return nil, errs.Wrap(err, "failed to find model")
	}
	if !view.IsPublic && view.UserID != actor {
		return nil, errs.ErrModelNotFound
	}
	return view, nil
}

func (q *modelQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ModelView, error) {
	views, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user models")
	}
	return views, nil
}

func (q *modelQueriesImpl) ListPublic(ctx context.Context, limit int) ([]*ModelView, error) {
	views, err := q.store.FindPublic(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list public models")
	}
	return views, nil
}

func (q *modelQueriesImpl) ListReusable(ctx context.Context, limit int) ([]*ModelView, error) {
	views, err := q.store.FindReusable(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reusable models")
	}
	return views, nil
}

func (q *modelQueriesImpl) ListFeatured(ctx context.Context, limit int) ([]*ModelView, error) {
	views, err := q.store.FindFeatured(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list featured models")
	}
	return views, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return limit
}
