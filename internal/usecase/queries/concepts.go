package queries

import (
	"context"

	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
)

type ConceptReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ConceptImageView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ConceptImageView, error)
	FindSelected(ctx context.Context, userID uuid.UUID) (*ConceptImageView, error)
}

type ConceptQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ConceptImageView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ConceptImageView, error)
	Selected(ctx context.Context, userID uuid.UUID) (*ConceptImageView, error)
}

type conceptQueriesImpl struct {
	store ConceptReadStore
}

func NewConceptQueries(store ConceptReadStore) ConceptQueries {
	return &conceptQueriesImpl{store: store}
}

func (q *conceptQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ConceptImageView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrConceptNotFound
		}
		return nil, errs.Wrap(err, "failed to find concept image")
	}
	if view.UserID != actor {
		return nil, errs.ErrConceptNotFound
	}
	return view, nil
}

func (q *conceptQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ConceptImageView, error) {
	views, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list concept images")
	}
	return views, nil
}

// Selected returns nil without error when the user has no selected concept.
func (q *conceptQueriesImpl) Selected(ctx context.Context, userID uuid.UUID) (*ConceptImageView, error) {
	view, err := q.store.FindSelected(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to find selected concept")
	}
	return view, nil
}
