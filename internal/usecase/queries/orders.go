package queries

import (
	"context"

	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByNumber(ctx context.Context, orderNumber string) (*OrderView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	FindByPrinter(ctx context.Context, printerID uuid.UUID) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error)
	GetByNumber(ctx context.Context, actor uuid.UUID, orderNumber string) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	ListByPrinter(ctx context.Context, printerID uuid.UUID) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	if view.UserID != actor {
		return nil, errs.ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, actor uuid.UUID, orderNumber string) (*OrderView, error) {
	view, err := q.store.FindByNumber(ctx, orderNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order by number")
	}
	if view.UserID != actor {
		return nil, errs.ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error) {
	items, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user orders")
	}
	return items, nil
}

func (q *orderQueriesImpl) ListByPrinter(ctx context.Context, printerID uuid.UUID) ([]*OrderListItem, error) {
	items, err := q.store.FindByPrinter(ctx, printerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list printer orders")
	}
	return items, nil
}
