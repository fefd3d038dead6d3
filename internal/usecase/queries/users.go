package queries

import (
	"context"

	"droidforge/internal/infra"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type UserQueries interface {
	AuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type userQueriesImpl struct {
	store     UserReadStore
	freeQuota int
}

func NewUserQueries(store UserReadStore, cfg config.Config) UserQueries {
	return &userQueriesImpl{store: store, freeQuota: cfg.Generation.FreeQuota}
}

func (q *userQueriesImpl) AuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindAuthorizedByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return view, nil
}

func (q *userQueriesImpl) Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	view, err := q.store.FindProfile(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find profile")
	}
	// The store only knows the raw counter; the quota lives in config.
	view.FreeGenerationsRemaining = max(0, q.freeQuota-view.FreeGenerationsUsed)
	return view, nil
}
