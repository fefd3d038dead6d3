//go:build unit

package queries

import (
	"context"
	"errors"
	"testing"

	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockModelReadStore struct {
	mock.Mock
}

func (m *MockModelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*ModelView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*ModelView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelReadStore) FindPublic(ctx context.Context, limit int) ([]*ModelView, error) {
	args := m.Called(ctx, limit)
	if v := args.Get(0); v != nil {
		return v.([]*ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelReadStore) FindReusable(ctx context.Context, limit int) ([]*ModelView, error) {
	args := m.Called(ctx, limit)
	if v := args.Get(0); v != nil {
		return v.([]*ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelReadStore) FindFeatured(ctx context.Context, limit int) ([]*ModelView, error) {
	args := m.Called(ctx, limit)
	if v := args.Get(0); v != nil {
		return v.([]*ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestModelGetByID(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	modelID := uuid.New()

	tests := []struct {
		name      string
		actor     uuid.UUID
		view      *ModelView
		storeErr  error
		wantErr   error
		wantFound bool
	}{
		{
			name:      "owner sees own private model",
			actor:     owner,
			view:      &ModelView{ID: modelID, UserID: owner, IsPublic: false},
			wantFound: true,
		},
		{
			name:      "anyone sees a public model",
			actor:     stranger,
			view:      &ModelView{ID: modelID, UserID: owner, IsPublic: true},
			wantFound: true,
		},
		{
			name:    "private model hidden from non-owner",
			actor:   stranger,
			view:    &ModelView{ID: modelID, UserID: owner, IsPublic: false},
			wantErr: errs.ErrModelNotFound,
		},
		{
			name:     "missing row maps to not found",
			actor:    owner,
			storeErr: infra.WrapRepoErr(infra.KindNotFound, "no rows", assert.AnError),
			wantErr:  errs.ErrModelNotFound,
		},
		{
			name:     "store failure is passed through",
			actor:    owner,
			storeErr: errors.New("connection reset"),
			wantErr:  nil, // wrapped, checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockModelReadStore)
			store.On("FindByID", mock.Anything, modelID).Return(tt.view, tt.storeErr)

			q := NewModelQueries(store)
			view, err := q.GetByID(context.Background(), tt.actor, modelID)

			switch {
			case tt.wantFound:
				assert.NoError(t, err)
				assert.Equal(t, modelID, view.ID)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, view)
			default:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, errs.ErrModelNotFound)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestModelListLimitNormalization(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "zero falls back to default", limit: 0, wantLimit: 50},
		{name: "negative falls back to default", limit: -3, wantLimit: 50},
		{name: "in-range limit kept", limit: 10, wantLimit: 10},
		{name: "over cap falls back to default", limit: 500, wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockModelReadStore)
			store.On("FindPublic", mock.Anything, tt.wantLimit).Return([]*ModelView{}, nil)

			q := NewModelQueries(store)
			_, err := q.ListPublic(context.Background(), tt.limit)

			assert.NoError(t, err)
			store.AssertExpectations(t)
		})
	}
}

func TestModelListByUser(t *testing.T) {
	userID := uuid.New()
	views := []*ModelView{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	store := new(MockModelReadStore)
	store.On("FindByUser", mock.Anything, userID).Return(views, nil)

	q := NewModelQueries(store)
	got, err := q.ListByUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	store.AssertExpectations(t)
}
