//go:build unit

package queries

import (
	"context"
	"testing"

	"droidforge/internal/infra"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderReadStore struct {
	mock.Mock
}

func (m *MockOrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*OrderView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReadStore) FindByNumber(ctx context.Context, orderNumber string) (*OrderView, error) {
	args := m.Called(ctx, orderNumber)
	if v := args.Get(0); v != nil {
		return v.(*OrderView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*OrderListItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReadStore) FindByPrinter(ctx context.Context, printerID uuid.UUID) ([]*OrderListItem, error) {
	args := m.Called(ctx, printerID)
	if v := args.Get(0); v != nil {
		return v.([]*OrderListItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestOrderGetByID(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	orderID := uuid.New()

	tests := []struct {
		name     string
		actor    uuid.UUID
		view     *OrderView
		storeErr error
		wantErr  error
	}{
		{
			name:  "owner can read own order",
			actor: owner,
			view:  &OrderView{ID: orderID, UserID: owner},
		},
		{
			name:    "someone else's order reads as not found",
			actor:   stranger,
			view:    &OrderView{ID: orderID, UserID: owner},
			wantErr: errs.ErrOrderNotFound,
		},
		{
			name:     "missing row maps to not found",
			actor:    owner,
			storeErr: infra.WrapRepoErr(infra.KindNotFound, "no rows", assert.AnError),
			wantErr:  errs.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockOrderReadStore)
			store.On("FindByID", mock.Anything, orderID).Return(tt.view, tt.storeErr)

			q := NewOrderQueries(store)
			view, err := q.GetByID(context.Background(), tt.actor, orderID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, view)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, orderID, view.ID)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestOrderGetByNumber(t *testing.T) {
	owner := uuid.New()
	orderNumber := "DF-20260901-0001"

	t.Run("resolves by order number for the owner", func(t *testing.T) {
		store := new(MockOrderReadStore)
		store.On("FindByNumber", mock.Anything, orderNumber).
			Return(&OrderView{ID: uuid.New(), UserID: owner, OrderNumber: orderNumber}, nil)

		q := NewOrderQueries(store)
		view, err := q.GetByNumber(context.Background(), owner, orderNumber)

		assert.NoError(t, err)
		assert.Equal(t, orderNumber, view.OrderNumber)
		store.AssertExpectations(t)
	})

	t.Run("hides the order from other users", func(t *testing.T) {
		store := new(MockOrderReadStore)
		store.On("FindByNumber", mock.Anything, orderNumber).
			Return(&OrderView{ID: uuid.New(), UserID: owner, OrderNumber: orderNumber}, nil)

		q := NewOrderQueries(store)
		view, err := q.GetByNumber(context.Background(), uuid.New(), orderNumber)

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
		assert.Nil(t, view)
		store.AssertExpectations(t)
	})
}
