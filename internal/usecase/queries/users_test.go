//go:build unit

package queries

import (
	"context"
	"testing"

	"droidforge/internal/infra"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*AuthorizedUserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserReadStore) FindProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*ProfileView), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestProfileFreeGenerationsRemaining(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name          string
		used          int
		wantRemaining int
	}{
		{name: "fresh account keeps the full quota", used: 0, wantRemaining: 5},
		{name: "partially used quota reports the difference", used: 2, wantRemaining: 3},
		{name: "exhausted quota reports zero", used: 5, wantRemaining: 0},
		{name: "overshoot clamps to zero instead of going negative", used: 9, wantRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockUserReadStore)
			store.On("FindProfile", ctx, userID).
				Return(&ProfileView{UserID: userID, FreeGenerationsUsed: tt.used}, nil)

			q := NewUserQueries(store, config.NewTestConfig())
			view, err := q.Profile(ctx, userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.used, view.FreeGenerationsUsed)
			assert.Equal(t, tt.wantRemaining, view.FreeGenerationsRemaining)
		})
	}
}

func TestProfileNotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	store := new(MockUserReadStore)
	store.On("FindProfile", ctx, userID).
		Return(nil, infra.WrapRepoErr(infra.KindNotFound, "profile not found", nil))

	q := NewUserQueries(store, config.NewTestConfig())
	_, err := q.Profile(ctx, userID)

	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}
