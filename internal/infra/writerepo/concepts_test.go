//go:build unit

package writerepo

import (
	"context"
	"testing"

	"droidforge/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestConceptSelect(t *testing.T) {
	userID := uuid.New()
	imageID := uuid.New()

	tests := []struct {
		name       string
		tag        pgconn.CommandTag
		execErr    error
		wantOwned  bool
		wantError  bool
		wantDBKind bool
	}{
		{
			name:      "flips the user's set when the image is theirs",
			tag:       pgconn.NewCommandTag("UPDATE 3"),
			wantOwned: true,
		},
		{
			name:      "zero rows means the image belongs to someone else",
			tag:       pgconn.NewCommandTag("UPDATE 0"),
			wantOwned: false,
		},
		{
			name:       "database error surfaces as a repo failure",
			tag:        pgconn.CommandTag{},
			execErr:    assert.AnError,
			wantError:  true,
			wantDBKind: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, mock.Anything, []any{userID, imageID}).
				Return(tt.tag, tt.execErr)

			repo := NewConceptRepository(db)
			owned, err := repo.Select(context.Background(), db, userID, imageID)

			if tt.wantError {
				assert.Error(t, err)
				if tt.wantDBKind {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOwned, owned)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestConceptDelete(t *testing.T) {
	userID := uuid.New()
	imageID := uuid.New()

	t.Run("reports whether an owned row was removed", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, []any{userID, imageID}).
			Return(pgconn.NewCommandTag("DELETE 1"), nil)

		repo := NewConceptRepository(db)
		removed, err := repo.Delete(context.Background(), db, userID, imageID)

		assert.NoError(t, err)
		assert.True(t, removed)
		db.AssertExpectations(t)
	})

	t.Run("someone else's image deletes nothing", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, []any{userID, imageID}).
			Return(pgconn.NewCommandTag("DELETE 0"), nil)

		repo := NewConceptRepository(db)
		removed, err := repo.Delete(context.Background(), db, userID, imageID)

		assert.NoError(t, err)
		assert.False(t, removed)
		db.AssertExpectations(t)
	})
}
