//go:build unit

package writerepo

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpsertSubscription(t *testing.T) {
	t.Run("stores the requested categories and merges on conflict", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.MatchedBy(func(sql string) bool {
			return strings.Contains(sql, "ON CONFLICT (email)") &&
				strings.Contains(sql, "newsletter_subscriptions.categories || EXCLUDED.categories")
		}), mock.MatchedBy(func(args []any) bool {
			_, isUUID := args[0].(uuid.UUID)
			return isUUID &&
				args[1] == "maker@example.com" &&
				assert.ObjectsAreEqual([]string{"releases", "tips"}, args[2])
		})).
			Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		repo := NewContactRepository(db)
		err := repo.UpsertSubscription(context.Background(), "maker@example.com", []string{"releases", "tips"})

		assert.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("nil categories become an empty set", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, mock.MatchedBy(func(args []any) bool {
			return assert.ObjectsAreEqual([]string{}, args[2])
		})).
			Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		repo := NewContactRepository(db)
		err := repo.UpsertSubscription(context.Background(), "maker@example.com", nil)

		assert.NoError(t, err)
		db.AssertExpectations(t)
	})
}
