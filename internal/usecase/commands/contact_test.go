//go:build unit

package commands

import (
	"context"
	"testing"

	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) CreateSubmission(ctx context.Context, name, email, subject, message string) (uuid.UUID, error) {
	args := m.Called(ctx, name, email, subject, message)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockContactRepository) UpsertSubscription(ctx context.Context, email string, categories []string) error {
	args := m.Called(ctx, email, categories)
	return args.Error(0)
}

func TestSubscribeNewsletter(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards the requested categories", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("UpsertSubscription", ctx, "maker@example.com", []string{"releases", "community"}).
			Return(nil).Once()

		cmds := NewContactCommands(repo)
		err := cmds.SubscribeNewsletter(ctx, reqdto.NewsletterSubscribeRequest{
			Email:      "maker@example.com",
			Categories: []string{"releases", "community"},
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("a categoryless subscribe still goes through", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("UpsertSubscription", ctx, "maker@example.com", []string(nil)).
			Return(nil).Once()

		cmds := NewContactCommands(repo)
		err := cmds.SubscribeNewsletter(ctx, reqdto.NewsletterSubscribeRequest{Email: "maker@example.com"})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("repo failures surface as database errors", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("UpsertSubscription", ctx, "maker@example.com", []string(nil)).
			Return(assert.AnError)

		cmds := NewContactCommands(repo)
		err := cmds.SubscribeNewsletter(ctx, reqdto.NewsletterSubscribeRequest{Email: "maker@example.com"})

		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
