//go:build unit

package commands

import (
	"context"
	"testing"

	"droidforge/internal/domain/concept"
	"droidforge/internal/domain/user"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra/db"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, tx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) CreateProfile(ctx context.Context, tx db.DBTX, p *user.Profile) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*UserSnapshot, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*UserSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*ProfileSnapshot, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*ProfileSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	args := m.Called(ctx, tx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAPIKeys(ctx context.Context, tx db.DBTX, userID uuid.UUID, keys map[string]string) error {
	args := m.Called(ctx, tx, userID, keys)
	return args.Error(0)
}

func (m *MockUserRepository) ConsumeFreeGeneration(ctx context.Context, tx db.DBTX, userID uuid.UUID, quota int) (bool, error) {
	args := m.Called(ctx, tx, userID, quota)
	return args.Bool(0), args.Error(1)
}

type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) Create(ctx context.Context, tx db.DBTX, img *concept.Image) error {
	args := m.Called(ctx, tx, img)
	return args.Error(0)
}

func (m *MockConceptRepository) FindOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockConceptRepository) Select(ctx context.Context, tx db.DBTX, userID, imageID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tx, userID, imageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockConceptRepository) Delete(ctx context.Context, tx db.DBTX, userID, imageID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tx, userID, imageID)
	return args.Bool(0), args.Error(1)
}

type MockImageProvider struct {
	mock.Mock
}

func (m *MockImageProvider) Generator() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockImageProvider) GenerateImages(ctx context.Context, prompt string, count int) ([]string, error) {
	args := m.Called(ctx, prompt, count)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockConceptQueries struct {
	mock.Mock
}

func (m *MockConceptQueries) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*queries.ConceptImageView, error) {
	args := m.Called(ctx, actor, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.ConceptImageView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConceptQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ConceptImageView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ConceptImageView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConceptQueries) Selected(ctx context.Context, userID uuid.UUID) (*queries.ConceptImageView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*queries.ConceptImageView), args.Error(1)
	}
	return nil, args.Error(1)
}

func newConceptCommandsForTest(
	conceptRepo *MockConceptRepository,
	userRepo *MockUserRepository,
	provider *MockImageProvider,
	conceptQueries *MockConceptQueries,
) *conceptCommandsImpl {
	return &conceptCommandsImpl{
		conceptRepo:    conceptRepo,
		userRepo:       userRepo,
		imageProvider:  provider,
		conceptQueries: conceptQueries,
		generation:     config.NewTestConfig().Generation,
	}
}

func TestConceptGenerate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	req := reqdto.GenerateConceptsRequest{Prompt: "a chibi astronaut figurine", Count: 2}

	t.Run("platform credential burns one free generation per batch", func(t *testing.T) {
		conceptRepo := new(MockConceptRepository)
		userRepo := new(MockUserRepository)
		provider := new(MockImageProvider)
		conceptQueries := new(MockConceptQueries)

		userRepo.On("FindProfile", ctx, userID).
			Return(&ProfileSnapshot{UserID: userID, FreeGenerationsUsed: 2, APIKeys: map[string]string{}}, nil)
		provider.On("GenerateImages", ctx, req.Prompt, 2).
			Return([]string{"https://img.example/1.png", "https://img.example/2.png"}, nil)
		userRepo.On("ConsumeFreeGeneration", ctx, mock.Anything, userID, 5).
			Return(true, nil).Once()
		provider.On("Generator").Return("stability")
		conceptRepo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(img *concept.Image) bool {
			return img.Generator() == "stability" && img.UserID() == userID
		})).Return(nil).Twice()
		conceptQueries.On("GetByID", ctx, userID, mock.Anything).
			Return(&queries.ConceptImageView{UserID: userID, Generator: "stability"}, nil)

		cmds := newConceptCommandsForTest(conceptRepo, userRepo, provider, conceptQueries)
		views, err := cmds.Generate(ctx, userID, req)

		assert.NoError(t, err)
		assert.Len(t, views, 2)
		userRepo.AssertExpectations(t)
		conceptRepo.AssertExpectations(t)
	})

	t.Run("a user-supplied key leaves the quota untouched", func(t *testing.T) {
		conceptRepo := new(MockConceptRepository)
		userRepo := new(MockUserRepository)
		provider := new(MockImageProvider)
		conceptQueries := new(MockConceptQueries)

		// Counter already past the quota; the user's own key pays anyway.
		userRepo.On("FindProfile", ctx, userID).
			Return(&ProfileSnapshot{UserID: userID, FreeGenerationsUsed: 9, APIKeys: map[string]string{"openai": "sk-own"}}, nil)
		provider.On("GenerateImages", ctx, req.Prompt, 2).
			Return([]string{"https://img.example/1.png"}, nil)
		provider.On("Generator").Return("openai")
		conceptRepo.On("Create", ctx, mock.Anything, mock.Anything).Return(nil)
		conceptQueries.On("GetByID", ctx, userID, mock.Anything).
			Return(&queries.ConceptImageView{UserID: userID}, nil)

		cmds := newConceptCommandsForTest(conceptRepo, userRepo, provider, conceptQueries)
		_, err := cmds.Generate(ctx, userID, req)

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "ConsumeFreeGeneration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("exhausted quota rejects before the provider runs", func(t *testing.T) {
		conceptRepo := new(MockConceptRepository)
		userRepo := new(MockUserRepository)
		provider := new(MockImageProvider)
		conceptQueries := new(MockConceptQueries)

		userRepo.On("FindProfile", ctx, userID).
			Return(&ProfileSnapshot{UserID: userID, FreeGenerationsUsed: 5, APIKeys: map[string]string{}}, nil)

		cmds := newConceptCommandsForTest(conceptRepo, userRepo, provider, conceptQueries)
		_, err := cmds.Generate(ctx, userID, req)

		assert.ErrorIs(t, err, errs.ErrQuotaExhausted)
		provider.AssertNotCalled(t, "GenerateImages", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("provider failure burns nothing", func(t *testing.T) {
		conceptRepo := new(MockConceptRepository)
		userRepo := new(MockUserRepository)
		provider := new(MockImageProvider)
		conceptQueries := new(MockConceptQueries)

		userRepo.On("FindProfile", ctx, userID).
			Return(&ProfileSnapshot{UserID: userID, FreeGenerationsUsed: 0, APIKeys: map[string]string{}}, nil)
		provider.On("GenerateImages", ctx, req.Prompt, 2).
			Return(nil, assert.AnError)

		cmds := newConceptCommandsForTest(conceptRepo, userRepo, provider, conceptQueries)
		_, err := cmds.Generate(ctx, userID, req)

		assert.ErrorIs(t, err, errs.ErrProviderFailure)
		userRepo.AssertNotCalled(t, "ConsumeFreeGeneration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
