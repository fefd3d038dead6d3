//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"droidforge/internal/domain/model"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/pkg/clock"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockModelRepository struct {
	mock.Mock
}

func (m *MockModelRepository) Create(ctx context.Context, tx db.DBTX, entity *model.Model, platformCredential bool) error {
	args := m.Called(ctx, tx, entity, platformCredential)
	return args.Error(0)
}

func (m *MockModelRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*ModelSnapshot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*ModelSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelRepository) MarkEnhanced(ctx context.Context, tx db.DBTX, id uuid.UUID, enhancedPrompt string) (bool, error) {
	args := m.Called(ctx, tx, id, enhancedPrompt)
	return args.Bool(0), args.Error(1)
}

func (m *MockModelRepository) MarkCompleted(ctx context.Context, tx db.DBTX, id uuid.UUID, stats model.MeshStats) (bool, error) {
	args := m.Called(ctx, tx, id, stats)
	return args.Bool(0), args.Error(1)
}

func (m *MockModelRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockModelRepository) UpdateEnhancedPrompt(ctx context.Context, tx db.DBTX, id uuid.UUID, enhancedPrompt string) (bool, error) {
	args := m.Called(ctx, tx, id, enhancedPrompt)
	return args.Bool(0), args.Error(1)
}

func (m *MockModelRepository) UpdateVisibility(ctx context.Context, tx db.DBTX, id uuid.UUID, isPublic, isReusable *bool) error {
	args := m.Called(ctx, tx, id, isPublic, isReusable)
	return args.Error(0)
}

func (m *MockModelRepository) IncrementReuses(ctx context.Context, tx db.DBTX, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, tx, id, quantity)
	return args.Error(0)
}

func (m *MockModelRepository) ToggleLike(ctx context.Context, tx db.DBTX, modelID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tx, modelID, userID)
	return args.Bool(0), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Enqueue(ctx context.Context, tx db.DBTX, task GenerationTask) error {
	args := m.Called(ctx, tx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]GenerationTask, error) {
	args := m.Called(ctx, now, limit)
	if v := args.Get(0); v != nil {
		return v.([]GenerationTask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, attempts int) error {
	args := m.Called(ctx, id, runAt, attempts)
	return args.Error(0)
}

func (m *MockTaskRepository) Finish(ctx context.Context, tx db.DBTX, id uuid.UUID, status string) error {
	args := m.Called(ctx, tx, id, status)
	return args.Error(0)
}

type MockPromptEnhancer struct {
	mock.Mock
}

func (m *MockPromptEnhancer) Enhance(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockModelProvider struct {
	mock.Mock
}

func (m *MockModelProvider) Generator() model.Generator {
	args := m.Called()
	return args.Get(0).(model.Generator)
}

func (m *MockModelProvider) Submit(ctx context.Context, job GenerationJob) (string, error) {
	args := m.Called(ctx, job)
	return args.String(0), args.Error(1)
}

func (m *MockModelProvider) Poll(ctx context.Context, jobHandle, credential string) (*PollResult, error) {
	args := m.Called(ctx, jobHandle, credential)
	if v := args.Get(0); v != nil {
		return v.(*PollResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProviderRegistry struct {
	mock.Mock
}

func (m *MockProviderRegistry) For(g model.Generator) (ModelProvider, error) {
	args := m.Called(g)
	if v := args.Get(0); v != nil {
		return v.(ModelProvider), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockModelQueries struct {
	mock.Mock
}

func (m *MockModelQueries) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*queries.ModelView, error) {
	args := m.Called(ctx, actor, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ModelView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelQueries) ListPublic(ctx context.Context, limit int) ([]*queries.ModelView, error) {
	args := m.Called(ctx, limit)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelQueries) ListReusable(ctx context.Context, limit int) ([]*queries.ModelView, error) {
	args := m.Called(ctx, limit)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockModelQueries) ListFeatured(ctx context.Context, limit int) ([]*queries.ModelView, error) {
	args := m.Called(ctx, limit)
	if v := args.Get(0); v != nil {
		return v.([]*queries.ModelView), args.Error(1)
	}
	return nil, args.Error(1)
}

type generationTestDeps struct {
	modelRepo *MockModelRepository
	userRepo  *MockUserRepository
	taskRepo  *MockTaskRepository
	registry  *MockProviderRegistry
	provider  *MockModelProvider
}

func newGenerationCommandsForTest(deps generationTestDeps) *generationCommandsImpl {
	return &generationCommandsImpl{
		modelRepo:    deps.modelRepo,
		userRepo:     deps.userRepo,
		taskRepo:     deps.taskRepo,
		enhancer:     new(MockPromptEnhancer),
		registry:     deps.registry,
		modelQueries: new(MockModelQueries),
		platformKeys: map[model.Generator]string{},
		generation:   config.NewTestConfig().Generation,
		clock:        clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
	}
}

func TestExecuteGeneration(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	modelID := uuid.New()
	stored := "stored enhancement"

	awaitingSnapshot := func() *ModelSnapshot {
		return &ModelSnapshot{
			ID:             modelID,
			UserID:         userID,
			Status:         model.StatusAwaitingApproval,
			Generator:      model.GeneratorMeshy,
			Prompt:         "a dragon",
			EnhancedPrompt: &stored,
		}
	}

	withUserKey := func(deps generationTestDeps) {
		deps.userRepo.On("FindProfile", ctx, userID).
			Return(&ProfileSnapshot{UserID: userID, APIKeys: map[string]string{"meshy": "user-key"}}, nil)
	}

	t.Run("a confirmed edit is persisted and dispatched in place of the stored prompt", func(t *testing.T) {
		deps := generationTestDeps{
			modelRepo: new(MockModelRepository),
			userRepo:  new(MockUserRepository),
			taskRepo:  new(MockTaskRepository),
			registry:  new(MockProviderRegistry),
			provider:  new(MockModelProvider),
		}
		edited := "a dragon with functional hinge joints"

		deps.modelRepo.On("FindSnapshot", ctx, modelID).Return(awaitingSnapshot(), nil)
		deps.modelRepo.On("UpdateEnhancedPrompt", ctx, mock.Anything, modelID, edited).
			Return(true, nil).Once()
		withUserKey(deps)
		deps.registry.On("For", model.GeneratorMeshy).Return(deps.provider, nil)
		deps.provider.On("Submit", ctx, mock.MatchedBy(func(job GenerationJob) bool {
			return job.ModelID == modelID && job.Prompt == edited && job.Credential == "user-key"
		})).Return("job-42", nil)
		deps.taskRepo.On("Enqueue", ctx, mock.Anything, mock.MatchedBy(func(task GenerationTask) bool {
			return task.ModelID == modelID && task.JobHandle == "job-42" && task.Status == TaskStatusPending
		})).Return(nil)

		cmds := newGenerationCommandsForTest(deps)
		err := cmds.ExecuteGeneration(ctx, userID, modelID, reqdto.ExecuteGenerationRequest{EnhancedPrompt: &edited})

		assert.NoError(t, err)
		deps.modelRepo.AssertExpectations(t)
		deps.provider.AssertExpectations(t)
		deps.taskRepo.AssertExpectations(t)
	})

	t.Run("an empty confirmation dispatches the stored enhancement untouched", func(t *testing.T) {
		deps := generationTestDeps{
			modelRepo: new(MockModelRepository),
			userRepo:  new(MockUserRepository),
			taskRepo:  new(MockTaskRepository),
			registry:  new(MockProviderRegistry),
			provider:  new(MockModelProvider),
		}

		deps.modelRepo.On("FindSnapshot", ctx, modelID).Return(awaitingSnapshot(), nil)
		withUserKey(deps)
		deps.registry.On("For", model.GeneratorMeshy).Return(deps.provider, nil)
		deps.provider.On("Submit", ctx, mock.MatchedBy(func(job GenerationJob) bool {
			return job.Prompt == stored
		})).Return("job-43", nil)
		deps.taskRepo.On("Enqueue", ctx, mock.Anything, mock.Anything).Return(nil)

		cmds := newGenerationCommandsForTest(deps)
		err := cmds.ExecuteGeneration(ctx, userID, modelID, reqdto.ExecuteGenerationRequest{})

		assert.NoError(t, err)
		deps.modelRepo.AssertNotCalled(t, "UpdateEnhancedPrompt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		deps.provider.AssertExpectations(t)
	})

	t.Run("only awaiting models can be dispatched", func(t *testing.T) {
		deps := generationTestDeps{
			modelRepo: new(MockModelRepository),
			userRepo:  new(MockUserRepository),
			taskRepo:  new(MockTaskRepository),
			registry:  new(MockProviderRegistry),
			provider:  new(MockModelProvider),
		}
		snapshot := awaitingSnapshot()
		snapshot.Status = model.StatusCompleted
		deps.modelRepo.On("FindSnapshot", ctx, modelID).Return(snapshot, nil)

		cmds := newGenerationCommandsForTest(deps)
		err := cmds.ExecuteGeneration(ctx, userID, modelID, reqdto.ExecuteGenerationRequest{})

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	modelID := uuid.New()

	t.Run("reports the state the repository settled on", func(t *testing.T) {
		deps := generationTestDeps{
			modelRepo: new(MockModelRepository),
			userRepo:  new(MockUserRepository),
			taskRepo:  new(MockTaskRepository),
			registry:  new(MockProviderRegistry),
		}
		deps.modelRepo.On("ToggleLike", ctx, mock.Anything, modelID, userID).Return(true, nil)

		cmds := newGenerationCommandsForTest(deps)
		liked, err := cmds.ToggleLike(ctx, userID, modelID)

		assert.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("a missing model maps to not-found", func(t *testing.T) {
		deps := generationTestDeps{
			modelRepo: new(MockModelRepository),
			userRepo:  new(MockUserRepository),
			taskRepo:  new(MockTaskRepository),
			registry:  new(MockProviderRegistry),
		}
		deps.modelRepo.On("ToggleLike", ctx, mock.Anything, modelID, userID).
			Return(false, infra.WrapRepoErr(infra.KindNotFound, "model not found", nil))

		cmds := newGenerationCommandsForTest(deps)
		_, err := cmds.ToggleLike(ctx, userID, modelID)

		assert.ErrorIs(t, err, errs.ErrModelNotFound)
	})
}
