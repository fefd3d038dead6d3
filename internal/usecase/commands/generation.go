package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"droidforge/internal/domain/model"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/pkg/clock"
	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/queries"
)

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)

type GenerationCommands interface {
	CreateModel(ctx context.Context, userID uuid.UUID, req reqdto.GenerateModelRequest) (*queries.ModelView, error)
	ExecuteGeneration(ctx context.Context, userID uuid.UUID, modelID uuid.UUID, req reqdto.ExecuteGenerationRequest) error
	UpdateVisibility(ctx context.Context, userID uuid.UUID, modelID uuid.UUID, req reqdto.UpdateModelVisibilityRequest) error
	ToggleLike(ctx context.Context, userID uuid.UUID, modelID uuid.UUID) (bool, error)
}

type generationCommandsImpl struct {
	modelRepo    ModelRepository
	userRepo     UserRepository
	taskRepo     TaskRepository
	enhancer     PromptEnhancer
	registry     ProviderRegistry
	modelQueries queries.ModelQueries
	platformKeys map[model.Generator]string
	generation   config.GenerationConfig
	db           db.DBTX
	clock        clock.Clock
}

func NewGenerationCommands(
	modelRepo ModelRepository,
	userRepo UserRepository,
	taskRepo TaskRepository,
	enhancer PromptEnhancer,
	registry ProviderRegistry,
	modelQueries queries.ModelQueries,
	cfg config.Config,
	db *pgxpool.Pool,
	clock clock.Clock,
) GenerationCommands {
	platformKeys := make(map[model.Generator]string)
	for name, key := range cfg.Providers.PlatformKeys() {
		platformKeys[model.Generator(name)] = key
	}
	return &generationCommandsImpl{
		modelRepo:    modelRepo,
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		enhancer:     enhancer,
		registry:     registry,
		modelQueries: modelQueries,
		platformKeys: platformKeys,
		generation:   cfg.Generation,
		db:           db,
		clock:        clock,
	}
}

// CreateModel registers a generation job and runs prompt enhancement. The
// job ends in awaiting_approval on success; any enhancement failure is a
// terminal failed state, never a hung generating one.
func (g *generationCommandsImpl) CreateModel(
	ctx context.Context,
	userID uuid.UUID,
	req reqdto.GenerateModelRequest,
) (*queries.ModelView, error) {
	generator, err := model.NewGenerator(req.Generator)
	if err != nil {
		return nil, err
	}

	_, platformCredential, err := g.resolveCredential(ctx, userID, generator)
	if err != nil {
		return nil, err
	}

	if platformCredential {
		if err := g.checkQuota(ctx, userID); err != nil {
			return nil, err
		}
	}

	entity, err := model.NewModel(userID, req.Title, req.Prompt, generator, req.ConceptImageID, req.Settings.ToDomain())
	if err != nil {
		return nil, err
	}

	if err := g.modelRepo.Create(ctx, g.db, entity, platformCredential); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	enhanced, err := g.enhancer.Enhance(ctx, entity.EnhancementPrompt())
	if err != nil {
		g.failModel(ctx, entity.ID())
		return nil, errs.Mark(err, errs.ErrProviderFailure)
	}

	if _, err := g.modelRepo.MarkEnhanced(ctx, g.db, entity.ID(), enhanced); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return g.modelQueries.GetByID(ctx, userID, entity.ID())
}

// ExecuteGeneration dispatches an approved job to its provider and enqueues
// the completion task the worker polls on. The caller may confirm with an
// edited enhanced prompt, which is persisted before dispatch.
func (g *generationCommandsImpl) ExecuteGeneration(ctx context.Context, userID uuid.UUID, modelID uuid.UUID, req reqdto.ExecuteGenerationRequest) error {
	snapshot, err := g.modelRepo.FindSnapshot(ctx, modelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrModelNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snapshot.UserID != userID {
		return errs.ErrModelNotFound
	}
	if snapshot.Status != model.StatusAwaitingApproval {
		return errs.ErrInvalidTransition
	}

	if req.EnhancedPrompt != nil && *req.EnhancedPrompt != "" {
		if _, err := g.modelRepo.UpdateEnhancedPrompt(ctx, g.db, modelID, *req.EnhancedPrompt); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		snapshot.EnhancedPrompt = req.EnhancedPrompt
	}

	credential, platformCredential, err := g.resolveCredential(ctx, userID, snapshot.Generator)
	if err != nil {
		return err
	}

	provider, err := g.registry.For(snapshot.Generator)
	if err != nil {
		return err
	}

	prompt := snapshot.Prompt
	if snapshot.EnhancedPrompt != nil {
		prompt = *snapshot.EnhancedPrompt
	}

	handle, err := provider.Submit(ctx, GenerationJob{
		ModelID:    modelID,
		Prompt:     prompt,
		Settings:   snapshot.Settings,
		Credential: credential,
	})
	if err != nil {
		g.failModel(ctx, modelID)
		return errs.Mark(err, errs.ErrProviderFailure)
	}

	now := g.clock.Now()
	task := GenerationTask{
		ID:                 uuid.New(),
		ModelID:            modelID,
		Generator:          snapshot.Generator,
		JobHandle:          handle,
		PlatformCredential: platformCredential,
		Status:             TaskStatusPending,
		Deadline:           now.Add(g.generation.CompletionDeadline),
		RunAt:              now.Add(g.generation.PollInterval),
	}
	if err := g.taskRepo.Enqueue(ctx, g.db, task); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (g *generationCommandsImpl) UpdateVisibility(
	ctx context.Context,
	userID uuid.UUID,
	modelID uuid.UUID,
	req reqdto.UpdateModelVisibilityRequest,
) error {
	snapshot, err := g.modelRepo.FindSnapshot(ctx, modelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrModelNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snapshot.UserID != userID {
		return errs.ErrModelNotFound
	}

	if err := g.modelRepo.UpdateVisibility(ctx, g.db, modelID, req.IsPublic, req.IsReusable); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// ToggleLike is open to every authenticated user, not only the owner.
func (g *generationCommandsImpl) ToggleLike(ctx context.Context, userID uuid.UUID, modelID uuid.UUID) (bool, error) {
	liked, err := g.modelRepo.ToggleLike(ctx, g.db, modelID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.ErrModelNotFound
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return liked, nil
}

// resolveCredential prefers the user's own key and falls back to the
// platform key. Neither present is a hard error, not a silent skip.
func (g *generationCommandsImpl) resolveCredential(
	ctx context.Context,
	userID uuid.UUID,
	generator model.Generator,
) (credential string, platform bool, err error) {
	profile, err := g.userRepo.FindProfile(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", false, errs.ErrUserNotFound
		}
		return "", false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if key, ok := profile.APIKeys[generator.String()]; ok && key != "" {
		return key, false, nil
	}
	if key, ok := g.platformKeys[generator]; ok && key != "" {
		return key, true, nil
	}
	return "", false, errs.ErrMissingProviderCredential
}

func (g *generationCommandsImpl) checkQuota(ctx context.Context, userID uuid.UUID) error {
	profile, err := g.userRepo.FindProfile(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if profile.FreeGenerationsUsed >= g.generation.FreeQuota {
		return errs.ErrQuotaExhausted
	}
	return nil
}

func (g *generationCommandsImpl) failModel(ctx context.Context, modelID uuid.UUID) {
	if _, err := g.modelRepo.MarkFailed(ctx, g.db, modelID); err != nil {
		slog.Error("failed to mark model failed", "model_id", modelID, "error", err.Error())
	}
}
