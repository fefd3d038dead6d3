package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"droidforge/internal/domain/model"
	"droidforge/internal/pkg/clock"
	"droidforge/internal/pkg/config"
	"droidforge/internal/usecase/commands"
)

const claimBatchSize = 20

// GenerationPoller drives queued generation tasks to a terminal state. A
// claimed task is polled against its provider; past-deadline tasks fail
// without another provider round trip.
type GenerationPoller struct {
	taskRepo     commands.TaskRepository
	modelRepo    commands.ModelRepository
	userRepo     commands.UserRepository
	registry     commands.ProviderRegistry
	platformKeys map[model.Generator]string
	generation   config.GenerationConfig
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewGenerationPoller(
	taskRepo commands.TaskRepository,
	modelRepo commands.ModelRepository,
	userRepo commands.UserRepository,
	registry commands.ProviderRegistry,
	cfg config.Config,
	db *pgxpool.Pool,
	clock clock.Clock,
) *GenerationPoller {
	platformKeys := make(map[model.Generator]string)
	for name, key := range cfg.Providers.PlatformKeys() {
		platformKeys[model.Generator(name)] = key
	}
	return &GenerationPoller{
		taskRepo:     taskRepo,
		modelRepo:    modelRepo,
		userRepo:     userRepo,
		registry:     registry,
		platformKeys: platformKeys,
		generation:   cfg.Generation,
		db:           db,
		clock:        clock,
	}
}

func (p *GenerationPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.generation.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick claims due tasks and advances each one. Exported so tests can drive
// the poller without the ticker loop.
func (p *GenerationPoller) Tick(ctx context.Context) {
	now := p.clock.Now()
	tasks, err := p.taskRepo.ClaimDue(ctx, now, claimBatchSize)
	if err != nil {
		slog.Error("failed to claim generation tasks", "error", err.Error())
		return
	}
	for _, task := range tasks {
		p.process(ctx, task, now)
	}
}

func (p *GenerationPoller) process(ctx context.Context, task commands.GenerationTask, now time.Time) {
	if now.After(task.Deadline) {
		p.finish(ctx, task, false)
		return
	}

	credential, err := p.resolveCredential(ctx, task)
	if err != nil {
		slog.Error("credential resolution failed", "model_id", task.ModelID, "error", err.Error())
		p.finish(ctx, task, false)
		return
	}

	provider, err := p.registry.For(task.Generator)
	if err != nil {
		slog.Error("no provider for generator", "generator", task.Generator, "error", err.Error())
		p.finish(ctx, task, false)
		return
	}

	result, err := provider.Poll(ctx, task.JobHandle, credential)
	if err != nil {
		slog.Warn("provider poll failed", "model_id", task.ModelID, "attempts", task.Attempts, "error", err.Error())
		p.reschedule(ctx, task, now)
		return
	}

	switch {
	case result.Failed:
		slog.Info("generation failed at provider", "model_id", task.ModelID, "detail", result.Detail)
		p.finish(ctx, task, false)
	case result.Done && result.Stats != nil:
		p.complete(ctx, task, *result.Stats)
	default:
		p.reschedule(ctx, task, now)
	}
}

func (p *GenerationPoller) complete(ctx context.Context, task commands.GenerationTask, stats model.MeshStats) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		slog.Error("failed to begin completion transaction", "model_id", task.ModelID, "error", err.Error())
		return
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	applied, err := p.modelRepo.MarkCompleted(ctx, tx, task.ModelID, stats)
	if err != nil {
		slog.Error("failed to mark model completed", "model_id", task.ModelID, "error", err.Error())
		return
	}

	if applied && task.PlatformCredential {
		snapshot, err := p.modelRepo.FindSnapshot(ctx, task.ModelID)
		if err != nil {
			slog.Error("failed to load model for quota", "model_id", task.ModelID, "error", err.Error())
			return
		}
		if _, err := p.userRepo.ConsumeFreeGeneration(ctx, tx, snapshot.UserID, p.generation.FreeQuota); err != nil {
			slog.Error("failed to consume free generation", "user_id", snapshot.UserID, "error", err.Error())
			return
		}
	}

	if err := p.taskRepo.Finish(ctx, tx, task.ID, commands.TaskStatusCompleted); err != nil {
		slog.Error("failed to finish task", "task_id", task.ID, "error", err.Error())
		return
	}
	if err := tx.Commit(ctx); err != nil {
		slog.Error("failed to commit completion", "model_id", task.ModelID, "error", err.Error())
	}
}

func (p *GenerationPoller) finish(ctx context.Context, task commands.GenerationTask, succeeded bool) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		slog.Error("failed to begin finish transaction", "task_id", task.ID, "error", err.Error())
		return
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	status := commands.TaskStatusCompleted
	if !succeeded {
		status = commands.TaskStatusFailed
		if _, err := p.modelRepo.MarkFailed(ctx, tx, task.ModelID); err != nil {
			slog.Error("failed to mark model failed", "model_id", task.ModelID, "error", err.Error())
			return
		}
	}
	if err := p.taskRepo.Finish(ctx, tx, task.ID, status); err != nil {
		slog.Error("failed to finish task", "task_id", task.ID, "error", err.Error())
		return
	}
	if err := tx.Commit(ctx); err != nil {
		slog.Error("failed to commit task finish", "task_id", task.ID, "error", err.Error())
	}
}

func (p *GenerationPoller) reschedule(ctx context.Context, task commands.GenerationTask, now time.Time) {
	if err := p.taskRepo.Reschedule(ctx, task.ID, now.Add(p.generation.PollInterval), task.Attempts+1); err != nil {
		slog.Error("failed to reschedule task", "task_id", task.ID, "error", err.Error())
	}
}

func (p *GenerationPoller) resolveCredential(ctx context.Context, task commands.GenerationTask) (string, error) {
	if task.PlatformCredential {
		return p.platformKeys[task.Generator], nil
	}
	snapshot, err := p.modelRepo.FindSnapshot(ctx, task.ModelID)
	if err != nil {
		return "", err
	}
	profile, err := p.userRepo.FindProfile(ctx, snapshot.UserID)
	if err != nil {
		return "", err
	}
	return profile.APIKeys[task.Generator.String()], nil
}
