package writerepo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"droidforge/internal/domain/model"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/commands"
)

type TaskRepository struct {
	db db.DBTX
}

func NewTaskRepository(db db.DBTX) *TaskRepository {
	return &TaskRepository{db: db}
}

// Enqueue upserts on model_id so dispatch retries never queue the same
// generation twice; a retry refreshes the handle and resets the clock.
func (r *TaskRepository) Enqueue(ctx context.Context, tx db.DBTX, task commands.GenerationTask) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO generation_tasks (
			id, model_id, generator, job_handle, platform_credential,
			status, attempts, deadline, run_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (model_id) DO UPDATE SET
			generator = EXCLUDED.generator,
			job_handle = EXCLUDED.job_handle,
			platform_credential = EXCLUDED.platform_credential,
			status = EXCLUDED.status,
			attempts = 0,
			deadline = EXCLUDED.deadline,
			run_at = EXCLUDED.run_at`,
		task.ID, task.ModelID, string(task.Generator), task.JobHandle,
		task.PlatformCredential, task.Status, task.Attempts, task.Deadline, task.RunAt)
	if err != nil {
		return wrapWriteErr("failed to enqueue generation task", err)
	}
	return nil
}

// ClaimDue pushes run_at forward in the same statement that selects the
// batch, so concurrent pollers never pick up the same task.
func (r *TaskRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]commands.GenerationTask, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE generation_tasks SET run_at = $1 + interval '1 minute'
		WHERE id IN (
			SELECT id FROM generation_tasks
			WHERE status = 'pending' AND run_at <= $1
			ORDER BY run_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, model_id, generator, job_handle, platform_credential,
		          status, attempts, deadline, run_at`,
		now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to claim generation tasks", err)
	}
	defer rows.Close()

	var tasks []commands.GenerationTask
	for rows.Next() {
		var (
			task      commands.GenerationTask
			generator string
		)
		if err := rows.Scan(
			&task.ID, &task.ModelID, &generator, &task.JobHandle,
			&task.PlatformCredential, &task.Status, &task.Attempts,
			&task.Deadline, &task.RunAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan generation task", err)
		}
		task.Generator = model.Generator(generator)
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate generation tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, attempts int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE generation_tasks SET run_at = $2, attempts = $3
		WHERE id = $1 AND status = 'pending'`, id, runAt, attempts)
	if err != nil {
		return wrapWriteErr("failed to reschedule generation task", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "generation task not found", nil)
	}
	return nil
}

func (r *TaskRepository) Finish(ctx context.Context, tx db.DBTX, id uuid.UUID, status string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE generation_tasks SET status = $2
		WHERE id = $1 AND status = 'pending'`, id, status)
	if err != nil {
		return wrapWriteErr("failed to finish generation task", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "generation task not found", nil)
	}
	return nil
}
