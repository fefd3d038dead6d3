package writerepo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/commands"
)

type CommunicationRepository struct {
	db db.DBTX
}

func NewCommunicationRepository(db db.DBTX) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

func (r *CommunicationRepository) Schedule(ctx context.Context, tx db.DBTX, call commands.ScheduledCall) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO ai_communications (id, order_id, phone_number, script, status, run_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`,
		call.ID, call.OrderID, call.PhoneNumber, call.Script, call.Status, call.RunAt)
	if err != nil {
		return wrapWriteErr("failed to schedule call", err)
	}
	return nil
}

func (r *CommunicationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]commands.ScheduledCall, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE ai_communications SET run_at = $1 + interval '5 minutes'
		WHERE id IN (
			SELECT id FROM ai_communications
			WHERE status = 'scheduled' AND run_at <= $1
			ORDER BY run_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, order_id, phone_number, script, status, run_at`,
		now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to claim scheduled calls", err)
	}
	defer rows.Close()

	var calls []commands.ScheduledCall
	for rows.Next() {
		var call commands.ScheduledCall
		if err := rows.Scan(&call.ID, &call.OrderID, &call.PhoneNumber, &call.Script, &call.Status, &call.RunAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan scheduled call", err)
		}
		calls = append(calls, call)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate scheduled calls", err)
	}
	return calls, nil
}

func (r *CommunicationRepository) Finish(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE ai_communications SET status = $2, completed_at = now()
		WHERE id = $1 AND status = 'scheduled'`, id, status)
	if err != nil {
		return wrapWriteErr("failed to finish scheduled call", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "scheduled call not found", nil)
	}
	return nil
}
