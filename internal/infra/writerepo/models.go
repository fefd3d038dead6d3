package writerepo

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"droidforge/internal/domain/model"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/commands"
)

type ModelRepository struct {
	db db.DBTX
}

func NewModelRepository(db db.DBTX) *ModelRepository {
	return &ModelRepository{db: db}
}

type settingsDoc struct {
	Style        string `json:"style"`
	Complexity   string `json:"complexity"`
	Size         string `json:"size"`
	Material     string `json:"material"`
	Printability string `json:"printability"`
	Supports     bool   `json:"supports"`
	HollowFill   int    `json:"hollow_fill"`
}

type meshStatsDoc struct {
	Vertices     int `json:"vertices"`
	Faces        int `json:"faces"`
	FileSizeMB   int `json:"file_size_mb"`
	PrintTimeMin int `json:"print_time_min"`
}

func (r *ModelRepository) Create(ctx context.Context, tx db.DBTX, m *model.Model, platformCredential bool) error {
	settingsJSON, err := json.Marshal(settingsDoc{
		Style:        m.Settings().Style,
		Complexity:   m.Settings().Complexity,
		Size:         m.Settings().Size,
		Material:     m.Settings().Material,
		Printability: m.Settings().Printability,
		Supports:     m.Settings().Supports,
		HollowFill:   m.Settings().HollowFill,
	})
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode settings", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO models (
			id, user_id, title, prompt, generator, status, concept_image_id,
			settings, is_public, is_featured, is_reusable, tags,
			likes, downloads, reuses, platform_credential, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, false, false, '{}', 0, 0, 0, $9, now(), now())`,
		m.ID(), m.UserID(), m.Title(), m.Prompt(), m.Generator().String(),
		m.Status().String(), m.ConceptImageID(), settingsJSON, platformCredential)
	if err != nil {
		return wrapWriteErr("failed to create model", err)
	}
	return nil
}

func (r *ModelRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.ModelSnapshot, error) {
	var (
		snapshot     commands.ModelSnapshot
		settingsJSON []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, status, generator, prompt, enhanced_prompt,
		       settings, is_reusable, platform_credential
		FROM models WHERE id = $1`, id).
		Scan(&snapshot.ID, &snapshot.UserID, &snapshot.Status, &snapshot.Generator,
			&snapshot.Prompt, &snapshot.EnhancedPrompt, &settingsJSON,
			&snapshot.IsReusable, &snapshot.PlatformCredential)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "model not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find model", err)
	}

	var doc settingsDoc
	if err := json.Unmarshal(settingsJSON, &doc); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode settings", err)
	}
	snapshot.Settings = model.Settings{
		Style:        doc.Style,
		Complexity:   doc.Complexity,
		Size:         doc.Size,
		Material:     doc.Material,
		Printability: doc.Printability,
		Supports:     doc.Supports,
		HollowFill:   doc.HollowFill,
	}
	return &snapshot, nil
}

// MarkEnhanced moves generating -> awaiting_approval; stale rows are left alone.
func (r *ModelRepository) MarkEnhanced(ctx context.Context, tx db.DBTX, id uuid.UUID, enhancedPrompt string) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE models SET enhanced_prompt = $2, status = 'awaiting_approval', updated_at = now()
		WHERE id = $1 AND status = 'generating'`, id, enhancedPrompt)
	if err != nil {
		return false, wrapWriteErr("failed to mark model enhanced", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ModelRepository) MarkCompleted(ctx context.Context, tx db.DBTX, id uuid.UUID, stats model.MeshStats) (bool, error) {
	statsJSON, err := json.Marshal(meshStatsDoc{
		Vertices:     stats.Vertices,
		Faces:        stats.Faces,
		FileSizeMB:   stats.FileSizeMB,
		PrintTimeMin: stats.PrintTimeMin,
	})
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to encode mesh stats", err)
	}
	tag, err := tx.Exec(ctx, `
		UPDATE models SET generation_data = $2, status = 'completed', updated_at = now()
		WHERE id = $1 AND status = 'awaiting_approval'`, id, statsJSON)
	if err != nil {
		return false, wrapWriteErr("failed to mark model completed", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ModelRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE models SET status = 'failed', updated_at = now()
		WHERE id = $1 AND status NOT IN ('completed', 'failed')`, id)
	if err != nil {
		return false, wrapWriteErr("failed to mark model failed", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateEnhancedPrompt replaces the stored enhancement with a user-edited
// one; only rows still awaiting approval are touched.
func (r *ModelRepository) UpdateEnhancedPrompt(ctx context.Context, tx db.DBTX, id uuid.UUID, enhancedPrompt string) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE models SET enhanced_prompt = $2, updated_at = now()
		WHERE id = $1 AND status = 'awaiting_approval'`, id, enhancedPrompt)
	if err != nil {
		return false, wrapWriteErr("failed to update enhanced prompt", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ModelRepository) UpdateVisibility(ctx context.Context, tx db.DBTX, id uuid.UUID, isPublic, isReusable *bool) error {
	_, err := tx.Exec(ctx, `
		UPDATE models SET
			is_public = COALESCE($2, is_public),
			is_reusable = COALESCE($3, is_reusable),
			updated_at = now()
		WHERE id = $1`, id, isPublic, isReusable)
	if err != nil {
		return wrapWriteErr("failed to update model visibility", err)
	}
	return nil
}

// IncrementReuses adds the ordered quantity, not a flat one per line item.
func (r *ModelRepository) IncrementReuses(ctx context.Context, tx db.DBTX, id uuid.UUID, quantity int) error {
	tag, err := tx.Exec(ctx, `UPDATE models SET reuses = reuses + $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return wrapWriteErr("failed to increment reuses", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "model not found", nil)
	}
	return nil
}

// ToggleLike inserts or removes the caller's like and adjusts the counter in
// one statement, so concurrent toggles cannot drift the count.
func (r *ModelRepository) ToggleLike(ctx context.Context, tx db.DBTX, modelID, userID uuid.UUID) (bool, error) {
	var liked bool
	err := tx.QueryRow(ctx, `
		WITH removed AS (
			DELETE FROM model_likes WHERE model_id = $1 AND user_id = $2 RETURNING 1
		), added AS (
			INSERT INTO model_likes (model_id, user_id)
			SELECT $1, $2 WHERE NOT EXISTS (SELECT 1 FROM removed)
			RETURNING 1
		)
		UPDATE models
		SET likes = GREATEST(0, likes + CASE WHEN EXISTS (SELECT 1 FROM added) THEN 1 ELSE -1 END),
		    updated_at = now()
		WHERE id = $1
		RETURNING EXISTS (SELECT 1 FROM added)`, modelID, userID).
		Scan(&liked)
	if err != nil {
		if isNoRows(err) {
			return false, infra.WrapRepoErr(infra.KindNotFound, "model not found", err)
		}
		return false, wrapWriteErr("failed to toggle model like", err)
	}
	return liked, nil
}
