package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/queries"
)

const modelColumns = `
	id, user_id, title, prompt, enhanced_prompt, generator, status,
	concept_image_id, settings, generation_data, is_public, is_featured,
	is_reusable, tags, likes, downloads, reuses, created_at, updated_at`

type ModelReadStore struct {
	db db.DBTX
}

func NewModelReadStore(db db.DBTX) *ModelReadStore {
	return &ModelReadStore{db: db}
}

func (s *ModelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ModelView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+modelColumns+` FROM models WHERE id = $1`, id)
	view, err := scanModelView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "model not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find model by id", err)
	}
	return view, nil
}

func (s *ModelReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ModelView, error) {
	rows, err := s.db.Query(ctx, `SELECT `+modelColumns+` FROM models WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list user models", err)
	}
	return collectModelViews(rows)
}

func (s *ModelReadStore) FindPublic(ctx context.Context, limit int) ([]*queries.ModelView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+modelColumns+` FROM models
		WHERE is_public AND status = 'completed'
		ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list public models", err)
	}
	return collectModelViews(rows)
}

func (s *ModelReadStore) FindReusable(ctx context.Context, limit int) ([]*queries.ModelView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+modelColumns+` FROM models
		WHERE is_public AND is_reusable AND status = 'completed'
		ORDER BY reuses DESC, created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list reusable models", err)
	}
	return collectModelViews(rows)
}

func (s *ModelReadStore) FindFeatured(ctx context.Context, limit int) ([]*queries.ModelView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+modelColumns+` FROM models
		WHERE is_public AND is_featured AND status = 'completed'
		ORDER BY likes DESC, created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list featured models", err)
	}
	return collectModelViews(rows)
}

func collectModelViews(rows pgx.Rows) ([]*queries.ModelView, error) {
	defer rows.Close()
	var views []*queries.ModelView
	for rows.Next() {
		view, err := scanModelView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan model row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate model rows", err)
	}
	return views, nil
}

func scanModelView(row pgx.Row) (*queries.ModelView, error) {
	var (
		view               queries.ModelView
		settingsJSON       []byte
		generationDataJSON []byte
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.Title, &view.Prompt, &view.EnhancedPrompt,
		&view.Generator, &view.Status, &view.ConceptImageID, &settingsJSON,
		&generationDataJSON, &view.IsPublic, &view.IsFeatured, &view.IsReusable,
		&view.Tags, &view.Likes, &view.Downloads, &view.Reuses,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(settingsJSON, &view.Settings); err != nil {
		return nil, err
	}
	if generationDataJSON != nil {
		view.GenerationData = &queries.MeshStatsView{}
		if err := json.Unmarshal(generationDataJSON, view.GenerationData); err != nil {
			return nil, err
		}
	}
	return &view, nil
}
