package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/queries"
)

const conceptColumns = `id, user_id, prompt, image_url, generator, status, is_selected, created_at`

type ConceptReadStore struct {
	db db.DBTX
}

func NewConceptReadStore(db db.DBTX) *ConceptReadStore {
	return &ConceptReadStore{db: db}
}

func (s *ConceptReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ConceptImageView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+conceptColumns+` FROM concept_images WHERE id = $1`, id)
	view, err := scanConceptView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "concept image not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find concept image", err)
	}
	return view, nil
}

func (s *ConceptReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ConceptImageView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+conceptColumns+` FROM concept_images
		WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list concept images", err)
	}
	defer rows.Close()

	var views []*queries.ConceptImageView
	for rows.Next() {
		view, err := scanConceptView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan concept row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate concept rows", err)
	}
	return views, nil
}

func (s *ConceptReadStore) FindSelected(ctx context.Context, userID uuid.UUID) (*queries.ConceptImageView, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+conceptColumns+` FROM concept_images
		WHERE user_id = $1 AND is_selected`, userID)
	view, err := scanConceptView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no selected concept", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find selected concept", err)
	}
	return view, nil
}

func scanConceptView(row pgx.Row) (*queries.ConceptImageView, error) {
	var view queries.ConceptImageView
	err := row.Scan(
		&view.ID, &view.UserID, &view.Prompt, &view.ImageURL,
		&view.Generator, &view.Status, &view.IsSelected, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
