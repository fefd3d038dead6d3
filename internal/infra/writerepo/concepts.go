package writerepo

import (
	"context"

	"github.com/google/uuid"

	"droidforge/internal/domain/concept"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
)

type ConceptRepository struct {
	db db.DBTX
}

func NewConceptRepository(db db.DBTX) *ConceptRepository {
	return &ConceptRepository{db: db}
}

func (r *ConceptRepository) Create(ctx context.Context, tx db.DBTX, img *concept.Image) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO concept_images (id, user_id, prompt, image_url, generator, status, is_selected, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
		img.ID(), img.UserID(), img.Prompt(), img.ImageURL(),
		img.Generator(), img.Status().String(), img.IsSelected())
	if err != nil {
		return wrapWriteErr("failed to create concept image", err)
	}
	return nil
}

func (r *ConceptRepository) FindOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var owner uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT user_id FROM concept_images WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if isNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr(infra.KindNotFound, "concept image not found", err)
		}
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find concept owner", err)
	}
	return owner, nil
}

// Select flips the whole user set in one statement; exactly the target row
// ends up selected. Zero affected rows means the image is not the user's.
func (r *ConceptRepository) Select(ctx context.Context, tx db.DBTX, userID, imageID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE concept_images SET is_selected = (id = $2)
		WHERE user_id = $1
		  AND EXISTS (SELECT 1 FROM concept_images WHERE id = $2 AND user_id = $1)`,
		userID, imageID)
	if err != nil {
		return false, wrapWriteErr("failed to select concept image", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ConceptRepository) Delete(ctx context.Context, tx db.DBTX, userID, imageID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `
		DELETE FROM concept_images WHERE id = $2 AND user_id = $1`, userID, imageID)
	if err != nil {
		return false, wrapWriteErr("failed to delete concept image", err)
	}
	return tag.RowsAffected() > 0, nil
}
