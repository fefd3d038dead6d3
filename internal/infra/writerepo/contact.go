package writerepo

import (
	"context"

	"github.com/google/uuid"

	"droidforge/internal/infra/db"
)

type ContactRepository struct {
	db db.DBTX
}

func NewContactRepository(db db.DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) CreateSubmission(ctx context.Context, name, email, subject, message string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO contact_submissions (id, name, email, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'new', now())`,
		id, name, email, subject, message)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create contact submission", err)
	}
	return id, nil
}

// UpsertSubscription reactivates lapsed addresses and merges the new
// categories into the existing set instead of replacing it.
func (r *ContactRepository) UpsertSubscription(ctx context.Context, email string, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO newsletter_subscriptions (id, email, categories, is_active, subscribed_at)
		VALUES ($1, $2, $3, true, now())
		ON CONFLICT (email) DO UPDATE SET
			categories = ARRAY(
				SELECT DISTINCT unnest(newsletter_subscriptions.categories || EXCLUDED.categories)
			),
			is_active = true,
			subscribed_at = now()`,
		uuid.New(), email, categories)
	if err != nil {
		return wrapWriteErr("failed to upsert newsletter subscription", err)
	}
	return nil
}
