package readstore

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, `
		SELECT id, email, role, is_active FROM users WHERE id = $1`, id).
		Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindProfile(ctx context.Context, userID uuid.UUID) (*queries.ProfileView, error) {
	var (
		view        queries.ProfileView
		apiKeysJSON []byte
	)
	err := s.db.QueryRow(ctx, `
		SELECT p.user_id, u.email, u.role, p.free_generations_used,
		       p.subscription_tier, p.api_keys, u.created_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`, userID).
		Scan(&view.UserID, &view.Email, &view.Role, &view.FreeGenerationsUsed,
			&view.SubscriptionTier, &apiKeysJSON, &view.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "profile not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find profile", err)
	}

	// Only provider names leave the store; key material stays server-side.
	if apiKeysJSON != nil {
		var keys map[string]string
		if err := json.Unmarshal(apiKeysJSON, &keys); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode api keys", err)
		}
		for provider := range keys {
			view.APIKeyProviders = append(view.APIKeyProviders, provider)
		}
		sort.Strings(view.APIKeyProviders)
	}
	return &view, nil
}
