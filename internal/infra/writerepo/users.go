package writerepo

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"droidforge/internal/domain/user"
	"droidforge/internal/infra"
	"droidforge/internal/infra/db"
	"droidforge/internal/usecase/commands"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create user", err)
	}
	return u.ID(), nil
}

func (r *UserRepository) CreateProfile(ctx context.Context, tx db.DBTX, p *user.Profile) error {
	apiKeysJSON, err := encodeAPIKeys(p.APIKeys())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode api keys", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO profiles (id, user_id, free_generations_used, subscription_tier, api_keys)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID(), p.UserID(), p.FreeGenerationsUsed(), p.SubscriptionTier().String(), apiKeysJSON)
	if err != nil {
		return wrapWriteErr("failed to create profile", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	var snapshot commands.UserSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active FROM users WHERE email = $1`, email).
		Scan(&snapshot.ID, &snapshot.Email, &snapshot.PasswordHash, &snapshot.Role, &snapshot.IsActive)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by email", err)
	}
	return &snapshot, nil
}

func (r *UserRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*commands.ProfileSnapshot, error) {
	var (
		snapshot    commands.ProfileSnapshot
		apiKeysJSON []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT user_id, free_generations_used, subscription_tier, api_keys
		FROM profiles WHERE user_id = $1`, userID).
		Scan(&snapshot.UserID, &snapshot.FreeGenerationsUsed, &snapshot.SubscriptionTier, &apiKeysJSON)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "profile not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find profile", err)
	}

	snapshot.APIKeys = map[string]string{}
	if apiKeysJSON != nil {
		if err := json.Unmarshal(apiKeysJSON, &snapshot.APIKeys); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode api keys", err)
		}
	}
	return &snapshot, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`, userID)
	if err != nil {
		return wrapWriteErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateAPIKeys(ctx context.Context, tx db.DBTX, userID uuid.UUID, keys map[string]string) error {
	apiKeysJSON, err := json.Marshal(keys)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode api keys", err)
	}
	tag, err := tx.Exec(ctx, `UPDATE profiles SET api_keys = $2 WHERE user_id = $1`, userID, apiKeysJSON)
	if err != nil {
		return wrapWriteErr("failed to update api keys", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "profile not found", nil)
	}
	return nil
}

// ConsumeFreeGeneration is a single conditional UPDATE so concurrent
// completions can never push the counter past the quota.
func (r *UserRepository) ConsumeFreeGeneration(ctx context.Context, tx db.DBTX, userID uuid.UUID, quota int) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE profiles SET free_generations_used = free_generations_used + 1
		WHERE user_id = $1 AND free_generations_used < $2`, userID, quota)
	if err != nil {
		return false, wrapWriteErr("failed to consume free generation", err)
	}
	return tag.RowsAffected() > 0, nil
}

func encodeAPIKeys(keys user.APIKeys) ([]byte, error) {
	plain := make(map[string]string, len(keys))
	for generator, key := range keys {
		plain[generator.String()] = key
	}
	return json.Marshal(plain)
}
