package user

import (
	"time"

	"droidforge/internal/domain/model"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, role Role, lastLogin *time.Time, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// APIKeys holds per-provider credentials a user may supply to bypass the
// free-generation quota. Values are stored as provided; empty means unset.
type APIKeys map[model.Generator]string

func (k APIKeys) For(g model.Generator) (string, bool) {
	if k == nil {
		return "", false
	}
	key, ok := k[g]
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// Profile is the per-user aggregate carrying the free-generation counter,
// subscription tier and provider credentials.
type Profile struct {
	id                  uuid.UUID
	userID              uuid.UUID
	freeGenerationsUsed int
	subscriptionTier    SubscriptionTier
	apiKeys             APIKeys
}

func NewProfile(userID uuid.UUID) *Profile {
	return &Profile{
		id:               uuid.New(),
		userID:           userID,
		subscriptionTier: TierFree,
	}
}

func ReconstructProfile(id, userID uuid.UUID, freeGenerationsUsed int, tier SubscriptionTier, apiKeys APIKeys) *Profile {
	return &Profile{
		id:                  id,
		userID:              userID,
		freeGenerationsUsed: freeGenerationsUsed,
		subscriptionTier:    tier,
		apiKeys:             apiKeys,
	}
}

// FreeGenerationsRemaining never goes below zero.
func (p *Profile) FreeGenerationsRemaining(quota int) int {
	remaining := quota - p.freeGenerationsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (p *Profile) SetAPIKeys(keys APIKeys) {
	p.apiKeys = keys
}

func (p *Profile) ID() uuid.UUID                      { return p.id }
func (p *Profile) UserID() uuid.UUID                  { return p.userID }
func (p *Profile) FreeGenerationsUsed() int           { return p.freeGenerationsUsed }
func (p *Profile) SubscriptionTier() SubscriptionTier { return p.subscriptionTier }
func (p *Profile) APIKeys() APIKeys                   { return p.apiKeys }
