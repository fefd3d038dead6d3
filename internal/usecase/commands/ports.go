package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"droidforge/internal/domain/concept"
	"droidforge/internal/domain/model"
	"droidforge/internal/domain/order"
	"droidforge/internal/domain/printer"
	"droidforge/internal/domain/user"
	"droidforge/internal/infra/db"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type ProfileSnapshot struct {
	UserID              uuid.UUID
	FreeGenerationsUsed int
	SubscriptionTier    string
	APIKeys             map[string]string
}

type ModelSnapshot struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Status             model.Status
	Generator          model.Generator
	Prompt             string
	EnhancedPrompt     *string
	Settings           model.Settings
	IsReusable         bool
	PlatformCredential bool
}

type GenerationTask struct {
	ID                 uuid.UUID
	ModelID            uuid.UUID
	Generator          model.Generator
	JobHandle          string
	PlatformCredential bool
	Status             string
	Attempts           int
	Deadline           time.Time
	RunAt              time.Time
}

type ScheduledCall struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	PhoneNumber string
	Script      string
	Status      string
	RunAt       time.Time
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	CreateProfile(ctx context.Context, tx db.DBTX, p *user.Profile) error
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	FindProfile(ctx context.Context, userID uuid.UUID) (*ProfileSnapshot, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	UpdateAPIKeys(ctx context.Context, tx db.DBTX, userID uuid.UUID, keys map[string]string) error
	// ConsumeFreeGeneration applies the quota counter as one conditional
	// UPDATE; affected == false means the quota was already exhausted.
	ConsumeFreeGeneration(ctx context.Context, tx db.DBTX, userID uuid.UUID, quota int) (bool, error)
}

type ModelRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *model.Model, platformCredential bool) error
	FindSnapshot(ctx context.Context, id uuid.UUID) (*ModelSnapshot, error)
	// Transition helpers are conditional on the current status so concurrent
	// workers cannot double-apply a terminal state.
	MarkEnhanced(ctx context.Context, tx db.DBTX, id uuid.UUID, enhancedPrompt string) (bool, error)
	MarkCompleted(ctx context.Context, tx db.DBTX, id uuid.UUID, stats model.MeshStats) (bool, error)
	MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
	// UpdateEnhancedPrompt stores a user-edited prompt while the model still
	// awaits approval; rows past that state are left alone.
	UpdateEnhancedPrompt(ctx context.Context, tx db.DBTX, id uuid.UUID, enhancedPrompt string) (bool, error)
	UpdateVisibility(ctx context.Context, tx db.DBTX, id uuid.UUID, isPublic, isReusable *bool) error
	IncrementReuses(ctx context.Context, tx db.DBTX, id uuid.UUID, quantity int) error
	// ToggleLike flips the caller's like in one statement and reports the
	// resulting state.
	ToggleLike(ctx context.Context, tx db.DBTX, modelID, userID uuid.UUID) (bool, error)
}

type ConceptRepository interface {
	Create(ctx context.Context, tx db.DBTX, img *concept.Image) error
	FindOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	// Select flips every row of the user in one statement so exactly one
	// image stays selected.
	Select(ctx context.Context, tx db.DBTX, userID, imageID uuid.UUID) (bool, error)
	Delete(ctx context.Context, tx db.DBTX, userID, imageID uuid.UUID) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status, trackingNumber *string) error
	AttachPaymentIntent(ctx context.Context, tx db.DBTX, id uuid.UUID, paymentIntentID string) error
}

type PrinterRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *printer.Printer) error
	CreateApplication(ctx context.Context, tx db.DBTX, a *printer.Application) error
	FindApplication(ctx context.Context, id uuid.UUID) (*printer.Application, error)
	FindLiveApplicationByUser(ctx context.Context, userID uuid.UUID) (*printer.Application, error)
	UpdateApplication(ctx context.Context, tx db.DBTX, a *printer.Application) error
}

type TaskRepository interface {
	// Enqueue upserts on model id so a retried dispatch never duplicates a task.
	Enqueue(ctx context.Context, tx db.DBTX, task GenerationTask) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]GenerationTask, error)
	Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, attempts int) error
	Finish(ctx context.Context, tx db.DBTX, id uuid.UUID, status string) error
}

type CommunicationRepository interface {
	Schedule(ctx context.Context, tx db.DBTX, call ScheduledCall) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]ScheduledCall, error)
	Finish(ctx context.Context, id uuid.UUID, status string) error
}

type ContactRepository interface {
	CreateSubmission(ctx context.Context, name, email, subject, message string) (uuid.UUID, error)
	UpsertSubscription(ctx context.Context, email string, categories []string) error
}

// Provider ports. Implementations live in infra/provider.

type PromptEnhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
}

type ImageProvider interface {
	// Generator names the backing service so stored images record where
	// they actually came from.
	Generator() string
	GenerateImages(ctx context.Context, prompt string, count int) ([]string, error)
}

type GenerationJob struct {
	ModelID    uuid.UUID
	Prompt     string
	Settings   model.Settings
	Credential string
}

type PollResult struct {
	Done   bool
	Failed bool
	Detail string
	Stats  *model.MeshStats
}

type ModelProvider interface {
	Generator() model.Generator
	Submit(ctx context.Context, job GenerationJob) (string, error)
	Poll(ctx context.Context, jobHandle, credential string) (*PollResult, error)
}

type ProviderRegistry interface {
	For(g model.Generator) (ModelProvider, error)
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountCents  int64
	Currency     string
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string, idempotencyKey string) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

type VoiceAgent interface {
	PlaceCall(ctx context.Context, phoneNumber, script string) error
}
