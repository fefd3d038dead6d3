package concept

import (
	"errors"
	"time"

	"droidforge/internal/domain/model"

	"github.com/google/uuid"
)

var ErrEmptyPrompt = errors.New("prompt must not be empty")

// GeneratorUpload marks images supplied by the user rather than generated.
const GeneratorUpload = "upload"

// Image is one AI concept image candidate. At most one image per user is
// selected at any time; the storage layer enforces that with a single
// conditional update.
type Image struct {
	id         uuid.UUID
	userID     uuid.UUID
	prompt     string
	imageURL   string
	generator  string
	status     model.Status
	isSelected bool
	createdAt  time.Time
}

func NewImage(userID uuid.UUID, prompt, imageURL, generator string) (*Image, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	return &Image{
		id:        uuid.New(),
		userID:    userID,
		prompt:    prompt,
		imageURL:  imageURL,
		generator: generator,
		status:    model.StatusCompleted,
	}, nil
}

func ReconstructImage(id, userID uuid.UUID, prompt, imageURL, generator string, status model.Status, isSelected bool, createdAt time.Time) *Image {
	return &Image{
		id:         id,
		userID:     userID,
		prompt:     prompt,
		imageURL:   imageURL,
		generator:  generator,
		status:     status,
		isSelected: isSelected,
		createdAt:  createdAt,
	}
}

func (i *Image) IsOwnedBy(userID uuid.UUID) bool {
	return i.userID == userID
}

func (i *Image) ID() uuid.UUID        { return i.id }
func (i *Image) UserID() uuid.UUID    { return i.userID }
func (i *Image) Prompt() string       { return i.prompt }
func (i *Image) ImageURL() string     { return i.imageURL }
func (i *Image) Generator() string    { return i.generator }
func (i *Image) Status() model.Status { return i.status }
func (i *Image) IsSelected() bool     { return i.isSelected }
func (i *Image) CreatedAt() time.Time { return i.createdAt }
