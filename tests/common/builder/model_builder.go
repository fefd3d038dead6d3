//go:build unit

package builder

import (
	"time"

	"github.com/google/uuid"

	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/usecase/queries"
)

type ModelBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Prompt    string
	Generator string
	Status    string
	IsPublic  bool
}

func NewModelBuilder() *ModelBuilder {
	return &ModelBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Title:     "Articulated dragon",
		Prompt:    "an articulated dragon with flexible joints",
		Generator: "meshy",
		Status:    "awaiting_approval",
	}
}

func (b *ModelBuilder) WithUserID(id uuid.UUID) *ModelBuilder {
	b.UserID = id
	return b
}

func (b *ModelBuilder) WithStatus(status string) *ModelBuilder {
	b.Status = status
	return b
}

func (b *ModelBuilder) WithPublic(public bool) *ModelBuilder {
	b.IsPublic = public
	return b
}

func (b *ModelBuilder) BuildCreateRequestDTO() reqdto.GenerateModelRequest {
	return reqdto.GenerateModelRequest{
		Title:     b.Title,
		Prompt:    b.Prompt,
		Generator: b.Generator,
		Settings: reqdto.GenerationSettings{
			Style:        "realistic",
			Complexity:   "medium",
			Size:         "medium",
			Material:     "pla",
			Printability: "standard",
			Supports:     true,
			HollowFill:   20,
		},
	}
}

func (b *ModelBuilder) BuildView() *queries.ModelView {
	now := time.Now().UTC()
	return &queries.ModelView{
		ID:        b.ID,
		UserID:    b.UserID,
		Title:     b.Title,
		Prompt:    b.Prompt,
		Generator: b.Generator,
		Status:    b.Status,
		Settings: queries.SettingsView{
			Style:        "realistic",
			Complexity:   "medium",
			Size:         "medium",
			Material:     "pla",
			Printability: "standard",
			Supports:     true,
			HollowFill:   20,
		},
		IsPublic:  b.IsPublic,
		Tags:      []string{"dragon"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
