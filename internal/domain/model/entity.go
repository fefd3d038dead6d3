package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPrompt      = errors.New("prompt must not be empty")
	ErrUnknownGenerator = errors.New("unknown generator")
	ErrInvalidHollow    = errors.New("hollow fill must be between 0 and 100")
	ErrNotApprovable    = errors.New("model is not awaiting approval")
	ErrAlreadyTerminal  = errors.New("model already reached a terminal status")
)

// Settings capture the print-oriented generation parameters.
type Settings struct {
	Style        string
	Complexity   string
	Size         string
	Material     string
	Printability string
	Supports     bool
	HollowFill   int
}

func (s Settings) Validate() error {
	if s.HollowFill < 0 || s.HollowFill > 100 {
		return ErrInvalidHollow
	}
	return nil
}

// MeshStats is the provider-reported result of a completed generation.
type MeshStats struct {
	Vertices     int
	Faces        int
	FileSizeMB   int
	PrintTimeMin int
}

// Model is one generation job tracked from prompt through enhancement,
// approval and provider dispatch.
type Model struct {
	id             uuid.UUID
	userID         uuid.UUID
	title          string
	prompt         string
	enhancedPrompt *string
	generator      Generator
	status         Status
	conceptImageID *uuid.UUID
	settings       Settings
	generationData *MeshStats
	isPublic       bool
	isFeatured     bool
	isReusable     bool
	tags           []string
	likes          int
	downloads      int
	reuses         int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewModel(userID uuid.UUID, title, prompt string, generator Generator, conceptImageID *uuid.UUID, settings Settings) (*Model, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if !generator.IsValid() {
		return nil, ErrUnknownGenerator
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Model{
		id:             uuid.New(),
		userID:         userID,
		title:          title,
		prompt:         prompt,
		generator:      generator,
		status:         StatusGenerating,
		conceptImageID: conceptImageID,
		settings:       settings,
		tags:           []string{},
	}, nil
}

func ReconstructModel(
	id, userID uuid.UUID,
	title, prompt string,
	enhancedPrompt *string,
	generator Generator,
	status Status,
	conceptImageID *uuid.UUID,
	settings Settings,
	generationData *MeshStats,
	isPublic, isFeatured, isReusable bool,
	tags []string,
	likes, downloads, reuses int,
	createdAt, updatedAt time.Time,
) *Model {
	return &Model{
		id:             id,
		userID:         userID,
		title:          title,
		prompt:         prompt,
		enhancedPrompt: enhancedPrompt,
		generator:      generator,
		status:         status,
		conceptImageID: conceptImageID,
		settings:       settings,
		generationData: generationData,
		isPublic:       isPublic,
		isFeatured:     isFeatured,
		isReusable:     isReusable,
		tags:           tags,
		likes:          likes,
		downloads:      downloads,
		reuses:         reuses,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// MarkEnhanced applies the prompt-enhancement result and moves the job to
// awaiting_approval. Only legal from generating.
func (m *Model) MarkEnhanced(enhancedPrompt string) error {
	if m.status != StatusGenerating {
		return ErrAlreadyTerminal
	}
	m.enhancedPrompt = &enhancedPrompt
	m.status = StatusAwaitingApproval
	return nil
}

// MarkCompleted records provider mesh statistics and the final prompt text.
// Only legal from awaiting_approval.
func (m *Model) MarkCompleted(enhancedPrompt string, stats MeshStats) error {
	if m.status != StatusAwaitingApproval {
		return ErrNotApprovable
	}
	m.enhancedPrompt = &enhancedPrompt
	m.generationData = &stats
	m.status = StatusCompleted
	return nil
}

// MarkFailed is legal from any non-terminal status.
func (m *Model) MarkFailed() error {
	if m.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	m.status = StatusFailed
	return nil
}

// EnhancementPrompt renders the instruction sent to the text-completion
// provider during the enhancement step.
func (m *Model) EnhancementPrompt() string {
	supports := "No"
	if m.settings.Supports {
		supports = "Yes"
	}
	return fmt.Sprintf(`Create a 3D model: %s

Style: %s
Complexity: %s
Target size: %s
Material consideration: %s
Printability: %s
Supports needed: %s
Hollow fill percentage: %d%%

Please generate a detailed 3D model description optimized for 3D printing with these specifications.`,
		m.prompt,
		m.settings.Style,
		m.settings.Complexity,
		m.settings.Size,
		m.settings.Material,
		m.settings.Printability,
		supports,
		m.settings.HollowFill,
	)
}

func (m *Model) SetPublic(public bool)     { m.isPublic = public }
func (m *Model) SetReusable(reusable bool) { m.isReusable = reusable }

func (m *Model) ID() uuid.UUID              { return m.id }
func (m *Model) UserID() uuid.UUID          { return m.userID }
func (m *Model) Title() string              { return m.title }
func (m *Model) Prompt() string             { return m.prompt }
func (m *Model) EnhancedPrompt() *string    { return m.enhancedPrompt }
func (m *Model) Generator() Generator       { return m.generator }
func (m *Model) Status() Status             { return m.status }
func (m *Model) ConceptImageID() *uuid.UUID { return m.conceptImageID }
func (m *Model) Settings() Settings         { return m.settings }
func (m *Model) GenerationData() *MeshStats { return m.generationData }
func (m *Model) IsPublic() bool             { return m.isPublic }
func (m *Model) IsFeatured() bool           { return m.isFeatured }
func (m *Model) IsReusable() bool           { return m.isReusable }
func (m *Model) Tags() []string             { return m.tags }
func (m *Model) Likes() int                 { return m.likes }
func (m *Model) Downloads() int             { return m.downloads }
func (m *Model) Reuses() int                { return m.reuses }
func (m *Model) CreatedAt() time.Time       { return m.createdAt }
func (m *Model) UpdatedAt() time.Time       { return m.updatedAt }
