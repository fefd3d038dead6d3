package request

import (
	"github.com/google/uuid"

	"droidforge/internal/domain/model"
)

type GenerationSettings struct {
	Style        string `json:"style" binding:"required"`
	Complexity   string `json:"complexity" binding:"required"`
	Size         string `json:"size" binding:"required"`
	Material     string `json:"material" binding:"required"`
	Printability string `json:"printability" binding:"required"`
	Supports     bool   `json:"supports"`
	HollowFill   int    `json:"hollow_fill" binding:"min=0,max=100"`
}

func (s GenerationSettings) ToDomain() model.Settings {
	return model.Settings{
		Style:        s.Style,
		Complexity:   s.Complexity,
		Size:         s.Size,
		Material:     s.Material,
		Printability: s.Printability,
		Supports:     s.Supports,
		HollowFill:   s.HollowFill,
	}
}

type GenerateModelRequest struct {
	Title          string             `json:"title" binding:"required"`
	Prompt         string             `json:"prompt" binding:"required"`
	Generator      string             `json:"generator" binding:"required"`
	ConceptImageID *uuid.UUID         `json:"concept_image_id,omitempty"`
	Settings       GenerationSettings `json:"settings" binding:"required"`
}

// ExecuteGenerationRequest confirms an awaiting model for dispatch. The
// enhanced prompt is optional; when present it replaces the stored one.
type ExecuteGenerationRequest struct {
	EnhancedPrompt *string `json:"enhanced_prompt,omitempty"`
}

type UpdateModelVisibilityRequest struct {
	IsPublic   *bool `json:"is_public,omitempty"`
	IsReusable *bool `json:"is_reusable,omitempty"`
}
