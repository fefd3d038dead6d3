//go:build unit

package model_test

import (
	"testing"

	"droidforge/internal/domain/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.NewModel(uuid.New(), "Rocket", "a toy rocket", model.GeneratorMeshy, nil, model.Settings{
		Style:        "realistic",
		Complexity:   "medium",
		Size:         "medium",
		Material:     "pla",
		Printability: "optimized",
		Supports:     true,
		HollowFill:   20,
	})
	require.NoError(t, err)
	return m
}

func TestNewModel(t *testing.T) {
	t.Run("starts generating", func(t *testing.T) {
		m := newModel(t)
		assert.Equal(t, model.StatusGenerating, m.Status())
		assert.Nil(t, m.EnhancedPrompt())
		assert.False(t, m.IsPublic())
		assert.False(t, m.IsReusable())
	})

	t.Run("empty prompt rejected", func(t *testing.T) {
		_, err := model.NewModel(uuid.New(), "t", "", model.GeneratorMeshy, nil, model.Settings{})
		assert.ErrorIs(t, err, model.ErrEmptyPrompt)
	})

	t.Run("unknown generator rejected", func(t *testing.T) {
		_, err := model.NewModel(uuid.New(), "t", "p", "clayforge", nil, model.Settings{})
		assert.ErrorIs(t, err, model.ErrUnknownGenerator)
	})

	t.Run("hollow fill bounds", func(t *testing.T) {
		_, err := model.NewModel(uuid.New(), "t", "p", model.GeneratorMeshy, nil, model.Settings{HollowFill: 101})
		assert.ErrorIs(t, err, model.ErrInvalidHollow)
	})
}

func TestStatusTransitions(t *testing.T) {
	stats := model.MeshStats{Vertices: 1200, Faces: 2400, FileSizeMB: 12, PrintTimeMin: 90}

	t.Run("generating to awaiting_approval to completed", func(t *testing.T) {
		m := newModel(t)
		require.NoError(t, m.MarkEnhanced("detailed description"))
		assert.Equal(t, model.StatusAwaitingApproval, m.Status())
		require.NotNil(t, m.EnhancedPrompt())

		require.NoError(t, m.MarkCompleted("edited description", stats))
		assert.Equal(t, model.StatusCompleted, m.Status())
		require.NotNil(t, m.GenerationData())
		assert.Equal(t, 1200, m.GenerationData().Vertices)
	})

	t.Run("cannot complete without approval step", func(t *testing.T) {
		m := newModel(t)
		assert.ErrorIs(t, m.MarkCompleted("x", stats), model.ErrNotApprovable)
	})

	t.Run("failure is legal from any non-terminal status", func(t *testing.T) {
		m := newModel(t)
		require.NoError(t, m.MarkFailed())
		assert.Equal(t, model.StatusFailed, m.Status())

		m2 := newModel(t)
		require.NoError(t, m2.MarkEnhanced("d"))
		require.NoError(t, m2.MarkFailed())
		assert.Equal(t, model.StatusFailed, m2.Status())
	})

	t.Run("terminal statuses are final", func(t *testing.T) {
		m := newModel(t)
		require.NoError(t, m.MarkFailed())
		assert.ErrorIs(t, m.MarkFailed(), model.ErrAlreadyTerminal)
		assert.ErrorIs(t, m.MarkEnhanced("d"), model.ErrAlreadyTerminal)
		assert.ErrorIs(t, m.MarkCompleted("d", stats), model.ErrNotApprovable)
	})
}

func TestEnhancementPrompt(t *testing.T) {
	m := newModel(t)
	p := m.EnhancementPrompt()
	assert.Contains(t, p, "a toy rocket")
	assert.Contains(t, p, "Supports needed: Yes")
	assert.Contains(t, p, "Hollow fill percentage: 20%")
}
