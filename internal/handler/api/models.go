package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/handler/httperr"
	"droidforge/internal/handler/middleware"
	"droidforge/internal/usecase/commands"
	"droidforge/internal/usecase/queries"
)

type ModelHandler struct {
	cmds commands.GenerationCommands
	q    queries.ModelQueries
}

func NewModelHandler(cmds commands.GenerationCommands, q queries.ModelQueries) *ModelHandler {
	return &ModelHandler{cmds: cmds, q: q}
}

// @Summary Create model
// @Description Create a model record and enhance its prompt; the model waits for approval before the generator runs
// @Tags models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateModelRequest true "Generation request"
// @Success 201 {object} queries.ModelView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /models [post]
func (h *ModelHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.GenerateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.CreateModel(c.Request.Context(), userID, req)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Execute generation
// @Description Submit an approved model to its 3D generation provider, optionally confirming an edited enhanced prompt
// @Tags models
// @Accept json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Param request body reqdto.ExecuteGenerationRequest false "Dispatch confirmation"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /models/{id}/generate [post]
func (h *ModelHandler) Generate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid model ID format", nil)
		return
	}

	// The body is optional; an empty request dispatches the stored prompt.
	var req reqdto.ExecuteGenerationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	if err := h.cmds.ExecuteGeneration(c.Request.Context(), userID, modelID, req); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// @Summary Toggle model like
// @Description Like a model, or remove an existing like
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /models/{id}/like [post]
func (h *ModelHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid model ID format", nil)
		return
	}

	liked, err := h.cmds.ToggleLike(c.Request.Context(), userID, modelID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// @Summary Get model
// @Description Get a model by ID; private models are visible to owners only
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Success 200 {object} queries.ModelView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /models/{id} [get]
func (h *ModelHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid model ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, modelID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List own models
// @Description List the authenticated user's models
// @Tags models
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ModelView
// @Failure 401 {object} map[string]string
// @Router /models [get]
func (h *ModelHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Public gallery
// @Description List completed public models
// @Tags models
// @Produce json
// @Param limit query int false "Max results, default 50"
// @Success 200 {array} queries.ModelView
// @Router /models/public [get]
func (h *ModelHandler) ListPublic(c *gin.Context) {
	views, err := h.q.ListPublic(c.Request.Context(), limitParam(c))
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Reusable models
// @Description List completed models available for reuse ordering
// @Tags models
// @Produce json
// @Param limit query int false "Max results, default 50"
// @Success 200 {array} queries.ModelView
// @Router /models/reusable [get]
func (h *ModelHandler) ListReusable(c *gin.Context) {
	views, err := h.q.ListReusable(c.Request.Context(), limitParam(c))
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Featured models
// @Description List curated featured models
// @Tags models
// @Produce json
// @Param limit query int false "Max results, default 50"
// @Success 200 {array} queries.ModelView
// @Router /models/featured [get]
func (h *ModelHandler) ListFeatured(c *gin.Context) {
	views, err := h.q.ListFeatured(c.Request.Context(), limitParam(c))
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Update model visibility
// @Description Toggle the public and reusable flags of an owned model
// @Tags models
// @Accept json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Param request body reqdto.UpdateModelVisibilityRequest true "Visibility flags"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /models/{id}/visibility [patch]
func (h *ModelHandler) UpdateVisibility(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid model ID format", nil)
		return
	}

	var req reqdto.UpdateModelVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateVisibility(c.Request.Context(), userID, modelID, req); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func limitParam(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
