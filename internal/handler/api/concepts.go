package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/handler/httperr"
	"droidforge/internal/handler/middleware"
	"droidforge/internal/usecase/commands"
	"droidforge/internal/usecase/queries"
)

type ConceptHandler struct {
	cmds commands.ConceptCommands
	q    queries.ConceptQueries
}

func NewConceptHandler(cmds commands.ConceptCommands, q queries.ConceptQueries) *ConceptHandler {
	return &ConceptHandler{cmds: cmds, q: q}
}

// @Summary Generate concept images
// @Description Generate up to four concept image candidates from a prompt
// @Tags concepts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateConceptsRequest true "Concept generation request"
// @Success 201 {array} queries.ConceptImageView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /concepts/generate [post]
func (h *ConceptHandler) Generate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.GenerateConceptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	views, err := h.cmds.Generate(c.Request.Context(), userID, req)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, views)
}

// @Summary Upload concept image
// @Description Register an externally hosted reference image as a concept
// @Tags concepts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UploadConceptRequest true "Upload request"
// @Success 201 {object} queries.ConceptImageView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /concepts/upload [post]
func (h *ConceptHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.UploadConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Upload(c.Request.Context(), userID, req)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List concept images
// @Description List the authenticated user's concept images
// @Tags concepts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ConceptImageView
// @Failure 401 {object} map[string]string
// @Router /concepts [get]
func (h *ConceptHandler) List(c *gin.Context) {
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

// @Summary Selected concept image
// @Description Get the user's currently selected concept image, if any
// @Tags concepts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ConceptImageView
// @Success 204 "No selection"
// @Failure 401 {object} map[string]string
// @Router /concepts/selected [get]
func (h *ConceptHandler) Selected(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.q.Selected(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Select concept image
// @Description Mark one owned concept image as the selected one
// @Tags concepts
// @Security BearerAuth
// @Param id path string true "Concept image ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /concepts/{id}/select [post]
func (h *ConceptHandler) Select(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid concept image ID format", nil)
		return
	}

	if err := h.cmds.Select(c.Request.Context(), userID, imageID); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete concept image
// @Description Delete an owned concept image
// @Tags concepts
// @Security BearerAuth
// @Param id path string true "Concept image ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /concepts/{id} [delete]
func (h *ConceptHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid concept image ID format", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), userID, imageID); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
