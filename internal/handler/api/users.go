package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/handler/httperr"
	"droidforge/internal/handler/middleware"
	"droidforge/internal/usecase/commands"
	"droidforge/internal/usecase/queries"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Get profile
// @Description Get the authenticated user's profile with quota usage
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.ProfileView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/me/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.q.Profile(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update API keys
// @Description Store user-supplied generator API keys
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UpdateAPIKeysRequest true "API keys keyed by generator name"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/me/api-keys [put]
func (h *UserHandler) UpdateAPIKeys(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.UpdateAPIKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateAPIKeys(c.Request.Context(), userID, req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown generator name", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
