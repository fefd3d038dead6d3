package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/handler/httperr"
	"droidforge/internal/handler/middleware"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/commands"
	"droidforge/internal/usecase/queries"
)

type PrinterHandler struct {
	cmds commands.PrinterCommands
	q    queries.PrinterQueries
}

func NewPrinterHandler(cmds commands.PrinterCommands, q queries.PrinterQueries) *PrinterHandler {
	return &PrinterHandler{cmds: cmds, q: q}
}

// @Summary List active printers
// @Description List active network printers, optionally filtered by location
// @Tags printers
// @Produce json
// @Param country query string false "Country filter"
// @Param state query string false "State filter, requires country"
// @Success 200 {array} queries.PrinterView
// @Router /printers [get]
func (h *PrinterHandler) List(c *gin.Context) {
	country := c.Query("country")
	if country != "" {
		var state *string
		if s := c.Query("state"); s != "" {
			state = &s
		}
		views, err := h.q.ListByLocation(c.Request.Context(), country, state)
		if err != nil {
			httperr.AbortDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, views)
		return
	}

	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Nearest printer
// @Description Find the nearest active printer supporting the required materials
// @Tags printers
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param materials query string false "Comma-separated required materials"
// @Success 200 {object} queries.NearestPrinterView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /printers/nearest [get]
func (h *PrinterHandler) Nearest(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid latitude", nil)
		return
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid longitude", nil)
		return
	}

	var materials []string
	if raw := c.Query("materials"); raw != "" {
		materials = strings.Split(raw, ",")
	}

	view, err := h.q.FindNearest(c.Request.Context(), queries.NearestParams{
		Latitude:  lat,
		Longitude: lon,
		Materials: materials,
	})
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	if view == nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrPrinterNotFound, "No printer matches the required materials", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Printer network stats
// @Description Aggregate statistics over the printer network
// @Tags printers
// @Produce json
// @Success 200 {object} queries.PrinterStatsView
// @Router /printers/stats [get]
func (h *PrinterHandler) Stats(c *gin.Context) {
	view, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Submit printer application
// @Description Apply to join the printer network; one live application per user
// @Tags printers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitApplicationRequest true "Application"
// @Success 201 {object} queries.ApplicationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /printers/applications [post]
func (h *PrinterHandler) SubmitApplication(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.SubmitApplication(c.Request.Context(), userID, req)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Own application
// @Description Get the authenticated user's latest printer application
// @Tags printers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ApplicationView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /printers/applications/me [get]
func (h *PrinterHandler) MyApplication(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.q.ApplicationByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Review printer application
// @Description Approve or reject a pending application; admins only
// @Tags printers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body reqdto.ReviewApplicationRequest true "Review decision"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /printers/applications/{id}/review [post]
func (h *PrinterHandler) ReviewApplication(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application ID format", nil)
		return
	}

	var req reqdto.ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ReviewApplication(c.Request.Context(), applicationID, req); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
