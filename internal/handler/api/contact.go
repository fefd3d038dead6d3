package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "droidforge/internal/handler/dto/request"
	resdto "droidforge/internal/handler/dto/response"
	"droidforge/internal/handler/httperr"
	"droidforge/internal/usecase/commands"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Submit contact message
// @Description Record a contact form submission
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactMessageRequest true "Contact message"
// @Success 201 {object} resdto.ContactSubmissionResponse
// @Failure 400 {object} map[string]string
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.ContactSubmissionResponse{
		ID:      id,
		Status:  "new",
		Message: "Thanks for reaching out. We'll get back to you soon.",
	})
}

// @Summary Subscribe to newsletter
// @Description Subscribe an email address; resubscribing reactivates
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.NewsletterSubscribeRequest true "Subscription request"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} map[string]string
// @Router /newsletter/subscribe [post]
func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req reqdto.NewsletterSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.SubscribeNewsletter(c.Request.Context(), req); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.StatusResponse{Status: "subscribed"})
}
