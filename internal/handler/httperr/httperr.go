package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"droidforge/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortDomainError maps usecase sentinel errors onto HTTP statuses. Anything
// not recognized is a 500 with a generic message.
func AbortDomainError(c *gin.Context, err error) {
	status, msg := classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrInvalidCredential):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, errs.ErrQuotaExhausted):
		return http.StatusPaymentRequired, "No free generations remaining"
	case errors.Is(err, errs.ErrNotOwner):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, errs.ErrModelNotFound):
		return http.StatusNotFound, "Model not found"
	case errors.Is(err, errs.ErrConceptNotFound):
		return http.StatusNotFound, "Concept image not found"
	case errors.Is(err, errs.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, errs.ErrApplicationNotFound):
		return http.StatusNotFound, "Printer application not found"
	case errors.Is(err, errs.ErrPrinterNotFound):
		return http.StatusNotFound, "Printer not found"
	case errors.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, errs.ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, errs.ErrApplicationExists):
		return http.StatusConflict, "Application already pending or approved"
	case errors.Is(err, errs.ErrPricingMismatch):
		return http.StatusUnprocessableEntity, "Order totals do not match server pricing"
	case errors.Is(err, errs.ErrUnknownPricingTier):
		return http.StatusUnprocessableEntity, "Unknown size or material tier"
	case errors.Is(err, errs.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity, "Invalid quantity"
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "Model is not in a state that allows this operation"
	case errors.Is(err, errs.ErrMissingProviderCredential):
		return http.StatusUnprocessableEntity, "No API key available for the selected generator"
	case errors.Is(err, errs.ErrProviderFailure):
		return http.StatusBadGateway, "Generation provider failure"
	case errors.Is(err, errs.ErrPaymentFailure):
		return http.StatusBadGateway, "Payment provider failure"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
