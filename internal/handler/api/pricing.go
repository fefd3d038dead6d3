package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"droidforge/internal/handler/httperr"
	"droidforge/internal/usecase/queries"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Price quote
// @Description Quote a (size, material) tier for a quantity
// @Tags pricing
// @Produce json
// @Param size query string true "Print size tier"
// @Param material query string true "Material tier"
// @Param quantity query int false "Quantity, default 1"
// @Param reused query bool false "Reused model, waives the generation fee"
// @Success 200 {object} pricing.Quote
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pricing/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	quantity := 1
	if raw := c.Query("quantity"); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quantity", nil)
			return
		}
		quantity = q
	}
	reused := c.Query("reused") == "true"

	quote, err := h.q.Quote(c.Request.Context(), queries.QuoteParams{
		Size:          c.Query("size"),
		Material:      c.Query("material"),
		Quantity:      quantity,
		IsReusedModel: reused,
	})
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
