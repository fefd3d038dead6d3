package queries

import (
	"context"

	"droidforge/internal/domain/pricing"
	"droidforge/internal/pkg/errs"
)

// QuoteParams are the caller-supplied pricing inputs.
type QuoteParams struct {
	Size          string
	Material      string
	Quantity      int
	IsReusedModel bool
}

type PricingQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*pricing.Quote, error)
}

// pricingQueriesImpl is a pure computation; it exists as a usecase so the
// handler layer stays uniform and the tier catalogue is resolvable per
// request later without an interface change.
type pricingQueriesImpl struct{}

func NewPricingQueries() PricingQueries {
	return &pricingQueriesImpl{}
}

func (q *pricingQueriesImpl) Quote(_ context.Context, params QuoteParams) (*pricing.Quote, error) {
	quote, err := pricing.Calculate(
		pricing.Size(params.Size),
		pricing.Material(params.Material),
		params.Quantity,
		params.IsReusedModel,
	)
	if err != nil {
		switch err {
		case pricing.ErrUnknownTier:
			return nil, errs.Mark(err, errs.ErrUnknownPricingTier)
		case pricing.ErrInvalidQuantity:
			return nil, errs.Mark(err, errs.ErrInvalidQuantity)
		default:
			return nil, err
		}
	}
	return &quote, nil
}
