package pricing

import (
	"errors"
	"math"
)

var (
	ErrUnknownTier     = errors.New("unknown pricing tier")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeXLarge Size = "xlarge"
)

type Material string

const (
	MaterialPLA   Material = "pla"
	MaterialABS   Material = "abs"
	MaterialPETG  Material = "petg"
	MaterialTPU   Material = "tpu"
	MaterialWood  Material = "wood"
	MaterialMetal Material = "metal"
	MaterialResin Material = "resin"
)

const (
	standardGenerationFee = 5.0
	reuseDiscount         = 0.7
	taxRate               = 0.08
	freeShippingThreshold = 50.0
	flatShipping          = 9.99
)

// basePrices maps size -> material -> base unit price in dollars.
var basePrices = map[Size]map[Material]float64{
	SizeSmall:  {MaterialPLA: 8, MaterialABS: 10, MaterialPETG: 12, MaterialTPU: 15, MaterialWood: 18, MaterialMetal: 25, MaterialResin: 20},
	SizeMedium: {MaterialPLA: 15, MaterialABS: 18, MaterialPETG: 22, MaterialTPU: 28, MaterialWood: 32, MaterialMetal: 45, MaterialResin: 35},
	SizeLarge:  {MaterialPLA: 25, MaterialABS: 30, MaterialPETG: 35, MaterialTPU: 45, MaterialWood: 50, MaterialMetal: 70, MaterialResin: 55},
	SizeXLarge: {MaterialPLA: 40, MaterialABS: 48, MaterialPETG: 55, MaterialTPU: 70, MaterialWood: 80, MaterialMetal: 110, MaterialResin: 85},
}

// Quote is the itemized price breakdown for one line item. All monetary
// fields are dollars rounded to 2 decimals; the struct is derived per
// request and never persisted.
type Quote struct {
	BasePrice       float64 `json:"basePrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	GenerationFee   float64 `json:"generationFee"`
	UnitPrice       float64 `json:"unitPrice"`
	Subtotal        float64 `json:"subtotal"`
	Tax             float64 `json:"tax"`
	Shipping        float64 `json:"shipping"`
	Total           float64 `json:"total"`
	Savings         float64 `json:"savings"`
}

// Calculate builds a quote for quantity units of a (size, material) tier.
// Reused models skip the generation fee and get a 30% discount on the base
// price. Unknown tiers are rejected rather than silently priced at a
// default.
func Calculate(size Size, material Material, quantity int, isReusedModel bool) (Quote, error) {
	if quantity < 1 {
		return Quote{}, ErrInvalidQuantity
	}

	materials, ok := basePrices[size]
	if !ok {
		return Quote{}, ErrUnknownTier
	}
	basePrice, ok := materials[material]
	if !ok {
		return Quote{}, ErrUnknownTier
	}

	generationFee := standardGenerationFee
	discountedPrice := basePrice
	if isReusedModel {
		generationFee = 0
		discountedPrice = basePrice * reuseDiscount
	}

	unitPrice := generationFee + discountedPrice
	subtotal := unitPrice * float64(quantity)
	tax := subtotal * taxRate
	shipping := flatShipping
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	total := subtotal + tax + shipping

	savings := 0.0
	if isReusedModel {
		// What one unit would have cost without reuse: full base price
		// plus the standard generation fee.
		savings = (basePrice - discountedPrice) + standardGenerationFee
	}

	return Quote{
		BasePrice:       round2(basePrice),
		DiscountedPrice: round2(discountedPrice),
		GenerationFee:   round2(generationFee),
		UnitPrice:       round2(unitPrice),
		Subtotal:        round2(subtotal),
		Tax:             round2(tax),
		Shipping:        round2(shipping),
		Total:           round2(total),
		Savings:         round2(savings),
	}, nil
}

// Sizes lists the supported size tiers in ascending order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeXLarge}
}

// Materials lists the supported materials.
func Materials() []Material {
	return []Material{MaterialPLA, MaterialABS, MaterialPETG, MaterialTPU, MaterialWood, MaterialMetal, MaterialResin}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
