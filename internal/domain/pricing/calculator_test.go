//go:build unit

package pricing_test

import (
	"testing"

	"droidforge/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Run("medium pla x2 standard", func(t *testing.T) {
		got, err := pricing.Calculate(pricing.SizeMedium, pricing.MaterialPLA, 2, false)
		require.NoError(t, err)

		want := pricing.Quote{
			BasePrice:       15,
			DiscountedPrice: 15,
			GenerationFee:   5,
			UnitPrice:       20,
			Subtotal:        40,
			Tax:             3.2,
			Shipping:        9.99,
			Total:           53.19,
			Savings:         0,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("medium pla x2 reused", func(t *testing.T) {
		got, err := pricing.Calculate(pricing.SizeMedium, pricing.MaterialPLA, 2, true)
		require.NoError(t, err)

		want := pricing.Quote{
			BasePrice:       15,
			DiscountedPrice: 10.5,
			GenerationFee:   0,
			UnitPrice:       10.5,
			Subtotal:        21,
			Tax:             1.68,
			Shipping:        9.99,
			Total:           32.67,
			Savings:         9.5,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("totals are consistent for all tiers", func(t *testing.T) {
		for _, size := range pricing.Sizes() {
			for _, material := range pricing.Materials() {
				for _, reused := range []bool{false, true} {
					q, err := pricing.Calculate(size, material, 3, reused)
					require.NoError(t, err)

					assert.InDelta(t, q.Subtotal+q.Tax+q.Shipping, q.Total, 0.005,
						"total != subtotal+tax+shipping for %s/%s reused=%v", size, material, reused)
					assert.InDelta(t, q.Subtotal*0.08, q.Tax, 0.005,
						"tax != 8%% of subtotal for %s/%s", size, material)

					if reused {
						assert.Zero(t, q.GenerationFee)
						assert.InDelta(t, q.BasePrice*0.7, q.DiscountedPrice, 0.005)
					} else {
						assert.Equal(t, 5.0, q.GenerationFee)
						assert.Equal(t, q.BasePrice, q.DiscountedPrice)
					}

					if q.Subtotal > 50 {
						assert.Zero(t, q.Shipping)
					} else {
						assert.Equal(t, 9.99, q.Shipping)
					}
				}
			}
		}
	})

	t.Run("free shipping over 50", func(t *testing.T) {
		q, err := pricing.Calculate(pricing.SizeLarge, pricing.MaterialMetal, 1, false)
		require.NoError(t, err)
		assert.Equal(t, 75.0, q.Subtotal)
		assert.Zero(t, q.Shipping)
	})

	t.Run("idempotent", func(t *testing.T) {
		a, err := pricing.Calculate(pricing.SizeSmall, pricing.MaterialResin, 4, true)
		require.NoError(t, err)
		b, err := pricing.Calculate(pricing.SizeSmall, pricing.MaterialResin, 4, true)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("unknown size rejected", func(t *testing.T) {
		_, err := pricing.Calculate("gigantic", pricing.MaterialPLA, 1, false)
		assert.ErrorIs(t, err, pricing.ErrUnknownTier)
	})

	t.Run("unknown material rejected", func(t *testing.T) {
		_, err := pricing.Calculate(pricing.SizeSmall, "adamantium", 1, false)
		assert.ErrorIs(t, err, pricing.ErrUnknownTier)
	})

	t.Run("quantity below 1 rejected", func(t *testing.T) {
		_, err := pricing.Calculate(pricing.SizeSmall, pricing.MaterialPLA, 0, false)
		assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)
	})
}
