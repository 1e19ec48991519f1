package quote

import (
	"sort"

	"plate-quote/core/pricing"
	"plate-quote/internal/errors"
)

// DiscountMultiplier walks the quantity-discount tiers and returns the
// multiplier of the highest tier whose MinQty the quantity meets
// (inclusive). Quantities below the lowest tier get the lowest tier's
// multiplier; quantities above the highest tier get the highest tier's,
// with no extrapolation. The input slice is not assumed sorted and is
// never mutated. An empty tier list is a provisioning fault.
func DiscountMultiplier(tiers []pricing.DiscountTier, quantity int) (float64, error) {
	if len(tiers) == 0 {
		return 0, errors.Config("quantity discount tiers are empty")
	}

	sorted := append([]pricing.DiscountTier(nil), tiers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinQty < sorted[j].MinQty
	})

	multiplier := sorted[0].Multiplier
	for _, tier := range sorted {
		if quantity >= tier.MinQty {
			multiplier = tier.Multiplier
		} else {
			break
		}
	}
	return multiplier, nil
}
