package models

import (
	"strings"

	"github.com/localaddons/addons/internal/common"
)

// PriceTier selects which of the two listed prices applies to a user.
// The original front-end computed the cart total from the discounted price in
// one place and switched on the user's email domain in another; here the rule
// lives in exactly one spot and every total goes through it.
type PriceTier int

const (
	// TierStandard pays the original list price.
	TierStandard PriceTier = iota
	// TierInstitutional pays the discounted price, refundable for partner
	// institution accounts.
	TierInstitutional
)

// TierForEmail maps an account email to its price tier. Accounts under the
// partner institution domain get the institutional tier.
func TierForEmail(email string) PriceTier {
	addr := strings.ToLower(strings.TrimSpace(email))
	if strings.HasSuffix(addr, common.CimageEmailDomain) {
		return TierInstitutional
	}
	return TierStandard
}

// TierForUser is a nil-safe wrapper over TierForEmail.
func TierForUser(u *User) PriceTier {
	if u == nil {
		return TierStandard
	}
	return TierForEmail(u.Email)
}

// EffectivePrice returns the price a user on the given tier pays for the
// course. When no original price is listed the discounted price is the only
// price there is.
func (c *Course) EffectivePrice(tier PriceTier) float64 {
	if tier == TierStandard && c.OriginalPrice != nil {
		return *c.OriginalPrice
	}
	return c.DiscountedPrice
}

// TotalPrice sums item price times quantity over the cart using the single
// canonical pricing rule. Returns 0 for a nil or empty cart.
func (c *Cart) TotalPrice(tier PriceTier) float64 {
	if c == nil {
		return 0
	}
	var total float64
	for _, item := range c.Items {
		total += item.Product.EffectivePrice(tier) * float64(item.Quantity)
	}
	return total
}
