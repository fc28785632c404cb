package pricing

import (
	"errors"
	"time"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// Rejection reasons are shown to the shopper as-is.
var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponInactive    = errors.New("coupon is not active")
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
	ErrBelowMinOrder     = errors.New("order value below coupon minimum")
	ErrCouponAlreadyUsed = errors.New("coupon already used on a previous order")
)

// EvaluateCoupon runs the validation chain and returns the discount in paise.
// The checks run in a fixed order so the shopper always sees the first
// applicable rejection: active, expiry, usage limit, minimum order value.
// The one-time-per-user rule needs a usage lookup and is checked by callers.
func EvaluateCoupon(c *models.Coupon, subtotal int64, now time.Time) (int64, error) {
	if !c.IsActive {
		return 0, ErrCouponInactive
	}
	if c.ExpiryDate != nil && now.After(*c.ExpiryDate) {
		return 0, ErrCouponExpired
	}
	if c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit {
		return 0, ErrCouponExhausted
	}
	if subtotal < c.MinOrderValue {
		return 0, ErrBelowMinOrder
	}

	var discount int64
	switch c.DiscountType {
	case models.DiscountTypePercentage:
		// integer division floors, matching the advertised discount
		discount = subtotal * c.DiscountValue / 100
		if c.MaxDiscount > 0 && discount > c.MaxDiscount {
			discount = c.MaxDiscount
		}
	case models.DiscountTypeFixed:
		discount = c.DiscountValue
	default:
		return 0, ErrCouponNotFound
	}

	if discount > subtotal {
		discount = subtotal
	}
	return discount, nil
}
