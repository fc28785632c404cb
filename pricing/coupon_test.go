package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

func validPercentCoupon() *models.Coupon {
	return &models.Coupon{
		Code:          "SAVE20",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 20,
		MaxDiscount:   8000,
		IsActive:      true,
	}
}

func TestEvaluateCouponPercentageWithCap(t *testing.T) {
	now := time.Now()

	// 20% of Rs 500 = Rs 100, capped at Rs 80
	discount, err := EvaluateCoupon(validPercentCoupon(), 50000, now)
	require.NoError(t, err)
	assert.EqualValues(t, 8000, discount)

	// under the cap the raw percentage applies
	discount, err = EvaluateCoupon(validPercentCoupon(), 30000, now)
	require.NoError(t, err)
	assert.EqualValues(t, 6000, discount)
}

func TestEvaluateCouponPercentageFloors(t *testing.T) {
	c := &models.Coupon{
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 15,
		IsActive:      true,
	}
	// 15% of 999 paise = 149.85 -> 149
	discount, err := EvaluateCoupon(c, 999, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 149, discount)
}

func TestEvaluateCouponFixedNeverExceedsSubtotal(t *testing.T) {
	c := &models.Coupon{
		DiscountType:  models.DiscountTypeFixed,
		DiscountValue: 10000,
		IsActive:      true,
	}
	discount, err := EvaluateCoupon(c, 4000, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 4000, discount)
}

func TestEvaluateCouponRejectsInactive(t *testing.T) {
	c := validPercentCoupon()
	c.IsActive = false
	_, err := EvaluateCoupon(c, 50000, time.Now())
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestEvaluateCouponRejectsExpired(t *testing.T) {
	c := validPercentCoupon()
	yesterday := time.Now().Add(-24 * time.Hour)
	c.ExpiryDate = &yesterday
	_, err := EvaluateCoupon(c, 50000, time.Now())
	assert.ErrorIs(t, err, ErrCouponExpired)
}

func TestEvaluateCouponRejectsExhausted(t *testing.T) {
	c := validPercentCoupon()
	c.UsageLimit = 100
	c.UsageCount = 100
	_, err := EvaluateCoupon(c, 50000, time.Now())
	assert.ErrorIs(t, err, ErrCouponExhausted)
}

func TestEvaluateCouponRejectsBelowMinimum(t *testing.T) {
	c := validPercentCoupon()
	c.MinOrderValue = 100000
	_, err := EvaluateCoupon(c, 99999, time.Now())
	assert.ErrorIs(t, err, ErrBelowMinOrder)

	// boundary: exactly the minimum qualifies
	_, err = EvaluateCoupon(c, 100000, time.Now())
	assert.NoError(t, err)
}

func TestEvaluateCouponInactiveReportedBeforeExpiry(t *testing.T) {
	c := validPercentCoupon()
	c.IsActive = false
	yesterday := time.Now().Add(-24 * time.Hour)
	c.ExpiryDate = &yesterday
	_, err := EvaluateCoupon(c, 50000, time.Now())
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestEvaluateCouponZeroUsageLimitMeansUnlimited(t *testing.T) {
	c := validPercentCoupon()
	c.UsageLimit = 0
	c.UsageCount = 100000
	_, err := EvaluateCoupon(c, 50000, time.Now())
	assert.NoError(t, err)
}
