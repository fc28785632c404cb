package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
	"github.com/harrygithub11/manthmwear-sub000/pricing"
)

type QuoteItem struct {
	VariantID uint `json:"variant_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type QuoteRequest struct {
	Items         []QuoteItem `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string      `json:"payment_method" binding:"omitempty,oneof=online cod"`
	CouponCode    string      `json:"coupon_code"`
	Email         string      `json:"email" binding:"omitempty,email"`
}

// POST /api/cart/quote
// Prices a cart through the same path as checkout, so the cart page, the
// checkout page and the final order can never disagree on the numbers.
func QuoteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		settings, err := models.LoadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
			return
		}

		guestItems := make([]GuestOrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			guestItems = append(guestItems, GuestOrderItem{VariantID: it.VariantID, Quantity: it.Quantity})
		}
		lines, _, err := buildOrderItems(db, guestItems)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		subtotal := pricing.Subtotal(lines)

		// A bad coupon degrades the quote instead of failing it: the cart
		// still renders, with the rejection reason alongside.
		var couponDiscount int64
		var couponMessage string
		if req.CouponCode != "" {
			couponDiscount, couponMessage = quoteCoupon(db, req.CouponCode, req.Email, subtotal)
		}

		prepaid := req.PaymentMethod == models.PaymentMethodOnline
		breakdown := pricing.Compute(lines, pricingParams(settings), prepaid, couponDiscount)

		resp := gin.H{"quote": breakdown}
		if couponMessage != "" {
			resp["coupon_error"] = couponMessage
		}
		c.JSON(http.StatusOK, resp)
	}
}

// quoteCoupon is the read-only version of redeemCoupon: no locks, no writes.
func quoteCoupon(db *gorm.DB, code, userEmail string, subtotal int64) (int64, string) {
	var coupon models.Coupon
	err := db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pricing.ErrCouponNotFound.Error()
		}
		return 0, "failed to look up coupon"
	}

	discount, err := pricing.EvaluateCoupon(&coupon, subtotal, time.Now())
	if err != nil {
		return 0, err.Error()
	}

	if coupon.OneTimePerUser && userEmail != "" {
		var user models.User
		if db.Where("email = ?", strings.ToLower(userEmail)).First(&user).Error == nil {
			var used int64
			db.Model(&models.CouponUsage{}).
				Where("coupon_id = ? AND user_id = ?", coupon.ID, user.ID).
				Count(&used)
			if used > 0 {
				return 0, pricing.ErrCouponAlreadyUsed.Error()
			}
		}
	}

	return discount, ""
}
