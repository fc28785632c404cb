package couponcontroller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
	"github.com/harrygithub11/manthmwear-sub000/pricing"
)

type validateCouponRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"required,min=1"`
	Email    string `json:"email"`
}

// POST /api/coupons/validate
// Returns the discount the coupon would grant on the given subtotal.
func ValidateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		code := strings.ToUpper(strings.TrimSpace(req.Code))

		var coupon models.Coupon
		if err := db.Where("code = ?", code).First(&coupon).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": pricing.ErrCouponNotFound.Error()})
			return
		}

		discount, err := pricing.EvaluateCoupon(&coupon, req.Subtotal, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": err.Error()})
			return
		}

		// One-time coupons are checked against past usage when an email is supplied.
		if coupon.OneTimePerUser && req.Email != "" {
			var user models.User
			if err := db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(req.Email))).
				First(&user).Error; err == nil {
				var used int64
				db.Model(&models.CouponUsage{}).
					Where("coupon_id = ? AND user_id = ?", coupon.ID, user.ID).
					Count(&used)
				if used > 0 {
					c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": pricing.ErrCouponAlreadyUsed.Error()})
					return
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":         true,
			"code":          coupon.Code,
			"discount_type": coupon.DiscountType,
			"discount":      discount,
		})
	}
}
