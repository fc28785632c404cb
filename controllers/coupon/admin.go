package couponcontroller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

type couponInput struct {
	Code           string     `json:"code" binding:"required"`
	DiscountType   string     `json:"discount_type" binding:"required,oneof=PERCENTAGE FIXED"`
	DiscountValue  int64      `json:"discount_value" binding:"required,min=1"`
	MinOrderValue  int64      `json:"min_order_value" binding:"min=0"`
	MaxDiscount    int64      `json:"max_discount" binding:"min=0"`
	UsageLimit     int        `json:"usage_limit" binding:"min=0"`
	OneTimePerUser bool       `json:"one_time_per_user"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	IsActive       *bool      `json:"is_active"`
}

// GET /api/admin/coupons
func GetAllCouponsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// POST /api/admin/coupons
func CreateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input couponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if input.DiscountType == "PERCENTAGE" && input.DiscountValue > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Percentage discount cannot exceed 100"})
			return
		}

		active := true
		if input.IsActive != nil {
			active = *input.IsActive
		}

		coupon := models.Coupon{
			Code:           strings.ToUpper(strings.TrimSpace(input.Code)),
			DiscountType:   models.DiscountType(input.DiscountType),
			DiscountValue:  input.DiscountValue,
			MinOrderValue:  input.MinOrderValue,
			MaxDiscount:    input.MaxDiscount,
			UsageLimit:     input.UsageLimit,
			OneTimePerUser: input.OneTimePerUser,
			ExpiryDate:     input.ExpiryDate,
			IsActive:       active,
		}

		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
			return
		}

		log.Printf("✅ Coupon created: %s", coupon.Code)
		c.JSON(http.StatusCreated, coupon)
	}
}

// PUT /api/admin/coupons/:id
func UpdateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon models.Coupon
		if err := db.First(&coupon, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var input struct {
			DiscountType   *string    `json:"discount_type" binding:"omitempty,oneof=PERCENTAGE FIXED"`
			DiscountValue  *int64     `json:"discount_value" binding:"omitempty,min=1"`
			MinOrderValue  *int64     `json:"min_order_value"`
			MaxDiscount    *int64     `json:"max_discount"`
			UsageLimit     *int       `json:"usage_limit"`
			OneTimePerUser *bool      `json:"one_time_per_user"`
			ExpiryDate     *time.Time `json:"expiry_date"`
			IsActive       *bool      `json:"is_active"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if input.DiscountType != nil {
			coupon.DiscountType = models.DiscountType(*input.DiscountType)
		}
		if input.DiscountValue != nil {
			coupon.DiscountValue = *input.DiscountValue
		}
		if input.MinOrderValue != nil {
			coupon.MinOrderValue = *input.MinOrderValue
		}
		if input.MaxDiscount != nil {
			coupon.MaxDiscount = *input.MaxDiscount
		}
		if input.UsageLimit != nil {
			coupon.UsageLimit = *input.UsageLimit
		}
		if input.OneTimePerUser != nil {
			coupon.OneTimePerUser = *input.OneTimePerUser
		}
		if input.ExpiryDate != nil {
			coupon.ExpiryDate = input.ExpiryDate
		}
		if input.IsActive != nil {
			coupon.IsActive = *input.IsActive
		}

		if coupon.DiscountType == "PERCENTAGE" && coupon.DiscountValue > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Percentage discount cannot exceed 100"})
			return
		}

		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /api/admin/coupons/:id
func DeleteCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon models.Coupon
		if err := db.First(&coupon, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		if err := db.Delete(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		log.Printf("🗑️ Coupon deleted: %s", coupon.Code)
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}
