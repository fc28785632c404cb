package models

import (
	"time"

	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

// Coupon money fields (DiscountValue for FIXED, MinOrderValue, MaxDiscount)
// are in paise. For PERCENTAGE coupons DiscountValue is a whole percent.
// MaxDiscount 0 means uncapped; UsageLimit 0 means unlimited.
type Coupon struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Code           string         `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType   DiscountType   `gorm:"type:VARCHAR(20);not null" json:"discount_type"`
	DiscountValue  int64          `gorm:"not null" json:"discount_value"`
	MinOrderValue  int64          `json:"min_order_value"`
	MaxDiscount    int64          `json:"max_discount"`
	UsageLimit     int            `json:"usage_limit"`
	UsageCount     int            `json:"usage_count"`
	OneTimePerUser bool           `json:"one_time_per_user"`
	ExpiryDate     *time.Time     `json:"expiry_date"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	Usages         []CouponUsage  `gorm:"foreignKey:CouponID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// CouponUsage is written once per redemption, inside the order transaction,
// and backs both the global counter and the one-time-per-user rule.
type CouponUsage struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CouponID uint      `gorm:"index" json:"coupon_id"`
	UserID   string    `gorm:"index" json:"user_id"`
	OrderID  uint      `json:"order_id"`
	Discount int64     `json:"discount"`
	UsedAt   time.Time `json:"used_at"`
}
