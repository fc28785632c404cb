package settingscontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// GET /api/site-settings
// Public view with gateway secrets stripped.
func GetPublicSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := models.LoadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		c.JSON(http.StatusOK, settings.Public())
	}
}

// GET /api/admin/settings
func GetSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := models.LoadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

type updateSettingsInput struct {
	StoreName             *string `json:"store_name"`
	SupportEmail          *string `json:"support_email"`
	AdminAlertEmail       *string `json:"admin_alert_email"`
	ShippingFee           *int64  `json:"shipping_fee" binding:"omitempty,min=0"`
	FreeShippingThreshold *int64  `json:"free_shipping_threshold" binding:"omitempty,min=0"`
	TaxRateBps            *int64  `json:"tax_rate_bps" binding:"omitempty,min=0,max=10000"`
	PrepaidDiscount       *int64  `json:"prepaid_discount" binding:"omitempty,min=0"`
	CODEnabled            *bool   `json:"cod_enabled"`
	RazorpayKeyID         *string `json:"razorpay_key_id"`
	RazorpayKeySecret     *string `json:"razorpay_key_secret"`
	RazorpayWebhookSecret *string `json:"razorpay_webhook_secret"`
	RapidshypToken        *string `json:"rapidshyp_token"`
	MaintenanceMode       *bool   `json:"maintenance_mode"`
	Announcement          *string `json:"announcement"`
	SEOTitle              *string `json:"seo_title"`
	SEODescription        *string `json:"seo_description"`
}

// PUT /api/admin/settings
// Only the fields present in the body are changed.
func UpdateSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := models.LoadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}

		var input updateSettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if input.StoreName != nil {
			settings.StoreName = *input.StoreName
		}
		if input.SupportEmail != nil {
			settings.SupportEmail = *input.SupportEmail
		}
		if input.AdminAlertEmail != nil {
			settings.AdminAlertEmail = *input.AdminAlertEmail
		}
		if input.ShippingFee != nil {
			settings.ShippingFee = *input.ShippingFee
		}
		if input.FreeShippingThreshold != nil {
			settings.FreeShippingThreshold = *input.FreeShippingThreshold
		}
		if input.TaxRateBps != nil {
			settings.TaxRateBps = *input.TaxRateBps
		}
		if input.PrepaidDiscount != nil {
			settings.PrepaidDiscount = *input.PrepaidDiscount
		}
		if input.CODEnabled != nil {
			settings.CODEnabled = *input.CODEnabled
		}
		if input.RazorpayKeyID != nil {
			settings.RazorpayKeyID = *input.RazorpayKeyID
		}
		if input.RazorpayKeySecret != nil {
			settings.RazorpayKeySecret = *input.RazorpayKeySecret
		}
		if input.RazorpayWebhookSecret != nil {
			settings.RazorpayWebhookSecret = *input.RazorpayWebhookSecret
		}
		if input.RapidshypToken != nil {
			settings.RapidshypToken = *input.RapidshypToken
		}
		if input.MaintenanceMode != nil {
			settings.MaintenanceMode = *input.MaintenanceMode
		}
		if input.Announcement != nil {
			settings.Announcement = *input.Announcement
		}
		if input.SEOTitle != nil {
			settings.SEOTitle = *input.SEOTitle
		}
		if input.SEODescription != nil {
			settings.SEODescription = *input.SEODescription
		}

		if err := db.Save(settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}

		log.Printf("⚙️ Site settings updated by %s", c.GetString("admin_email"))
		c.JSON(http.StatusOK, settings)
	}
}
