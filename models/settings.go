package models

import (
	"time"

	"gorm.io/gorm"
)

// SiteSettings is a near-singleton row holding everything the store operator
// can tune from the admin panel. Money fields are paise; TaxRateBps is the
// tax rate in basis points (1825 = 18.25%).
type SiteSettings struct {
	ID                    uint   `gorm:"primaryKey" json:"id"`
	StoreName             string `gorm:"default:'Manthm Wear'" json:"store_name"`
	SupportEmail          string `json:"support_email"`
	AdminAlertEmail       string `json:"admin_alert_email"`
	ShippingFee           int64  `gorm:"default:5000" json:"shipping_fee"`
	FreeShippingThreshold int64  `gorm:"default:99900" json:"free_shipping_threshold"`
	TaxRateBps            int64  `json:"tax_rate_bps"`
	PrepaidDiscount       int64  `json:"prepaid_discount"`
	CODEnabled            bool   `gorm:"default:true" json:"cod_enabled"`

	RazorpayKeyID         string `json:"razorpay_key_id"`
	RazorpayKeySecret     string `json:"razorpay_key_secret"`
	RazorpayWebhookSecret string `json:"razorpay_webhook_secret"`
	RapidshypToken        string `json:"rapidshyp_token"`

	MaintenanceMode bool   `json:"maintenance_mode"`
	Announcement    string `json:"announcement"`
	SEOTitle        string `json:"seo_title"`
	SEODescription  string `json:"seo_description"`

	UpdatedAt time.Time `json:"updated_at"`
}

// PublicSettings is the storefront view of the settings row: everything the
// checkout page needs, none of the secrets.
type PublicSettings struct {
	StoreName             string `json:"store_name"`
	SupportEmail          string `json:"support_email"`
	ShippingFee           int64  `json:"shipping_fee"`
	FreeShippingThreshold int64  `json:"free_shipping_threshold"`
	TaxRateBps            int64  `json:"tax_rate_bps"`
	PrepaidDiscount       int64  `json:"prepaid_discount"`
	CODEnabled            bool   `json:"cod_enabled"`
	RazorpayKeyID         string `json:"razorpay_key_id"`
	MaintenanceMode       bool   `json:"maintenance_mode"`
	Announcement          string `json:"announcement"`
	SEOTitle              string `json:"seo_title"`
	SEODescription        string `json:"seo_description"`
}

func (s *SiteSettings) Public() PublicSettings {
	return PublicSettings{
		StoreName:             s.StoreName,
		SupportEmail:          s.SupportEmail,
		ShippingFee:           s.ShippingFee,
		FreeShippingThreshold: s.FreeShippingThreshold,
		TaxRateBps:            s.TaxRateBps,
		PrepaidDiscount:       s.PrepaidDiscount,
		CODEnabled:            s.CODEnabled,
		RazorpayKeyID:         s.RazorpayKeyID,
		MaintenanceMode:       s.MaintenanceMode,
		Announcement:          s.Announcement,
		SEOTitle:              s.SEOTitle,
		SEODescription:        s.SEODescription,
	}
}

// LoadSettings returns the settings row, creating it with defaults on first boot.
func LoadSettings(db *gorm.DB) (*SiteSettings, error) {
	var settings SiteSettings
	if err := db.First(&settings).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if err := db.Create(&settings).Error; err != nil {
			return nil, err
		}
	}
	return &settings, nil
}
