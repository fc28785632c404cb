package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/config"
	"github.com/harrygithub11/manthmwear-sub000/models"
)

// RazorpayWebhookAuth verifies the X-Razorpay-Signature header (HMAC-SHA256
// of the raw body) before the webhook handler runs. The body is restored so
// the handler can bind it again.
func RazorpayWebhookAuth(db *gorm.DB, fallback config.RazorpayConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := models.LoadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
			c.Abort()
			return
		}
		secret := settings.RazorpayWebhookSecret
		if secret == "" {
			secret = fallback.WebhookSecret
		}
		if secret == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook secret not configured"})
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Razorpay-Signature")
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing webhook signature"})
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(expected), []byte(provided)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
