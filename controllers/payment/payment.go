package paymentControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/config"
	"github.com/harrygithub11/manthmwear-sub000/models"
)

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

func gatewaySecret(db *gorm.DB, fallback config.RazorpayConfig) (string, error) {
	settings, err := models.LoadSettings(db)
	if err != nil {
		return "", err
	}
	secret := settings.RazorpayKeySecret
	if secret == "" {
		secret = fallback.KeySecret
	}
	if secret == "" {
		return "", errors.New("razorpay key secret not configured")
	}
	return secret, nil
}

// POST /api/payments/verify
// Called by the storefront after the checkout widget reports success.
func VerifyPaymentHandler(db *gorm.DB, fallback config.RazorpayConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Preload("User").
			Where("razorpay_order_id = ?", req.RazorpayOrderID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		// Re-delivery of a verified payment is a no-op.
		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusOK, gin.H{"message": "Payment already verified", "order_number": order.OrderNumber})
			return
		}

		secret, err := gatewaySecret(db, fallback)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}

		if !VerifyCheckoutSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
			log.Printf("❌ Payment signature mismatch for order %s", order.OrderNumber)
			db.Model(&order).Update("payment_status", models.PaymentStatusFailed)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment signature"})
			return
		}

		if err := db.Model(&order).Updates(map[string]interface{}{
			"payment_status":      models.PaymentStatusPaid,
			"status":              models.OrderStatusConfirmed,
			"razorpay_payment_id": req.RazorpayPaymentID,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}

		log.Printf("✅ Payment verified for order %s (%s)", order.OrderNumber, req.RazorpayPaymentID)
		c.JSON(http.StatusOK, gin.H{"message": "Payment verified", "order_number": order.OrderNumber})
	}
}

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// POST /api/payments/webhook
// Signature verification happens in middleware.RazorpayWebhookAuth.
func WebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload webhookPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}

		entity := payload.Payload.Payment.Entity
		if entity.OrderID == "" {
			c.JSON(http.StatusOK, gin.H{"message": "ignored"})
			return
		}

		var order models.Order
		if err := db.Where("razorpay_order_id = ?", entity.OrderID).First(&order).Error; err != nil {
			// Unknown gateway order: acknowledge so the gateway stops retrying.
			c.JSON(http.StatusOK, gin.H{"message": "order not found, ignored"})
			return
		}

		switch payload.Event {
		case "payment.captured":
			if order.PaymentStatus == models.PaymentStatusPaid {
				c.JSON(http.StatusOK, gin.H{"message": "already processed"})
				return
			}
			if err := db.Model(&order).Updates(map[string]interface{}{
				"payment_status":      models.PaymentStatusPaid,
				"status":              models.OrderStatusConfirmed,
				"razorpay_payment_id": entity.ID,
			}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
				return
			}
			log.Printf("✅ Webhook: payment captured for order %s", order.OrderNumber)

		case "payment.failed":
			if order.PaymentStatus != models.PaymentStatusPaid {
				db.Model(&order).Update("payment_status", models.PaymentStatusFailed)
				log.Printf("⚠️ Webhook: payment failed for order %s", order.OrderNumber)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
}
