package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/config"
	paymentcontroller "github.com/harrygithub11/manthmwear-sub000/controllers/payment"
	"github.com/harrygithub11/manthmwear-sub000/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	payments := r.Group("/api/payments")
	{
		// Checkout callback with the client-supplied signature
		payments.POST("/verify", paymentcontroller.VerifyPaymentHandler(db, cfg.Razorpay))

		// Server-to-server webhook, authenticated by signature middleware
		payments.POST("/webhook",
			middleware.RazorpayWebhookAuth(db, cfg.Razorpay),
			paymentcontroller.WebhookHandler(db),
		)
	}
}
