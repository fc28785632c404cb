package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/config"
	"github.com/harrygithub11/manthmwear-sub000/email"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// payment, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailer *email.Mailer) {
	// Public storefront routes (maintenance-gated)
	SetupStorefrontRoutes(r, db, cfg, mailer)

	// Razorpay callbacks and webhooks
	SetupPaymentRoutes(r, db, cfg)

	// Back-office routes (JWT-protected)
	SetupAdminRoutes(r, db, cfg)
}
