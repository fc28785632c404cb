package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/config"
	couponcontroller "github.com/harrygithub11/manthmwear-sub000/controllers/coupon"
	orderControllers "github.com/harrygithub11/manthmwear-sub000/controllers/order"
	productcontroller "github.com/harrygithub11/manthmwear-sub000/controllers/product"
	settingscontroller "github.com/harrygithub11/manthmwear-sub000/controllers/settings"
	"github.com/harrygithub11/manthmwear-sub000/email"
	"github.com/harrygithub11/manthmwear-sub000/middleware"
)

func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailer *email.Mailer) {
	api := r.Group("/api")
	api.Use(middleware.Maintenance(db))
	{
		// Catalog
		api.GET("/products", productcontroller.GetProducts(db))
		api.GET("/products/:slug", productcontroller.GetProductBySlug(db))

		// Cart pricing preview
		api.POST("/cart/quote", orderControllers.QuoteHandler(db))

		// Coupons
		api.POST("/coupons/validate", couponcontroller.ValidateCouponHandler(db))

		// Guest checkout and order lookup
		api.POST("/orders/guest", orderControllers.PlaceGuestOrderHandler(db, cfg, mailer))
		api.GET("/orders/:orderNumber", orderControllers.GetOrderByNumberHandler(db))

		// Storefront configuration
		api.GET("/site-settings", settingscontroller.GetPublicSettingsHandler(db))
	}
}
