package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/auth"
	"github.com/harrygithub11/manthmwear-sub000/config"
	couponcontroller "github.com/harrygithub11/manthmwear-sub000/controllers/coupon"
	orderControllers "github.com/harrygithub11/manthmwear-sub000/controllers/order"
	productcontroller "github.com/harrygithub11/manthmwear-sub000/controllers/product"
	settingscontroller "github.com/harrygithub11/manthmwear-sub000/controllers/settings"
	shippingcontroller "github.com/harrygithub11/manthmwear-sub000/controllers/shipping"
	"github.com/harrygithub11/manthmwear-sub000/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Login is the only unauthenticated admin endpoint
	r.POST("/api/admin/login", auth.AdminLoginHandler(db, cfg.JWT))

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(cfg.JWT.Secret))
	{
		// Products
		admin.GET("/products", productcontroller.GetAllProductsAdmin(db))
		admin.POST("/products", productcontroller.CreateProduct(db))
		admin.PUT("/products/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		admin.GET("/products/export-excel", productcontroller.ExportProductsToExcel(db))
		admin.POST("/products/import-excel", productcontroller.ImportProductsFromExcel(db))

		// Coupons
		admin.GET("/coupons", couponcontroller.GetAllCouponsHandler(db))
		admin.POST("/coupons", couponcontroller.CreateCouponHandler(db))
		admin.PUT("/coupons/:id", couponcontroller.UpdateCouponHandler(db))
		admin.DELETE("/coupons/:id", couponcontroller.DeleteCouponHandler(db))

		// Orders
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		admin.GET("/orders/export-excel", orderControllers.ExportOrdersToExcel(db))
		admin.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
		admin.GET("/orders/:id", orderControllers.GetOrderByIDHandler(db))
		admin.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		admin.PUT("/orders/:id/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
		admin.DELETE("/orders/:id", orderControllers.DeleteOrderHandler(db))

		// Shipments
		admin.POST("/orders/:id/shipment", shippingcontroller.CreateShipmentHandler(db, cfg.Rapidshyp))
		admin.GET("/orders/:id/shipment", shippingcontroller.GetShipmentHandler(db))

		// Dashboard
		admin.GET("/stats", orderControllers.GetDashboardStatsHandler(db))

		// Settings
		admin.GET("/settings", settingscontroller.GetSettingsHandler(db))
		admin.PUT("/settings", settingscontroller.UpdateSettingsHandler(db))
	}
}
