package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/auth"
	"github.com/harrygithub11/manthmwear-sub000/config"
	"github.com/harrygithub11/manthmwear-sub000/email"
	"github.com/harrygithub11/manthmwear-sub000/models"
	"github.com/harrygithub11/manthmwear-sub000/routes"
)

func main() {
	log.Println("✅ Starting Manthm Wear API...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.Order{},
		&models.OrderItem{},
		&models.Shipment{},
		&models.SiteSettings{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Ensure the settings row exists before the first request
	if _, err := models.LoadSettings(db); err != nil {
		log.Fatalf("❌ Settings bootstrap failed: %v", err)
	}

	// Seed the first back-office account on an empty database
	if err := auth.SeedAdmin(db, cfg.Admin); err != nil {
		log.Fatalf("❌ Admin seed failed: %v", err)
	}

	mailer := email.New(cfg.SMTP)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Razorpay-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, cfg, mailer)

	// Start server
	log.Printf("🚀 Server running on port %d...", cfg.Server.Port)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}
