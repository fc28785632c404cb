package shippingcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/config"
	"github.com/harrygithub11/manthmwear-sub000/models"
)

func clientFromSettings(db *gorm.DB, cfg config.RapidshypConfig) *RapidshypClient {
	token := cfg.Token
	settings, err := models.LoadSettings(db)
	if err == nil && settings.RapidshypToken != "" {
		token = settings.RapidshypToken
	}
	return NewRapidshypClient(cfg.BaseURL, token)
}

// POST /api/admin/orders/:id/shipment
// Books a RapidShyp consignment for a confirmed order and marks it shipped.
func CreateShipmentHandler(db *gorm.DB, cfg config.RapidshypConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items").Preload("User").Preload("Shipment").
			First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if order.Shipment != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Shipment already exists for this order"})
			return
		}
		if order.Status != models.OrderStatusConfirmed && order.Status != models.OrderStatusProcessing {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order must be confirmed or processing to ship"})
			return
		}

		result, err := clientFromSettings(db, cfg).CreateShipment(&order)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create shipment: " + err.Error()})
			return
		}

		shipment := models.Shipment{
			OrderID:     order.ID,
			AWB:         result.AWB,
			Courier:     result.Courier,
			LabelURL:    result.LabelURL,
			ManifestURL: result.ManifestURL,
			Status:      result.Status,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&shipment).Error; err != nil {
				return err
			}
			return tx.Model(&order).Update("status", models.OrderStatusShipped).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save shipment"})
			return
		}

		log.Printf("📦 Shipment created for order %s: AWB %s via %s", order.OrderNumber, shipment.AWB, shipment.Courier)
		c.JSON(http.StatusCreated, shipment)
	}
}

// GET /api/admin/orders/:id/shipment
func GetShipmentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		var shipment models.Shipment
		if err := db.Where("order_id = ?", order.ID).First(&shipment).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No shipment for this order"})
			return
		}
		c.JSON(http.StatusOK, shipment)
	}
}
