package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// Maintenance returns 503 on storefront routes while the maintenance flag is
// set in site settings. Admin routes bypass this so the flag can be cleared.
func Maintenance(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := models.LoadSettings(db)
		if err == nil && settings.MaintenanceMode {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":        "store is under maintenance",
				"announcement": settings.Announcement,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
