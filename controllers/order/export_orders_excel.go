package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// GET /api/admin/orders/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderNumber", "Date", "Customer", "Email", "Phone",
			"Status", "PaymentStatus", "PaymentMethod", "CouponCode",
			"Subtotal", "Shipping", "Tax", "Discount", "Total",
			"Items", "City", "State", "Pincode",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows; money exported in rupees for the operator's spreadsheet
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.User.Name)
			row.AddCell().SetValue(o.User.Email)
			row.AddCell().SetValue(o.User.Phone)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.CouponCode)
			row.AddCell().SetValue(float64(o.Subtotal) / 100)
			row.AddCell().SetValue(float64(o.ShippingFee) / 100)
			row.AddCell().SetValue(float64(o.Tax) / 100)
			row.AddCell().SetValue(float64(o.Discount) / 100)
			row.AddCell().SetValue(float64(o.Total) / 100)

			var itemSummaries []string
			for _, item := range o.Items {
				itemSummaries = append(itemSummaries, fmt.Sprintf("%s %s/%s x%d",
					item.ProductName, item.Color, item.Size, item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(itemSummaries, "; "))

			row.AddCell().SetValue(o.ShippingAddress.City)
			row.AddCell().SetValue(o.ShippingAddress.State)
			row.AddCell().SetValue(o.ShippingAddress.PostalCode)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
