package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// GET /api/admin/products/export-excel
// One row per variant so the sheet round-trips through the importer.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Variants").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"Slug", "Name", "Category", "Description", "Active", "Images",
			"Size", "Color", "Pack", "Price", "Stock", "BaseStock", "SharedStock",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows; price exported in rupees
		for _, p := range products {
			for _, v := range p.Variants {
				row := sheet.AddRow()

				row.AddCell().SetValue(p.Slug)
				row.AddCell().SetValue(p.Name)
				row.AddCell().SetValue(p.Category)
				row.AddCell().SetValue(p.Description)
				row.AddCell().SetValue(strconv.FormatBool(p.IsActive))
				row.AddCell().SetValue(strings.Join(p.Images, ","))

				row.AddCell().SetValue(v.Size)
				row.AddCell().SetValue(v.Color)
				row.AddCell().SetValue(v.Pack)
				row.AddCell().SetValue(float64(v.Price) / 100)
				row.AddCell().SetValue(v.Stock)
				row.AddCell().SetValue(v.BaseStock)
				row.AddCell().SetValue(strconv.FormatBool(v.UseSharedStock))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
