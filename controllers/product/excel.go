package productcontroller

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// rupeesToPaise rounds so spreadsheet rupee values like 19.99 survive the
// float cell representation instead of truncating to 1998.
func rupeesToPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}

func validateSharedStockPools(variants []models.ProductVariant) error {
	pools := map[string]int{}
	for _, v := range variants {
		if !v.UseSharedStock {
			continue
		}
		key := v.Color + "/" + v.Size
		if existing, ok := pools[key]; ok && existing != v.BaseStock {
			return fmt.Errorf("shared-stock variants for %s must share one base_stock", key)
		}
		pools[key] = v.BaseStock
	}
	return nil
}

// POST /api/admin/products/import-excel
// Expects the same layout the exporter produces: one row per variant,
// consecutive rows with the same slug collapse into one product.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to open uploaded file"})
			return
		}
		defer f.Close()

		xlFile, err := xlsx.OpenReaderAt(f, fileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file has no sheets"})
			return
		}

		sheet := xlFile.Sheets[0]
		created := 0
		updated := 0
		var rowErrors []string

		// slug -> product accumulated across rows
		grouped := make(map[string]*models.Product)
		var order []string

		for i, row := range sheet.Rows {
			if i == 0 {
				continue // header
			}
			if len(row.Cells) < 13 {
				continue
			}

			slugVal := strings.TrimSpace(row.Cells[0].String())
			name := strings.TrimSpace(row.Cells[1].String())
			if slugVal == "" && name == "" {
				continue
			}

			price, err := row.Cells[9].Float()
			if err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: invalid price", i+1))
				continue
			}
			stock, _ := row.Cells[10].Int()
			baseStock, _ := row.Cells[11].Int()
			pack, err := row.Cells[8].Int()
			if err != nil || pack < 1 {
				pack = 1
			}

			active := strings.EqualFold(strings.TrimSpace(row.Cells[4].String()), "true") ||
				row.Cells[4].String() == "1"
			shared := strings.EqualFold(strings.TrimSpace(row.Cells[12].String()), "true") ||
				row.Cells[12].String() == "1"

			variant := models.ProductVariant{
				Size:           strings.TrimSpace(row.Cells[6].String()),
				Color:          strings.TrimSpace(row.Cells[7].String()),
				Pack:           pack,
				Price:          rupeesToPaise(price),
				Stock:          stock,
				BaseStock:      baseStock,
				UseSharedStock: shared,
			}

			p, ok := grouped[slugVal]
			if !ok {
				var images []string
				if raw := strings.TrimSpace(row.Cells[5].String()); raw != "" {
					for _, img := range strings.Split(raw, ",") {
						if img = strings.TrimSpace(img); img != "" {
							images = append(images, img)
						}
					}
				}
				p = &models.Product{
					Slug:        slugVal,
					Name:        name,
					Category:    strings.TrimSpace(row.Cells[2].String()),
					Description: strings.TrimSpace(row.Cells[3].String()),
					IsActive:    active,
					Images:      images,
				}
				grouped[slugVal] = p
				order = append(order, slugVal)
			}
			p.Variants = append(p.Variants, variant)
		}

		for _, slugVal := range order {
			p := grouped[slugVal]
			if err := validateSharedStockPools(p.Variants); err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("%s: %v", slugVal, err))
				continue
			}

			var existing models.Product
			err := db.Where("slug = ?", slugVal).First(&existing).Error
			switch {
			case err == nil:
				txErr := db.Transaction(func(tx *gorm.DB) error {
					existing.Name = p.Name
					existing.Category = p.Category
					existing.Description = p.Description
					existing.IsActive = p.IsActive
					existing.Images = p.Images
					if err := tx.Save(&existing).Error; err != nil {
						return err
					}
					if err := tx.Where("product_id = ?", existing.ID).
						Delete(&models.ProductVariant{}).Error; err != nil {
						return err
					}
					for i := range p.Variants {
						p.Variants[i].ID = 0
						p.Variants[i].ProductID = existing.ID
					}
					return tx.Create(&p.Variants).Error
				})
				if txErr != nil {
					log.Printf("❌ Failed to update product %s: %v", slugVal, txErr)
					rowErrors = append(rowErrors, fmt.Sprintf("%s: update failed", slugVal))
					continue
				}
				updated++
			case err == gorm.ErrRecordNotFound:
				if err := db.Create(p).Error; err != nil {
					log.Printf("❌ Failed to import product %s: %v", slugVal, err)
					rowErrors = append(rowErrors, fmt.Sprintf("%s: create failed", slugVal))
					continue
				}
				created++
			default:
				rowErrors = append(rowErrors, fmt.Sprintf("%s: lookup failed", slugVal))
			}
		}

		log.Printf("✅ Product import finished: %d created, %d updated, %d errors", created, updated, len(rowErrors))
		c.JSON(http.StatusOK, gin.H{
			"created": created,
			"updated": updated,
			"errors":  rowErrors,
		})
	}
}
