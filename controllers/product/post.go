package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

type VariantInput struct {
	Size           string `json:"size" binding:"required"`
	Color          string `json:"color" binding:"required"`
	Pack           int    `json:"pack" binding:"omitempty,oneof=1 2 3"`
	Price          int64  `json:"price" binding:"required,min=1"`
	Stock          int    `json:"stock" binding:"min=0"`
	BaseStock      int    `json:"base_stock" binding:"min=0"`
	UseSharedStock bool   `json:"use_shared_stock"`
}

type CreateProductInput struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category" binding:"required"`
	Images      []string       `json:"images"`
	IsActive    *bool          `json:"is_active"`
	Variants    []VariantInput `json:"variants" binding:"required,min=1,dive"`
}

// uniqueSlug appends a numeric suffix until the slug is free.
func uniqueSlug(db *gorm.DB, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Model(&models.Product{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func variantFromInput(in VariantInput) models.ProductVariant {
	pack := in.Pack
	if pack == 0 {
		pack = 1
	}
	return models.ProductVariant{
		Size:           in.Size,
		Color:          in.Color,
		Pack:           pack,
		Price:          in.Price,
		Stock:          in.Stock,
		BaseStock:      in.BaseStock,
		UseSharedStock: in.UseSharedStock,
	}
}

// POST /api/admin/products
// Creates a product with its variants. Shared-stock variant groups must
// arrive with the same base_stock on every member; the invariant is enforced
// here so pool siblings never disagree.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := validateSharedStockGroups(input.Variants); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		productSlug, err := uniqueSlug(db, input.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate slug"})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		newProduct := models.Product{
			Slug:        productSlug,
			Name:        input.Name,
			Description: input.Description,
			Category:    input.Category,
			Images:      input.Images,
			IsActive:    isActive,
		}
		for _, v := range input.Variants {
			newProduct.Variants = append(newProduct.Variants, variantFromInput(v))
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}

// validateSharedStockGroups rejects variant sets where pool siblings carry
// different base_stock values.
func validateSharedStockGroups(variants []VariantInput) error {
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
