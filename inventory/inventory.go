// Package inventory centralizes the shared-stock rules so every write path
// deducts the same way.
package inventory

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// ErrInsufficientStock aborts the enclosing order transaction.
type ErrInsufficientStock struct {
	VariantID uint
	Requested int
	Available int
}

func (e ErrInsufficientStock) Error() string {
	return fmt.Sprintf("insufficient stock for variant %d: requested %d, available %d",
		e.VariantID, e.Requested, e.Available)
}

// UnitsRequired is the number of underlying units a line consumes from a
// shared pool: quantity times pack size.
func UnitsRequired(pack, quantity int) int {
	if pack < 1 {
		pack = 1
	}
	return pack * quantity
}

// Sellable is how many of this SKU can still be sold. Shared variants divide
// the unit pool by pack size; others report their own counter.
func Sellable(v *models.ProductVariant) int {
	if !v.UseSharedStock {
		return v.Stock
	}
	pack := v.Pack
	if pack < 1 {
		pack = 1
	}
	return v.BaseStock / pack
}

// Deduct removes quantity of the variant from stock inside tx.
//
// The variant's whole product/color/size group is locked FOR UPDATE in a
// single id-ordered statement, so concurrent checkouts against any pool
// members acquire the same locks in the same order and serialize instead of
// overselling or deadlocking.
//
// Shared variants subtract units from base_stock on every sibling of the
// group, keeping the pool identical across pack sizes.
func Deduct(tx *gorm.DB, variantID uint, quantity int) error {
	var group []models.ProductVariant
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("(product_id, color, size) IN (SELECT product_id, color, size FROM product_variants WHERE id = ?)",
			variantID).
		Order("id").
		Find(&group).Error; err != nil {
		return err
	}

	var variant *models.ProductVariant
	for i := range group {
		if group[i].ID == variantID {
			variant = &group[i]
			break
		}
	}
	if variant == nil {
		return gorm.ErrRecordNotFound
	}

	if !variant.UseSharedStock {
		if variant.Stock < quantity {
			return ErrInsufficientStock{VariantID: variantID, Requested: quantity, Available: variant.Stock}
		}
		return tx.Model(&models.ProductVariant{}).
			Where("id = ?", variantID).
			Update("stock", gorm.Expr("stock - ?", quantity)).Error
	}

	units := UnitsRequired(variant.Pack, quantity)
	if variant.BaseStock < units {
		return ErrInsufficientStock{VariantID: variantID, Requested: units, Available: variant.BaseStock}
	}

	return tx.Model(&models.ProductVariant{}).
		Where("product_id = ? AND color = ? AND size = ? AND use_shared_stock = ?",
			variant.ProductID, variant.Color, variant.Size, true).
		Update("base_stock", gorm.Expr("base_stock - ?", units)).Error
}
