package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

func TestUnitsRequired(t *testing.T) {
	assert.Equal(t, 3, UnitsRequired(1, 3))
	assert.Equal(t, 6, UnitsRequired(3, 2))
	// legacy rows with pack 0 behave as singles
	assert.Equal(t, 2, UnitsRequired(0, 2))
}

func TestSellableOwnStock(t *testing.T) {
	v := &models.ProductVariant{Stock: 7, BaseStock: 100, UseSharedStock: false}
	assert.Equal(t, 7, Sellable(v))
}

func TestSellableSharedPoolDividesByPack(t *testing.T) {
	single := &models.ProductVariant{Pack: 1, BaseStock: 10, UseSharedStock: true}
	double := &models.ProductVariant{Pack: 2, BaseStock: 10, UseSharedStock: true}
	triple := &models.ProductVariant{Pack: 3, BaseStock: 10, UseSharedStock: true}

	assert.Equal(t, 10, Sellable(single))
	assert.Equal(t, 5, Sellable(double))
	assert.Equal(t, 3, Sellable(triple))
}

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := ErrInsufficientStock{VariantID: 42, Requested: 6, Available: 4}
	assert.Contains(t, err.Error(), "variant 42")
	assert.Contains(t, err.Error(), "requested 6")
}
