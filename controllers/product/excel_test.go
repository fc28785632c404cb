package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// Spreadsheet prices travel as rupee floats; converting back must round, not
// truncate, or Rs 19.99 lands at 1998 paise.
func TestRupeesToPaiseRoundsFloatPrices(t *testing.T) {
	assert.EqualValues(t, 1999, rupeesToPaise(19.99))
	assert.EqualValues(t, 1999, rupeesToPaise(float64(1999)/100))
	assert.EqualValues(t, 50000, rupeesToPaise(500))
	assert.EqualValues(t, 182, rupeesToPaise(1.82))
	assert.EqualValues(t, 0, rupeesToPaise(0))
}

func TestValidateSharedStockPoolsRejectsMismatchedBase(t *testing.T) {
	variants := []models.ProductVariant{
		{Size: "M", Color: "Black", Pack: 1, BaseStock: 30, UseSharedStock: true},
		{Size: "M", Color: "Black", Pack: 2, BaseStock: 20, UseSharedStock: true},
	}
	assert.Error(t, validateSharedStockPools(variants))

	variants[1].BaseStock = 30
	assert.NoError(t, validateSharedStockPools(variants))

	// non-shared variants may differ freely
	variants[1].UseSharedStock = false
	variants[1].BaseStock = 5
	assert.NoError(t, validateSharedStockPools(variants))
}
