package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var storeParams = Params{
	ShippingFee:           5000,  // Rs 50
	FreeShippingThreshold: 99900, // Rs 999
	TaxRateBps:            0,
	PrepaidDiscount:       0,
}

func TestComputeWaivesShippingAtThreshold(t *testing.T) {
	lines := []Line{{UnitPrice: 99900, Quantity: 1}}
	b := Compute(lines, storeParams, false, 0)
	assert.EqualValues(t, 0, b.ShippingFee)

	lines = []Line{{UnitPrice: 99899, Quantity: 1}}
	b = Compute(lines, storeParams, false, 0)
	assert.EqualValues(t, 5000, b.ShippingFee)
}

// Rs 1000 cart over the free-shipping threshold with a flat Rs 100 coupon.
func TestComputeFlatCouponExample(t *testing.T) {
	lines := []Line{{UnitPrice: 100000, Quantity: 1}}
	b := Compute(lines, storeParams, false, 10000)

	assert.EqualValues(t, 100000, b.Subtotal)
	assert.EqualValues(t, 0, b.ShippingFee)
	assert.EqualValues(t, 10000, b.Discount)
	assert.EqualValues(t, 90000, b.Total)
}

// Rs 500 cart below the threshold with a capped percentage coupon: shipping
// Rs 50, discount Rs 80, total Rs 470.
func TestComputeCappedPercentageExample(t *testing.T) {
	lines := []Line{{UnitPrice: 25000, Quantity: 2}}
	b := Compute(lines, storeParams, false, 8000)

	assert.EqualValues(t, 50000, b.Subtotal)
	assert.EqualValues(t, 5000, b.ShippingFee)
	assert.EqualValues(t, 47000, b.Total)
}

func TestComputeTotalNeverNegative(t *testing.T) {
	// Rs 10 cart, Rs 50 shipping, Rs 10 coupon: still pays the shipping.
	lines := []Line{{UnitPrice: 1000, Quantity: 1}}
	b := Compute(lines, storeParams, true, 1000)
	assert.EqualValues(t, 5000, b.Total)

	// a discount larger than the whole order clamps at zero
	b = Compute(lines, storeParams, false, 500000)
	assert.EqualValues(t, 0, b.Total)
}

func TestComputeTaxBaseIncludesShippingMinusDiscounts(t *testing.T) {
	p := storeParams
	p.TaxRateBps = 1800 // 18%

	lines := []Line{{UnitPrice: 50000, Quantity: 1}}
	b := Compute(lines, p, false, 10000)

	// taxable = 50000 + 5000 - 10000 = 45000; 18% = 8100
	assert.EqualValues(t, 8100, b.Tax)
	assert.EqualValues(t, 50000+5000+8100-10000, b.Total)
}

func TestComputeTaxFloorsFractionalPaise(t *testing.T) {
	p := Params{TaxRateBps: 1825} // 18.25%
	lines := []Line{{UnitPrice: 999, Quantity: 1}}
	b := Compute(lines, p, false, 0)
	// 999 * 1825 / 10000 = 182.31... -> 182
	assert.EqualValues(t, 182, b.Tax)
}

func TestComputePrepaidDiscountOnlyForOnlinePayment(t *testing.T) {
	p := storeParams
	p.PrepaidDiscount = 5000

	lines := []Line{{UnitPrice: 150000, Quantity: 1}}

	cod := Compute(lines, p, false, 0)
	assert.EqualValues(t, 0, cod.PrepaidDiscount)
	assert.EqualValues(t, 150000, cod.Total)

	online := Compute(lines, p, true, 0)
	assert.EqualValues(t, 5000, online.PrepaidDiscount)
	assert.EqualValues(t, 145000, online.Total)
}

func TestSubtotalMultipliesLineQuantities(t *testing.T) {
	lines := []Line{
		{UnitPrice: 49900, Quantity: 2},
		{UnitPrice: 129900, Quantity: 1},
	}
	assert.EqualValues(t, 229700, Subtotal(lines))
}
