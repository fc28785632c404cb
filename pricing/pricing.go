// Package pricing holds the checkout money rules. Every handler that shows a
// total (cart quote, checkout, guest order creation) goes through Compute so
// the numbers cannot drift between pages. All amounts are integer paise.
package pricing

// Line is one cart row priced server-side.
type Line struct {
	UnitPrice int64
	Quantity  int
}

// Params is the settings snapshot the computation runs against.
type Params struct {
	ShippingFee           int64
	FreeShippingThreshold int64
	TaxRateBps            int64 // basis points, 1825 = 18.25%
	PrepaidDiscount       int64
}

type Breakdown struct {
	Subtotal        int64 `json:"subtotal"`
	ShippingFee     int64 `json:"shipping_fee"`
	Tax             int64 `json:"tax"`
	CouponDiscount  int64 `json:"coupon_discount"`
	PrepaidDiscount int64 `json:"prepaid_discount"`
	Discount        int64 `json:"discount"`
	Total           int64 `json:"total"`
}

func Subtotal(lines []Line) int64 {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPrice * int64(l.Quantity)
	}
	return subtotal
}

// Compute assembles the order total. The ordering is load-bearing: shipping
// is waived on the raw subtotal, and tax applies to
// (subtotal + shipping - discounts), so discounts shrink the taxable base.
func Compute(lines []Line, p Params, prepaid bool, couponDiscount int64) Breakdown {
	b := Breakdown{
		Subtotal:       Subtotal(lines),
		CouponDiscount: couponDiscount,
	}

	if b.Subtotal < p.FreeShippingThreshold {
		b.ShippingFee = p.ShippingFee
	}

	if prepaid {
		b.PrepaidDiscount = p.PrepaidDiscount
	}
	b.Discount = b.CouponDiscount + b.PrepaidDiscount

	taxable := b.Subtotal + b.ShippingFee - b.Discount
	if taxable < 0 {
		taxable = 0
	}
	b.Tax = taxable * p.TaxRateBps / 10000

	b.Total = b.Subtotal + b.ShippingFee + b.Tax - b.Discount
	if b.Total < 0 {
		b.Total = 0
	}
	return b
}
