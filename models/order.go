package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting payment
	OrderStatusConfirmed  OrderStatus = "confirmed"  // paid online or COD accepted
	OrderStatusProcessing OrderStatus = "processing" // being packed
	OrderStatusShipped    OrderStatus = "shipped"    // handed to courier
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

const (
	PaymentMethodOnline = "online"
	PaymentMethodCOD    = "cod"
)

// ShippingAddress is persisted as a JSON blob on the order. PackColors is a
// side channel mapping variant ID -> chosen colors for multi-pack SKUs.
type ShippingAddress struct {
	Name       string              `json:"name"`
	Phone      string              `json:"phone"`
	Line1      string              `json:"line1"`
	Line2      string              `json:"line2,omitempty"`
	City       string              `json:"city"`
	State      string              `json:"state"`
	PostalCode string              `json:"postal_code"`
	Country    string              `json:"country"`
	PackColors map[string][]string `json:"pack_colors,omitempty"`
}

// Order money fields are all in paise.
// Total = Subtotal + ShippingFee + Tax - Discount, floored at zero.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderNumber     string          `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID          string          `gorm:"index;not null" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod   string          `json:"payment_method"` // "online" or "cod"
	Subtotal        int64           `json:"subtotal"`
	ShippingFee     int64           `json:"shipping_fee"`
	Tax             int64           `json:"tax"`
	CouponDiscount  int64           `json:"coupon_discount"`
	PrepaidDiscount int64           `json:"prepaid_discount"`
	Discount        int64           `json:"discount"` // coupon + prepaid
	Total           int64           `json:"total"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	ShippingAddress ShippingAddress `gorm:"serializer:json" json:"shipping_address"`

	RazorpayOrderID   string `gorm:"index" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`

	Shipment *Shipment `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shipment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem snapshots the variant at purchase time. Subtotal = Price * Quantity.
type OrderItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderID     uint   `gorm:"index" json:"order_id"`
	VariantID   uint   `json:"variant_id"`
	ProductName string `json:"product_name"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Pack        int    `json:"pack"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

// Shipment records the RapidShyp consignment for an order.
type Shipment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"uniqueIndex" json:"order_id"`
	AWB         string    `json:"awb"`
	Courier     string    `json:"courier"`
	LabelURL    string    `json:"label_url"`
	ManifestURL string    `json:"manifest_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
