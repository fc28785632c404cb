package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harrygithub11/manthmwear-sub000/config"
	paymentControllers "github.com/harrygithub11/manthmwear-sub000/controllers/payment"
	"github.com/harrygithub11/manthmwear-sub000/email"
	"github.com/harrygithub11/manthmwear-sub000/inventory"
	"github.com/harrygithub11/manthmwear-sub000/models"
	"github.com/harrygithub11/manthmwear-sub000/pricing"
)

// -------- Request Structs --------

type GuestOrderItem struct {
	VariantID  uint     `json:"variant_id" binding:"required"`
	Quantity   int      `json:"quantity" binding:"required,min=1"`
	PackColors []string `json:"pack_colors"`
}

type GuestAddress struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country"`
}

type GuestOrderRequest struct {
	Name          string           `json:"name" binding:"required"`
	Email         string           `json:"email" binding:"required,email"`
	Phone         string           `json:"phone" binding:"required"`
	Address       GuestAddress     `json:"address" binding:"required"`
	Items         []GuestOrderItem `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string           `json:"payment_method" binding:"required,oneof=online cod"`
	CouponCode    string           `json:"coupon_code"`
}

// -------- Helpers --------

func generateOrderNumber() string {
	return "MW-" + time.Now().Format("20060102") + "-" + strings.ToUpper(uuid.NewString()[:8])
}

func pricingParams(s *models.SiteSettings) pricing.Params {
	return pricing.Params{
		ShippingFee:           s.ShippingFee,
		FreeShippingThreshold: s.FreeShippingThreshold,
		TaxRateBps:            s.TaxRateBps,
		PrepaidDiscount:       s.PrepaidDiscount,
	}
}

// findOrCreateUser matches the guest to an existing user by email, creating
// one on first purchase.
func findOrCreateUser(tx *gorm.DB, name, emailAddr, phone string) (*models.User, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	var user models.User
	err := tx.Where("email = ?", emailAddr).First(&user).Error
	if err == nil {
		updates := map[string]interface{}{}
		if user.Name == "" && name != "" {
			updates["name"] = name
		}
		if user.Phone == "" && phone != "" {
			updates["phone"] = phone
		}
		if len(updates) > 0 {
			if err := tx.Model(&user).Updates(updates).Error; err != nil {
				return nil, err
			}
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		ID:    uuid.NewString(),
		Email: emailAddr,
		Name:  name,
		Phone: phone,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// buildOrderItems prices the cart from the database, never from the client.
func buildOrderItems(tx *gorm.DB, reqItems []GuestOrderItem) ([]pricing.Line, []models.OrderItem, error) {
	var lines []pricing.Line
	var items []models.OrderItem

	for _, ri := range reqItems {
		var variant models.ProductVariant
		if err := tx.First(&variant, "id = ?", ri.VariantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, errors.New("variant " + strconv.Itoa(int(ri.VariantID)) + " does not exist")
			}
			return nil, nil, err
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", variant.ProductID).Error; err != nil {
			return nil, nil, err
		}
		if !product.IsActive {
			return nil, nil, errors.New(product.Name + " is no longer available")
		}

		lines = append(lines, pricing.Line{UnitPrice: variant.Price, Quantity: ri.Quantity})
		items = append(items, models.OrderItem{
			VariantID:   variant.ID,
			ProductName: product.Name,
			Size:        variant.Size,
			Color:       variant.Color,
			Pack:        variant.Pack,
			Price:       variant.Price,
			Quantity:    ri.Quantity,
			Subtotal:    variant.Price * int64(ri.Quantity),
		})
	}
	return lines, items, nil
}

// redeemCoupon locks the coupon row, runs the validation chain, and enforces
// the one-time-per-user rule. The usage row is written by the caller once the
// order exists, inside the same transaction.
func redeemCoupon(tx *gorm.DB, code, userID string, subtotal int64) (*models.Coupon, int64, error) {
	var coupon models.Coupon
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, pricing.ErrCouponNotFound
		}
		return nil, 0, err
	}

	discount, err := pricing.EvaluateCoupon(&coupon, subtotal, time.Now())
	if err != nil {
		return nil, 0, err
	}

	if coupon.OneTimePerUser {
		var used int64
		if err := tx.Model(&models.CouponUsage{}).
			Where("coupon_id = ? AND user_id = ?", coupon.ID, userID).
			Count(&used).Error; err != nil {
			return nil, 0, err
		}
		if used > 0 {
			return nil, 0, pricing.ErrCouponAlreadyUsed
		}
	}

	return &coupon, discount, nil
}

func isCouponRejection(err error) bool {
	for _, target := range []error{
		pricing.ErrCouponNotFound, pricing.ErrCouponInactive, pricing.ErrCouponExpired,
		pricing.ErrCouponExhausted, pricing.ErrBelowMinOrder, pricing.ErrCouponAlreadyUsed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// -------- Core Logic --------

// placeGuestOrder runs the whole checkout inside one transaction: user
// find-or-create, server-side pricing, coupon redemption, stock deduction,
// order creation. Any failure rolls the lot back.
func placeGuestOrder(db *gorm.DB, settings *models.SiteSettings, req GuestOrderRequest) (*models.Order, error) {
	var order *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := findOrCreateUser(tx, req.Name, req.Email, req.Phone)
		if err != nil {
			return err
		}

		lines, items, err := buildOrderItems(tx, req.Items)
		if err != nil {
			return err
		}
		subtotal := pricing.Subtotal(lines)

		var coupon *models.Coupon
		var couponDiscount int64
		if req.CouponCode != "" {
			coupon, couponDiscount, err = redeemCoupon(tx, req.CouponCode, user.ID, subtotal)
			if err != nil {
				return err
			}
		}

		prepaid := req.PaymentMethod == models.PaymentMethodOnline
		breakdown := pricing.Compute(lines, pricingParams(settings), prepaid, couponDiscount)

		for _, ri := range req.Items {
			if err := inventory.Deduct(tx, ri.VariantID, ri.Quantity); err != nil {
				return err
			}
		}

		address := models.ShippingAddress{
			Name:       req.Name,
			Phone:      req.Phone,
			Line1:      req.Address.Line1,
			Line2:      req.Address.Line2,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
			Country:    req.Address.Country,
		}
		for _, ri := range req.Items {
			if len(ri.PackColors) > 0 {
				if address.PackColors == nil {
					address.PackColors = map[string][]string{}
				}
				address.PackColors[strconv.Itoa(int(ri.VariantID))] = ri.PackColors
			}
		}

		// COD orders are confirmed immediately; online orders stay pending
		// until the payment callback verifies the signature.
		status := models.OrderStatusConfirmed
		if prepaid {
			status = models.OrderStatusPending
		}

		newOrder := models.Order{
			OrderNumber:     generateOrderNumber(),
			UserID:          user.ID,
			Items:           items,
			Status:          status,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   req.PaymentMethod,
			Subtotal:        breakdown.Subtotal,
			ShippingFee:     breakdown.ShippingFee,
			Tax:             breakdown.Tax,
			CouponDiscount:  breakdown.CouponDiscount,
			PrepaidDiscount: breakdown.PrepaidDiscount,
			Discount:        breakdown.Discount,
			Total:           breakdown.Total,
			ShippingAddress: address,
			CreatedAt:       time.Now(),
		}
		if coupon != nil {
			newOrder.CouponCode = coupon.Code
		}

		if err := tx.Create(&newOrder).Error; err != nil {
			return err
		}

		if coupon != nil {
			usage := models.CouponUsage{
				CouponID: coupon.ID,
				UserID:   user.ID,
				OrderID:  newOrder.ID,
				Discount: couponDiscount,
				UsedAt:   time.Now(),
			}
			if err := tx.Create(&usage).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Coupon{}).Where("id = ?", coupon.ID).
				Update("usage_count", gorm.Expr("usage_count + 1")).Error; err != nil {
				return err
			}
		}

		newOrder.User = *user
		order = &newOrder
		return nil
	})

	return order, err
}

// -------- Handlers --------

// POST /api/orders/guest
func PlaceGuestOrderHandler(db *gorm.DB, cfg *config.Config, mailer *email.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GuestOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		settings, err := models.LoadSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
			return
		}
		if req.PaymentMethod == models.PaymentMethodCOD && !settings.CODEnabled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cash on delivery is currently unavailable"})
			return
		}

		order, err := placeGuestOrder(db, settings, req)
		if err != nil {
			var stockErr inventory.ErrInsufficientStock
			switch {
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case isCouponRejection(err):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				log.Printf("❌ Guest order failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			}
			return
		}

		resp := gin.H{
			"order_number": order.OrderNumber,
			"status":       order.Status,
			"subtotal":     order.Subtotal,
			"shipping_fee": order.ShippingFee,
			"tax":          order.Tax,
			"discount":     order.Discount,
			"total":        order.Total,
		}

		if order.PaymentMethod == models.PaymentMethodOnline {
			keyID := settings.RazorpayKeyID
			keySecret := settings.RazorpayKeySecret
			if keyID == "" {
				keyID = cfg.Razorpay.KeyID
			}
			if keySecret == "" {
				keySecret = cfg.Razorpay.KeySecret
			}

			rzpOrderID, err := paymentControllers.CreateRazorpayOrder(keyID, keySecret, order.Total, "INR", order.OrderNumber)
			if err != nil {
				// The order exists and stock is held; the storefront retries
				// payment initiation against the order number.
				log.Printf("❌ Razorpay order creation failed for %s: %v", order.OrderNumber, err)
				resp["payment_error"] = "payment initiation failed, please retry"
				c.JSON(http.StatusBadGateway, resp)
				return
			}
			if err := db.Model(order).Update("razorpay_order_id", rzpOrderID).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach payment order"})
				return
			}
			resp["payment"] = gin.H{
				"razorpay_order_id": rzpOrderID,
				"razorpay_key_id":   keyID,
				"amount":            order.Total,
				"currency":          "INR",
			}
		}

		go mailer.SendOrderConfirmation(order, settings.StoreName)
		go mailer.SendOrderAlert(order, settings.AdminAlertEmail)
		broadcastNewOrder(*order)

		log.Printf("✅ Order %s placed (%s, %s)", order.OrderNumber, order.PaymentMethod, order.User.Email)
		c.JSON(http.StatusCreated, resp)
	}
}

// GET /api/orders/:orderNumber: confirmation page lookup.
func GetOrderByNumberHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")
		if orderNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderNumber is required"})
			return
		}

		var order models.Order
		if err := db.Preload("User").Preload("Items").Preload("Shipment").
			Where("order_number = ?", orderNumber).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
