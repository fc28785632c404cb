package shippingcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

// RapidshypClient talks to the RapidShyp REST API. Auth is a static
// token sent in the rapidshyp-token header.
type RapidshypClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewRapidshypClient(baseURL, token string) *RapidshypClient {
	return &RapidshypClient{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type shipmentItem struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"units"`
	Price    string `json:"selling_price"`
}

type createShipmentRequest struct {
	OrderID       string         `json:"order_id"`
	OrderDate     string         `json:"order_date"`
	PaymentMethod string         `json:"payment_method"`
	CustomerName  string         `json:"customer_name"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	State         string         `json:"state"`
	Pincode       string         `json:"pincode"`
	OrderValue    string         `json:"order_value"`
	CODAmount     string         `json:"cod_amount"`
	Items         []shipmentItem `json:"order_items"`
}

type createShipmentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		AWB         string `json:"awb"`
		Courier     string `json:"courier_name"`
		LabelURL    string `json:"label_url"`
		ManifestURL string `json:"manifest_url"`
		Status      string `json:"status"`
	} `json:"data"`
}

// ShipmentResult is what CreateShipment hands back to the caller.
type ShipmentResult struct {
	AWB         string
	Courier     string
	LabelURL    string
	ManifestURL string
	Status      string
}

func rupeeString(paise int64) string {
	return fmt.Sprintf("%d.%02d", paise/100, paise%100)
}

// CreateShipment books a shipment for the order and returns the
// assigned AWB and documents.
func (rc *RapidshypClient) CreateShipment(order *models.Order) (*ShipmentResult, error) {
	if rc.Token == "" {
		return nil, fmt.Errorf("rapidshyp token is not configured")
	}

	codAmount := "0.00"
	if order.PaymentMethod == models.PaymentMethodCOD {
		codAmount = rupeeString(order.Total)
	}

	items := make([]shipmentItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, shipmentItem{
			Name:     it.ProductName,
			SKU:      fmt.Sprintf("%s-%s-%d", it.Size, it.Color, it.Pack),
			Quantity: it.Quantity,
			Price:    rupeeString(it.Price),
		})
	}

	address := order.ShippingAddress.Line1
	if order.ShippingAddress.Line2 != "" {
		address += ", " + order.ShippingAddress.Line2
	}

	reqBody := createShipmentRequest{
		OrderID:       order.OrderNumber,
		OrderDate:     order.CreatedAt.Format("2006-01-02"),
		PaymentMethod: order.PaymentMethod,
		CustomerName:  order.ShippingAddress.Name,
		Phone:         order.ShippingAddress.Phone,
		Email:         order.User.Email,
		Address:       address,
		City:          order.ShippingAddress.City,
		State:         order.ShippingAddress.State,
		Pincode:       order.ShippingAddress.PostalCode,
		OrderValue:    rupeeString(order.Total),
		CODAmount:     codAmount,
		Items:         items,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shipment request: %w", err)
	}

	req, err := http.NewRequest("POST", rc.BaseURL+"/create_shipment", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create shipment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("rapidshyp-token", rc.Token)

	resp, err := rc.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rapidshyp request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rapidshyp response: %w", err)
	}

	var parsed createShipmentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("invalid rapidshyp response: %s", string(body))
	}
	if resp.StatusCode != http.StatusOK || !parsed.Success {
		log.Printf("❌ RapidShyp shipment failed for %s: %s", order.OrderNumber, parsed.Message)
		return nil, fmt.Errorf("rapidshyp error: %s", parsed.Message)
	}

	status := parsed.Data.Status
	if status == "" {
		status = "CREATED"
	}

	return &ShipmentResult{
		AWB:         parsed.Data.AWB,
		Courier:     parsed.Data.Courier,
		LabelURL:    parsed.Data.LabelURL,
		ManifestURL: parsed.Data.ManifestURL,
		Status:      status,
	}, nil
}
