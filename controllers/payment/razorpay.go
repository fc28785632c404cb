package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const razorpayAPIBase = "https://api.razorpay.com/v1"

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type razorpayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateRazorpayOrder registers the order with the gateway and returns the
// gateway order ID the checkout widget needs. Amount is in paise, as the
// gateway expects.
func CreateRazorpayOrder(keyID, keySecret string, amount int64, currency, receipt string) (string, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", razorpayAPIBase+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(keyID, keySecret)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var rzpErr razorpayErrorResponse
		if err := json.Unmarshal(body, &rzpErr); err == nil && rzpErr.Error.Description != "" {
			return "", fmt.Errorf("razorpay error: %s", rzpErr.Error.Description)
		}
		return "", fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var rzpResp razorpayOrderResponse
	if err := json.Unmarshal(body, &rzpResp); err != nil {
		return "", fmt.Errorf("failed to parse Razorpay response: %v", err)
	}
	if rzpResp.ID == "" {
		return "", fmt.Errorf("razorpay returned empty order id")
	}

	return rzpResp.ID, nil
}

// VerifyCheckoutSignature checks the signature the checkout widget posts
// back after payment: HMAC-SHA256 of "<order_id>|<payment_id>" under the key
// secret.
func VerifyCheckoutSignature(razorpayOrderID, razorpayPaymentID, signature, keySecret string) bool {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(razorpayOrderID + "|" + razorpayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks X-Razorpay-Signature against the raw body.
func VerifyWebhookSignature(body []byte, signature, webhookSecret string) bool {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
