package paymentControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyCheckoutSignature(t *testing.T) {
	// HMAC-SHA256("order_MkRh2K7circbnu|pay_29QQoUBi66xm2f", "test_key_secret")
	sig := "ed401ccece8a6bc48f210368c41db4f907bc9d19465842ee974dbbbec60b05b7"

	assert.True(t, VerifyCheckoutSignature(
		"order_MkRh2K7circbnu", "pay_29QQoUBi66xm2f", sig, "test_key_secret"))

	assert.False(t, VerifyCheckoutSignature(
		"order_MkRh2K7circbnu", "pay_29QQoUBi66xm2f", sig, "wrong_secret"))
	assert.False(t, VerifyCheckoutSignature(
		"order_other", "pay_29QQoUBi66xm2f", sig, "test_key_secret"))
	assert.False(t, VerifyCheckoutSignature(
		"order_MkRh2K7circbnu", "pay_29QQoUBi66xm2f", "deadbeef", "test_key_secret"))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_29QQoUBi66xm2f","order_id":"order_MkRh2K7circbnu","status":"captured"}}}}`)
	sig := "3e174ee4f0890c72ca1033d56fc36796372ba086cf737c46e2e1c1ed9bc0da6a"

	assert.True(t, VerifyWebhookSignature(body, sig, "whsec_123"))
	assert.False(t, VerifyWebhookSignature(body, sig, "whsec_456"))
	assert.False(t, VerifyWebhookSignature(append(body, ' '), sig, "whsec_123"))
}
