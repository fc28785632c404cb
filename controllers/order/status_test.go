package orderControllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrygithub11/manthmwear-sub000/models"
)

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("SHIPPED")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("teleported")
	assert.Error(t, err)
}

func TestMapPaymentStatus(t *testing.T) {
	status, err := mapPaymentStatus("Paid")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, status)

	_, err = mapPaymentStatus("owed")
	assert.Error(t, err)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	a := generateOrderNumber()
	b := generateOrderNumber()

	assert.True(t, strings.HasPrefix(a, "MW-"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.Split(a, "-"), 3)
}
