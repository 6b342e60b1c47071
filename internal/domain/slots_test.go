package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-RentalGateway/pkg/types"
)

func TestStartSlots(t *testing.T) {
	slots := StartSlots()

	// 09:00 .. 17:00 с шагом 30 минут = 17 слотов
	require.Len(t, slots, 17)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("17:00"), slots[16])
}

func TestIsValidStartSlot(t *testing.T) {
	assert.True(t, IsValidStartSlot("09:00"))
	assert.True(t, IsValidStartSlot("13:30"))
	assert.True(t, IsValidStartSlot("17:00"))

	assert.False(t, IsValidStartSlot("08:30"))
	assert.False(t, IsValidStartSlot("17:30"))
	assert.False(t, IsValidStartSlot("10:15"))
	assert.False(t, IsValidStartSlot(""))
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentCashForeign.IsValid())
	assert.True(t, PaymentCard.IsValid())
	assert.False(t, PaymentMethod("crypto").IsValid())

	assert.True(t, PaymentCash.RequiresEarlyPayment())
	assert.True(t, PaymentCashForeign.RequiresEarlyPayment())
	assert.False(t, PaymentCard.RequiresEarlyPayment())
}
