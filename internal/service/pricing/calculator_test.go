package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:             "kayak-1",
			Name:           "Kayak doble",
			Type:           "kayak",
			PricePerTurn:   price("10"),
			RequiresSafety: true,
			SafetyDevices:  []string{"chaleco"},
			MaxCapacity:    2,
		},
		{
			ID:             "sup-1",
			Name:           "Tabla SUP",
			Type:           "sup",
			PricePerTurn:   price("15"),
			RequiresSafety: true,
			SafetyDevices:  []string{"chaleco", "leash"},
			MaxCapacity:    1,
		},
		{
			ID:           "sombrilla-1",
			Name:         "Sombrilla",
			Type:         "sombra",
			PricePerTurn: price("5"),
			MaxCapacity:  2,
		},
	}
}

func TestCalculateSingleProductNoDiscount(t *testing.T) {
	q := Calculate([]string{"kayak-1"}, testCatalog(), 1, 1, false)

	// Один товар - множитель скидки ровно 1.0
	assert.True(t, q.Total.Equal(price("10")), "total = %s", q.Total)
	assert.True(t, q.DiscountAmount.IsZero())
	assert.True(t, q.InsuranceAmount.IsZero())
}

func TestCalculateMultiProductDiscount(t *testing.T) {
	// 2 товара по $10 и $15 за турн, 2 турна, без страховки:
	// base = (10+15)*2 = 50, со скидкой 50*0.9 = 45.00
	q := Calculate([]string{"kayak-1", "sup-1"}, testCatalog(), 2, 1, false)

	assert.Equal(t, "45.00", q.Total.StringFixed(2))
	assert.True(t, q.Base.Equal(price("50")))
	assert.True(t, q.DiscountAmount.Equal(price("5")))
}

func TestCalculateStormInsuranceAfterDiscount(t *testing.T) {
	// Тот же сценарий плюс страховка: 45*1.1 = 49.50
	// Надбавка считается от суммы после скидки, не до
	q := Calculate([]string{"kayak-1", "sup-1"}, testCatalog(), 2, 1, true)

	assert.Equal(t, "49.50", q.Total.StringFixed(2))
	assert.True(t, q.InsuranceAmount.Equal(price("4.5")), "insurance = %s", q.InsuranceAmount)
}

func TestCalculateInsuranceWithoutDiscount(t *testing.T) {
	// Один товар со страховкой: 10*1*1.1 = 11.00
	q := Calculate([]string{"kayak-1"}, testCatalog(), 1, 1, true)

	assert.Equal(t, "11.00", q.Total.StringFixed(2))
}

func TestCalculateSafetyDeviceCounts(t *testing.T) {
	// Количества суммируются по товарам: chaleco требуют оба товара
	q := Calculate([]string{"kayak-1", "sup-1"}, testCatalog(), 1, 2, false)

	assert.Equal(t, map[string]int{"chaleco": 4, "leash": 2}, q.SafetyDeviceCounts)
}

func TestCalculateNoSafetyRequired(t *testing.T) {
	q := Calculate([]string{"sombrilla-1"}, testCatalog(), 1, 2, false)

	assert.Empty(t, q.SafetyDeviceCounts)
}

func TestCalculateUnknownProductSkipped(t *testing.T) {
	// Неизвестный идентификатор молча пропускается, но учитывается
	// в размере выбора: 2 выбранных => скидка применяется
	q := Calculate([]string{"kayak-1", "ghost"}, testCatalog(), 1, 1, false)

	assert.Equal(t, "9.00", q.Total.StringFixed(2))
}

func TestCalculateEmptySelection(t *testing.T) {
	q := Calculate(nil, testCatalog(), 3, 2, true)

	assert.True(t, q.Total.IsZero())
	assert.Empty(t, q.SafetyDeviceCounts)
}

func TestCalculateRoundsOnceAtTheEnd(t *testing.T) {
	catalog := []domain.Product{
		{ID: "p1", PricePerTurn: price("10.01")},
		{ID: "p2", PricePerTurn: price("0.02")},
	}

	// base = 10.03*3 = 30.09; скидка: 27.081; страховка: 29.7891
	// банковское округление в самом конце: 29.79
	q := Calculate([]string{"p1", "p2"}, catalog, 3, 1, true)

	require.Equal(t, "29.79", q.Total.StringFixed(2))
}

func TestSafetyDeviceUnion(t *testing.T) {
	catalog := testCatalog()

	// Объединение без дубликатов, в порядке первого появления
	union := SafetyDeviceUnion([]string{"kayak-1", "sup-1"}, catalog)
	assert.Equal(t, []string{"chaleco", "leash"}, union)

	// Только один товар требует устройства
	union = SafetyDeviceUnion([]string{"kayak-1", "sombrilla-1"}, catalog)
	assert.Equal(t, []string{"chaleco"}, union)

	// Ни один товар не требует устройств - пустой результат
	union = SafetyDeviceUnion([]string{"sombrilla-1"}, catalog)
	assert.Empty(t, union)
}
