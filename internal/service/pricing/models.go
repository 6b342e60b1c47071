package pricing

import "github.com/shopspring/decimal"

// Quote результат расчёта стоимости бронирования
type Quote struct {
	// Total итоговая стоимость, округлённая банковским округлением
	// до двух знаков; промежуточные шаги не округляются
	Total decimal.Decimal

	// Base стоимость до скидки и страховки: сумма цен за турн
	// выбранных товаров, умноженная на число турнов
	Base decimal.Decimal

	// DiscountAmount размер скидки за несколько товаров (0, если скидки нет)
	DiscountAmount decimal.Decimal

	// InsuranceAmount размер надбавки за страховку от шторма (0, если не выбрана)
	InsuranceAmount decimal.Decimal

	// SafetyDeviceCounts требуемое количество устройств безопасности
	// по названиям; количества суммируются по товарам, не объединяются
	SafetyDeviceCounts map[string]int
}
