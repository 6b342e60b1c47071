package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

// Коэффициенты ценообразования
var (
	// multiProductDiscount множитель при выборе более одного товара (скидка 10%)
	multiProductDiscount = decimal.RequireFromString("0.9")

	// stormInsuranceRate множитель страховки от шторма (надбавка 10%),
	// применяется после скидки
	stormInsuranceRate = decimal.RequireFromString("1.1")
)

// Calculate вычисляет стоимость бронирования и потребность в устройствах
// безопасности. Чистая функция без побочных эффектов
//
// Алгоритм:
//  1. Суммируется цена за турн каждого выбранного товара, найденного
//     в каталоге; неизвестные идентификаторы молча пропускаются.
//     Для товаров с обязательной безопасностью к счётчику каждого
//     устройства добавляется число людей.
//  2. Сумма умножается на число турнов.
//  3. При выборе более одного товара применяется скидка 10%.
//  4. При выбранной страховке от шторма применяется надбавка 10%
//     к сумме после скидки.
//
// Итог округляется банковским округлением до двух знаков один раз,
// в самом конце; пустой выбор даёт нулевую стоимость и пустой счётчик
func Calculate(
	selected []string,
	catalog []domain.Product,
	turns int,
	occupants int,
	stormInsurance bool,
) Quote {
	basePerTurn := decimal.Zero
	deviceCounts := make(map[string]int)

	for _, productID := range selected {
		product, ok := domain.FindProduct(catalog, productID)
		if !ok {
			continue
		}

		basePerTurn = basePerTurn.Add(product.PricePerTurn)

		for _, device := range product.RequiredSafetyDevices() {
			deviceCounts[device] += occupants
		}
	}

	base := basePerTurn.Mul(decimal.NewFromInt(int64(turns)))

	afterDiscount := base
	if len(selected) > 1 {
		afterDiscount = base.Mul(multiProductDiscount)
	}
	discountAmount := base.Sub(afterDiscount)

	total := afterDiscount
	insuranceAmount := decimal.Zero
	if stormInsurance {
		total = afterDiscount.Mul(stormInsuranceRate)
		insuranceAmount = total.Sub(afterDiscount)
	}

	return Quote{
		Total:              total.RoundBank(2),
		Base:               base,
		DiscountAmount:     discountAmount,
		InsuranceAmount:    insuranceAmount,
		SafetyDeviceCounts: deviceCounts,
	}
}

// SafetyDeviceUnion возвращает объединение требуемых устройств безопасности
// по выбранным товарам: без дубликатов, в порядке первого появления
// Используется сборщиком черновика бронирования (там нужен список, а не счётчик)
func SafetyDeviceUnion(selected []string, catalog []domain.Product) []string {
	var union []string
	seen := make(map[string]struct{})

	for _, productID := range selected {
		product, ok := domain.FindProduct(catalog, productID)
		if !ok {
			continue
		}
		for _, device := range product.RequiredSafetyDevices() {
			if _, dup := seen[device]; dup {
				continue
			}
			seen[device] = struct{}{}
			union = append(union, device)
		}
	}

	return union
}
