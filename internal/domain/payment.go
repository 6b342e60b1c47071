package domain

// PaymentMethod способ оплаты бронирования
// Фиксируется в черновике, списание средств выполняется вне системы
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "efectivo"
	PaymentCashForeign PaymentMethod = "efectivo-extranjera"
	PaymentCard        PaymentMethod = "tarjeta"
)

// IsValid проверяет, что способ оплаты входит в допустимый набор
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCashForeign, PaymentCard:
		return true
	default:
		return false
	}
}

// RequiresEarlyPayment возвращает true для наличных способов оплаты:
// оплата наличными должна быть внесена за 2 часа до начала турна
func (m PaymentMethod) RequiresEarlyPayment() bool {
	return m == PaymentCash || m == PaymentCashForeign
}
