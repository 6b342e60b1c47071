package domain

import "github.com/shopspring/decimal"

// Product товар каталога проката (шезлонг, каяк, доска SUP и т.д.)
// Неизменяем после получения из CatalogService; JSON поля соответствуют
// контракту внешнего API
type Product struct {
	ID             string          `json:"_id"`
	Name           string          `json:"nombre"`
	Description    string          `json:"descripcion"`
	Type           string          `json:"tipo"`
	PricePerTurn   decimal.Decimal `json:"precio_por_turno"`
	RequiresSafety bool            `json:"requiere_seguridad"`
	SafetyDevices  []string        `json:"dispositivos_seguridad"`
	MaxCapacity    int             `json:"capacidad_maxima"`
}

// RequiredSafetyDevices возвращает список обязательных устройств безопасности
// Пустой список, если товар их не требует
func (p *Product) RequiredSafetyDevices() []string {
	if !p.RequiresSafety {
		return nil
	}
	return p.SafetyDevices
}

// FindProduct ищет товар в каталоге по идентификатору
func FindProduct(catalog []Product, id string) (*Product, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}
