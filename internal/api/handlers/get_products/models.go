package get_products

import "github.com/m04kA/BRS-RentalGateway/internal/domain"

// ProductResponse HTTP model товара каталога
type ProductResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	PricePerTurn   string   `json:"pricePerTurn"`
	RequiresSafety bool     `json:"requiresSafety"`
	SafetyDevices  []string `json:"safetyDevices,omitempty"`
	MaxCapacity    int      `json:"maxCapacity"`
}

// ProductListResponse HTTP response model
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// FromDomainProducts конвертирует товары каталога в HTTP response
func FromDomainProducts(products []domain.Product) *ProductListResponse {
	resp := &ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
	}

	for _, p := range products {
		resp.Products = append(resp.Products, ProductResponse{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			Type:           p.Type,
			PricePerTurn:   p.PricePerTurn.StringFixed(2),
			RequiresSafety: p.RequiresSafety,
			SafetyDevices:  p.SafetyDevices,
			MaxCapacity:    p.MaxCapacity,
		})
	}

	return resp
}
