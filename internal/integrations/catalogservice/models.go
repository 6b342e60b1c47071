package catalogservice

import "github.com/m04kA/BRS-RentalGateway/internal/domain"

// ProductListResponse конверт ответа CatalogService со списком товаров
type ProductListResponse struct {
	Data []domain.Product `json:"data"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Message string `json:"message"`
}
