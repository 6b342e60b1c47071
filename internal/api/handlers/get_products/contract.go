package get_products

import (
	"context"

	"github.com/m04kA/BRS-RentalGateway/internal/domain"
)

type CatalogServiceClient interface {
	GetProducts(ctx context.Context, token string) ([]domain.Product, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
