package get_products

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/catalogservice"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgCatalogUnavailable = "каталог временно недоступен"
)

type Handler struct {
	catalogClient CatalogServiceClient
	logger        Logger
}

func NewHandler(catalogClient CatalogServiceClient, logger Logger) *Handler {
	return &Handler{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Handle GET /api/v1/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromContext(r.Context())

	products, err := h.catalogClient.GetProducts(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrUnauthorized):
			h.logger.Warn("GET /products - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, catalogservice.ErrUnavailable):
			h.logger.Error("GET /products - Catalog service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /products - Failed to fetch products: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products - Fetched %d products", len(products))
	handlers.RespondJSON(w, http.StatusOK, FromDomainProducts(products))
}
