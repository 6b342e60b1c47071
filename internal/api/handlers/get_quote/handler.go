package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRS-RentalGateway/internal/api/handlers"
	"github.com/m04kA/BRS-RentalGateway/internal/api/middleware"
	"github.com/m04kA/BRS-RentalGateway/internal/domain"
	"github.com/m04kA/BRS-RentalGateway/internal/integrations/catalogservice"
	"github.com/m04kA/BRS-RentalGateway/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTurns       = "число турнов должно быть от 1 до 3"
	msgInvalidOccupants   = "число человек должно быть от 1 до 2"
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

// Handle POST /api/v1/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Turns < domain.MinTurns || req.Turns > domain.MaxTurns {
		handlers.RespondBadRequest(w, msgInvalidTurns)
		return
	}
	if req.Occupants < domain.MinOccupants || req.Occupants > domain.MaxOccupants {
		handlers.RespondBadRequest(w, msgInvalidOccupants)
		return
	}

	token := middleware.TokenFromContext(r.Context())

	catalog, err := h.catalogClient.GetProducts(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrUnauthorized):
			h.logger.Warn("POST /quote - Unauthorized: %v", err)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, catalogservice.ErrUnavailable):
			h.logger.Error("POST /quote - Catalog service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /quote - Failed to fetch catalog: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	quote := pricing.Calculate(req.ProductIDs, catalog, req.Turns, req.Occupants, req.StormInsurance)
	devices := pricing.SafetyDeviceUnion(req.ProductIDs, catalog)

	h.logger.Info("POST /quote - Calculated quote: products=%d, turns=%d, total=%s",
		len(req.ProductIDs), req.Turns, quote.Total.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, FromQuote(quote, devices))
}
