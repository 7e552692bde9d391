package get_business

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/service/business"
)

const (
	msgBusinessNotFound = "барбершоп не найден"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.service.ResolveSlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound), errors.Is(err, business.ErrInvalidSlug):
			h.logger.Warn("GET /businesses/{slug} - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /businesses/{slug} - Failed to resolve business: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
