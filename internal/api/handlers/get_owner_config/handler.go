package get_owner_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/service/schedule"
)

const (
	msgUnauthorized    = "требуется вход"
	msgAccountNotFound = "аккаунт не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owner/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetConfig(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgAccountNotFound)

		default:
			h.logger.Error("GET /owner/config - Failed to get config: account=%s, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
