package update_owner_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/service/schedule"
	"github.com/m04kA/barberbook/internal/service/schedule/models"
)

const (
	msgUnauthorized       = "требуется вход"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccountNotFound    = "аккаунт не найден"
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

// Handle PUT /api/v1/owner/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /owner/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateConfig(r.Context(), accountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidConfig):
			// Текст ошибки валидации понятен владельцу, отдаем как есть
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, schedule.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgAccountNotFound)

		default:
			h.logger.Error("PUT /owner/config - Failed to update config: account=%s, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /owner/config - Config updated: account=%s", accountID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
