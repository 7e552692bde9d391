package get_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/service/appointments"
)

const (
	msgInvalidIDs = "некорректный список ID записей"
	msgTooManyIDs = "слишком много ID записей в запросе"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?ids=<uuid>,<uuid>
// Записи "с этого устройства": клиент передает ID, сохраненные локально
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ids, err := ParseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid ids: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	result, err := h.service.GetByIDs(r.Context(), ids)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrTooManyIDs):
			handlers.RespondBadRequest(w, msgTooManyIDs)

		default:
			h.logger.Error("GET /appointments - Failed to get appointments: count=%d, error=%v", len(ids), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
