package get_appointment

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/barberbook/internal/api/handlers"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.GetByIDs(r.Context(), []uuid.UUID{id})
	if err != nil {
		h.logger.Error("GET /appointments/{id} - Failed to get appointment: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	if len(result) == 0 {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result[0])
}
