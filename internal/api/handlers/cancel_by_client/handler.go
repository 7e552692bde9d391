package cancel_by_client

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/barberbook/internal/api/handlers"
	cancelByClient "github.com/m04kA/barberbook/internal/usecase/cancel_by_client"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgNotCancellable       = "запись уже отменена"
	msgTooLate              = "отменить запись можно не позднее чем за 2 часа"
)

type Handler struct {
	useCase CancelByClientUseCase
	logger  Logger
}

func NewHandler(useCase CancelByClientUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/client-cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/client-cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelByClient.Request{AppointmentID: id})
	if err != nil {
		switch {
		case errors.Is(err, cancelByClient.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelByClient.ErrNotCancellable):
			handlers.RespondConflict(w, msgNotCancellable)

		case errors.Is(err, cancelByClient.ErrTooLateToCancel):
			handlers.RespondBadRequest(w, msgTooLate)

		default:
			h.logger.Error("POST /appointments/{id}/client-cancel - Failed to cancel: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/client-cancel - Appointment cancelled: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
