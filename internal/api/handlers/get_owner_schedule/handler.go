package get_owner_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/service/appointments"
)

const (
	msgUnauthorized     = "требуется вход"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBusinessNotFound = "барбершоп не найден"
	msgMisconfigured    = "расписание настроено некорректно, проверьте часы работы"
)

type Handler struct {
	service  AppointmentService
	location *time.Location
	logger   Logger
}

func NewHandler(service AppointmentService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/owner/schedule
// Query params: date (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"), time.Now(), h.location)
	if err != nil {
		h.logger.Warn("GET /owner/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDay(r.Context(), businessID, date)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, appointments.ErrScheduleMisconfigured):
			h.logger.Warn("GET /owner/schedule - Misconfigured schedule: business=%s, error=%v", businessID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgMisconfigured)

		default:
			h.logger.Error("GET /owner/schedule - Failed to get schedule: business=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
