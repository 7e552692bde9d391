package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/barberbook/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/barberbook/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBusinessNotFound      = "барбершоп не найден"
	msgPastDate              = "нельзя записаться на прошедшую дату"
	msgInvalidParams         = "некорректные параметры запроса"
	msgMisconfiguredSchedule = "расписание барбершопа настроено некорректно"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/businesses/{slug}/available-slots
// Query params: date (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	date, err := handlers.ParseDate(r.URL.Query().Get("date"), time.Now(), h.location)
	if err != nil {
		h.logger.Warn("GET /businesses/{slug}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Slug: slug, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug}/available-slots - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrScheduleMisconfigured):
			h.logger.Error("GET /businesses/{slug}/available-slots - Misconfigured schedule: slug=%s, error=%v", slug, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgMisconfiguredSchedule)

		default:
			h.logger.Error("GET /businesses/{slug}/available-slots - Failed to get slots: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
