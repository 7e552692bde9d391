package create_manual_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/service/appointments/models"
	createBooking "github.com/m04kA/barberbook/internal/usecase/create_booking"
)

const (
	msgUnauthorized       = "требуется вход"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken          = "это время уже занято"
	msgBusinessNotFound   = "барбершоп не найден"
	msgInvalidBookingDate = "нельзя записать клиента на прошедшую дату"
	msgInvalidTimeSlot    = "выбранное время не входит в расписание"
	msgInvalidInput       = "укажите имя клиента"
)

type Handler struct {
	useCase CreateManualBookingUseCase
	days    DayReader
	logger  Logger
}

func NewHandler(useCase CreateManualBookingUseCase, days DayReader, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		days:    days,
		logger:  logger,
	}
}

// Handle POST /api/v1/owner/appointments
// В ответе обновленный день, чтобы кабинет перерисовал список без отдельного запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ManualBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owner/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /owner/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.ExecuteManual(r.Context(), useCaseReq)
	if err != nil {
		var slotTaken *createBooking.SlotTakenError

		switch {
		case errors.As(err, &slotTaken):
			handlers.RespondJSON(w, http.StatusConflict, &SlotTakenResponse{
				Message:  msgSlotTaken,
				Occupied: models.TimesToStrings(slotTaken.Occupied),
			})

		case errors.Is(err, createBooking.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /owner/appointments - Failed to create appointment: business=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	day, err := h.days.GetDay(r.Context(), businessID, result.Date)
	if err != nil {
		h.logger.Error("POST /owner/appointments - Failed to reload day: business=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /owner/appointments - Manual appointment created: id=%s, business=%s", result.ID, businessID)
	handlers.RespondJSON(w, http.StatusCreated, day)
}
