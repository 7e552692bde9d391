package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/barberbook/internal/api/handlers"
	createBooking "github.com/m04kA/barberbook/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken          = "это время только что заняли, выберите другое"
	msgBusinessNotFound   = "барбершоп не найден"
	msgInvalidBookingDate = "нельзя записаться на прошедшую дату"
	msgInvalidTimeSlot    = "выбранное время недоступно для записи"
	msgInvalidInput       = "укажите имя клиента"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{slug}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{slug}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(slug)
	if err != nil {
		h.logger.Warn("POST /businesses/{slug}/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotTaken *createBooking.SlotTakenError

		switch {
		case errors.As(err, &slotTaken):
			h.logger.Warn("POST /businesses/{slug}/appointments - Slot taken: slug=%s, date=%s, time=%s",
				slug, req.Date, req.Time)
			handlers.RespondJSON(w, http.StatusConflict, NewSlotTakenResponse(msgSlotTaken, slotTaken.Occupied))

		case errors.Is(err, createBooking.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /businesses/{slug}/appointments - Failed to create appointment: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{slug}/appointments - Appointment created: id=%s, slug=%s", result.ID, slug)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
