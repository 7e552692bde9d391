package block_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/api/middleware"
	"github.com/m04kA/barberbook/internal/service/appointments/models"
	blockSlots "github.com/m04kA/barberbook/internal/usecase/block_slots"
)

const (
	msgUnauthorized       = "требуется вход"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgBusinessNotFound   = "барбершоп не найден"
	msgPastDate           = "нельзя заблокировать прошедшую дату"
	msgInvalidTimeSlot    = "выбранное время не входит в расписание"
	msgNothingToBlock     = "выберите слоты для блокировки"
)

type Handler struct {
	useCase BlockSlotsUseCase
	days    DayReader
	logger  Logger
}

func NewHandler(useCase BlockSlotsUseCase, days DayReader, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		days:    days,
		logger:  logger,
	}
}

// Handle POST /api/v1/owner/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BlockSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owner/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(businessID)
	if err != nil {
		h.logger.Warn("POST /owner/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockSlots.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, blockSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, blockSlots.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, blockSlots.ErrNothingToBlock), errors.Is(err, blockSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgNothingToBlock)

		default:
			h.logger.Error("POST /owner/blocks - Failed to block slots: business=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	day, err := h.days.GetDay(r.Context(), businessID, result.Date)
	if err != nil {
		h.logger.Error("POST /owner/blocks - Failed to reload day: business=%s, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /owner/blocks - Blocked %d slots, skipped %d: business=%s",
		len(result.Blocked), len(result.Skipped), businessID)

	handlers.RespondJSON(w, http.StatusOK, &BlockSlotsResponse{
		Blocked:  models.TimesToStrings(result.Blocked),
		Skipped:  models.TimesToStrings(result.Skipped),
		Schedule: day,
	})
}
