package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	apptmodels "github.com/m04kA/barberbook/internal/service/appointments/models"
	getAvailableSlots "github.com/m04kA/barberbook/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date         string                    `json:"date"`
	BusinessID   uuid.UUID                 `json:"businessId"`
	BusinessName string                    `json:"businessName"`
	Slug         string                    `json:"slug"`
	Slots        []apptmodels.SlotResponse `json:"slots"`
	Occupied     []string                  `json:"occupied"`
	Bookable     []string                  `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		BusinessID:   resp.Business.ID,
		BusinessName: resp.Business.Name,
		Slug:         resp.Business.Slug,
		Slots:        apptmodels.FromDomainSlots(resp.Slots),
		Occupied:     apptmodels.TimesToStrings(resp.Occupied),
		Bookable:     apptmodels.TimesToStrings(resp.Bookable),
	}
}
