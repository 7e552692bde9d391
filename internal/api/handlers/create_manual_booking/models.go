package create_manual_booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	createBooking "github.com/m04kA/barberbook/internal/usecase/create_booking"
	"github.com/m04kA/barberbook/pkg/types"
)

// ManualBookingRequest HTTP request model
type ManualBookingRequest struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	Notes       *string `json:"notes,omitempty"`
}

// SlotTakenResponse тело ответа 409
type SlotTakenResponse struct {
	Message  string   `json:"message"`
	Occupied []string `json:"occupied"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ManualBookingRequest) ToUseCaseRequest(businessID uuid.UUID) (*createBooking.ManualRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	req := &createBooking.ManualRequest{
		BusinessID:  businessID,
		Date:        date,
		Time:        t,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
	}
	if r.Notes != nil && strings.TrimSpace(*r.Notes) != "" {
		req.Notes = r.Notes
	}

	return req, nil
}
