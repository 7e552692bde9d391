package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	createBooking "github.com/m04kA/barberbook/internal/usecase/create_booking"
	"github.com/m04kA/barberbook/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string `json:"date"` // "2025-10-15"
	Time        string `json:"time"` // "10:00"
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"businessId"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	ClientName string    `json:"clientName"`
	Status     string    `json:"status"`
	CreatedAt  string    `json:"createdAt"`
}

// SlotTakenResponse тело ответа 409: клиент обновляет сетку без повторного запроса
type SlotTakenResponse struct {
	Message  string   `json:"message"`
	Occupied []string `json:"occupied"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(slug string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Slug:        slug,
		Date:        date,
		Time:        t,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		BusinessID: resp.BusinessID,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.Time.String(),
		ClientName: resp.ClientName,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}

// NewSlotTakenResponse формирует тело ответа 409
func NewSlotTakenResponse(message string, occupied []types.TimeString) *SlotTakenResponse {
	resp := &SlotTakenResponse{Message: message, Occupied: make([]string, 0, len(occupied))}
	for _, t := range occupied {
		resp.Occupied = append(resp.Occupied, t.String())
	}
	return resp
}
