package block_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/internal/service/appointments/models"
	blockSlots "github.com/m04kA/barberbook/internal/usecase/block_slots"
	"github.com/m04kA/barberbook/pkg/types"
)

// BlockSlotsRequest HTTP request model
type BlockSlotsRequest struct {
	Date     string   `json:"date"`
	Times    []string `json:"times"`
	WholeDay bool     `json:"wholeDay"`
}

// BlockSlotsResponse HTTP response model
type BlockSlotsResponse struct {
	Blocked  []string            `json:"blocked"`
	Skipped  []string            `json:"skipped"`
	Schedule *models.DaySchedule `json:"schedule"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockSlotsRequest) ToUseCaseRequest(businessID uuid.UUID) (*blockSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	times := make([]types.TimeString, 0, len(r.Times))
	for _, raw := range r.Times {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}

	return &blockSlots.Request{
		BusinessID: businessID,
		Date:       date,
		Times:      times,
		WholeDay:   r.WholeDay,
	}, nil
}
