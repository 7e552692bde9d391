package cancel_by_client

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	cancelByClient "github.com/m04kA/barberbook/internal/usecase/cancel_by_client"
)

// CancelResponse HTTP response model
type CancelResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CancelledAt string    `json:"cancelledAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *cancelByClient.Response) *CancelResponse {
	return &CancelResponse{
		ID:          resp.ID,
		Date:        resp.Date.Format(domain.DateFormat),
		Status:      resp.Status,
		CancelledAt: resp.CancelledAt.Format(time.RFC3339),
	}
}
