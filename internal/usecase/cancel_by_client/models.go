package cancel_by_client

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на отмену записи клиентом
type Request struct {
	AppointmentID uuid.UUID
}

// Response модель ответа
type Response struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Date        time.Time
	Status      string
	CancelledAt time.Time
}
