package get_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.PublicAppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
