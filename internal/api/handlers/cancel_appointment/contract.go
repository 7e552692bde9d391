package cancel_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/internal/service/appointments/models"
)

type AppointmentService interface {
	Cancel(ctx context.Context, businessID, appointmentID uuid.UUID) (*domain.Appointment, error)
	GetDay(ctx context.Context, businessID uuid.UUID, date time.Time) (*models.DaySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
