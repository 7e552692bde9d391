package create_manual_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/service/appointments/models"
	createBooking "github.com/m04kA/barberbook/internal/usecase/create_booking"
)

type CreateManualBookingUseCase interface {
	ExecuteManual(ctx context.Context, req *createBooking.ManualRequest) (*createBooking.Response, error)
}

type DayReader interface {
	GetDay(ctx context.Context, businessID uuid.UUID, date time.Time) (*models.DaySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
