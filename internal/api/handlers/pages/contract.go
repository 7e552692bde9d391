package pages

import (
	"context"
	"time"

	"github.com/google/uuid"

	appointmentmodels "github.com/m04kA/barberbook/internal/service/appointments/models"
	"github.com/m04kA/barberbook/internal/service/session/models"
	getAvailableSlots "github.com/m04kA/barberbook/internal/usecase/get_available_slots"
)

type SessionService interface {
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error)
	SignOut(ctx context.Context, token string) error
}

type DayReader interface {
	GetDay(ctx context.Context, businessID uuid.UUID, date time.Time) (*appointmentmodels.DaySchedule, error)
}

type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
