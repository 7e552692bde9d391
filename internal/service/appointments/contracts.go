package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Appointment, error)
	ListByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID, businessID *uuid.UUID) error
}

// ConfigProvider возвращает действующее расписание барбершопа
type ConfigProvider interface {
	// ResolveConfig возвращает расписание и признак расписания по умолчанию (владелец не сохранял свое)
	ResolveConfig(ctx context.Context, accountID uuid.UUID) (domain.ScheduleConfig, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
