package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	OccupiedTimes(ctx context.Context, businessID uuid.UUID, date time.Time) ([]types.TimeString, error)
}

// BusinessResolver разрешает публичный slug в барбершоп
type BusinessResolver interface {
	ResolveSlug(ctx context.Context, slug string) (*domain.Business, error)
}

// ConfigProvider возвращает действующее расписание владельца
type ConfigProvider interface {
	EffectiveConfig(ctx context.Context, accountID uuid.UUID) (domain.ScheduleConfig, error)
}

// Metrics учитывает попытки бронирования
type Metrics interface {
	ObserveBooking(source, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
