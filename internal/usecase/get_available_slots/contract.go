package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// OccupiedTimes возвращает время неотмененных записей барбершопа на дату
	OccupiedTimes(ctx context.Context, businessID uuid.UUID, date time.Time) ([]types.TimeString, error)
}

// BusinessResolver разрешает публичный slug в барбершоп
type BusinessResolver interface {
	ResolveSlug(ctx context.Context, slug string) (*domain.Business, error)
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
