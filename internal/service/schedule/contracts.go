package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
)

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateScheduleConfig(ctx context.Context, id uuid.UUID, config domain.ScheduleConfig) (*domain.Account, error)
}

// BusinessCache сбрасывает закэшированный барбершоп после изменения расписания
type BusinessCache interface {
	Invalidate(slug string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
