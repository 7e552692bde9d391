package get_owner_config

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/service/schedule/models"
)

type ScheduleService interface {
	GetConfig(ctx context.Context, accountID uuid.UUID) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
