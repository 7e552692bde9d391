package update_owner_config

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateConfig(ctx context.Context, accountID uuid.UUID, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
