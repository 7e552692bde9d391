package block_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/service/appointments/models"
	blockSlots "github.com/m04kA/barberbook/internal/usecase/block_slots"
)

type BlockSlotsUseCase interface {
	Execute(ctx context.Context, req *blockSlots.Request) (*blockSlots.Response, error)
}

type DayReader interface {
	GetDay(ctx context.Context, businessID uuid.UUID, date time.Time) (*models.DaySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
