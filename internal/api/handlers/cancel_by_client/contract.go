package cancel_by_client

import (
	"context"

	cancelByClient "github.com/m04kA/barberbook/internal/usecase/cancel_by_client"
)

type CancelByClientUseCase interface {
	Execute(ctx context.Context, req *cancelByClient.Request) (*cancelByClient.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
