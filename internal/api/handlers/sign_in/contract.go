package sign_in

import (
	"context"

	"github.com/m04kA/barberbook/internal/service/session/models"
)

type SessionService interface {
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
