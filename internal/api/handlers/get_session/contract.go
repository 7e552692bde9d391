package get_session

import (
	"context"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/internal/service/session/models"
)

type SessionService interface {
	Describe(ctx context.Context, sess *domain.Session) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
