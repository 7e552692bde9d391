package middleware

import (
	"context"

	"github.com/m04kA/barberbook/internal/domain"
)

// SessionResolver проверяет токен сессии
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
