package business

import (
	"context"

	"github.com/m04kA/barberbook/internal/domain"
)

// AccountRepository интерфейс репозитория аккаунтов
type AccountRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Account, error)
}

// Cache интерфейс кэша барбершопов по slug
type Cache interface {
	Get(slug string) (*domain.Business, bool)
	Store(b *domain.Business)
	Invalidate(slug string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
