package get_business

import (
	"context"

	"github.com/m04kA/barberbook/internal/domain"
)

type BusinessService interface {
	ResolveSlug(ctx context.Context, slug string) (*domain.Business, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
