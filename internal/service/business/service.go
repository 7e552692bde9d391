package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barberbook/internal/domain"
	accountRepo "github.com/m04kA/barberbook/internal/infra/storage/account"
)

// Service разрешает публичный slug в барбершоп
type Service struct {
	accountRepo AccountRepository
	cache       Cache
	logger      Logger
}

// NewService создает сервис, cache может быть nil
func NewService(accountRepo AccountRepository, cache Cache, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		cache:       cache,
		logger:      logger,
	}
}

// ResolveSlug возвращает барбершоп по slug
// Если расписание не сохранено, подставляется расписание по умолчанию
func (s *Service) ResolveSlug(ctx context.Context, slug string) (*domain.Business, error) {
	slug = domain.NormalizeSlug(slug)
	if slug == "" || len(slug) > domain.MaxSlugLength {
		return nil, ErrInvalidSlug
	}

	if s.cache != nil {
		if b, ok := s.cache.Get(slug); ok {
			return b, nil
		}
	}

	account, err := s.accountRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("ResolveSlug: slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("ResolveSlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: ResolveSlug - repository error: %v", ErrInternal, err)
	}

	if !account.Role.CanManageSchedule() {
		s.logger.Warn("ResolveSlug: slug=%s belongs to account without schedule role=%s", slug, account.Role)
		return nil, ErrBusinessNotFound
	}

	b := domain.BusinessFromAccount(account)
	if s.cache != nil {
		s.cache.Store(b)
	}

	return b, nil
}

// Invalidate сбрасывает кэш для slug после изменения профиля
func (s *Service) Invalidate(slug string) {
	if s.cache == nil || slug == "" {
		return
	}
	s.cache.Invalidate(domain.NormalizeSlug(slug))
}
