package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	accountRepo "github.com/m04kA/barberbook/internal/infra/storage/account"
	"github.com/m04kA/barberbook/internal/service/schedule/models"
)

// Service сервис расписания владельца
type Service struct {
	accountRepo AccountRepository
	cache       BusinessCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(accountRepo AccountRepository, cache BusinessCache, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		cache:       cache,
		logger:      logger,
	}
}

// EffectiveConfig возвращает сохраненное расписание или расписание по умолчанию
func (s *Service) EffectiveConfig(ctx context.Context, accountID uuid.UUID) (domain.ScheduleConfig, error) {
	account, err := s.getAccount(ctx, "EffectiveConfig", accountID)
	if err != nil {
		return domain.ScheduleConfig{}, err
	}
	return account.EffectiveConfig(), nil
}

// ResolveConfig возвращает действующее расписание и признак того, что оно не сохранено владельцем
func (s *Service) ResolveConfig(ctx context.Context, accountID uuid.UUID) (domain.ScheduleConfig, bool, error) {
	account, err := s.getAccount(ctx, "ResolveConfig", accountID)
	if err != nil {
		return domain.ScheduleConfig{}, false, err
	}
	return account.EffectiveConfig(), account.Config == nil, nil
}

// GetConfig возвращает расписание владельца
func (s *Service) GetConfig(ctx context.Context, accountID uuid.UUID) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: account=%s", accountID)

	account, err := s.getAccount(ctx, "GetConfig", accountID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainConfig(account.EffectiveConfig(), account.Config == nil), nil
}

// UpdateConfig сохраняет расписание владельца
// Несогласованное расписание (перерыв вне рабочих часов, неположительная длительность и т.п.)
// отклоняется при сохранении, а не при генерации слотов
func (s *Service) UpdateConfig(ctx context.Context, accountID uuid.UUID, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: account=%s, open=%s, close=%s, break=%s-%s, duration=%d",
		accountID, req.Open, req.Close, req.BreakStart, req.BreakEnd, req.SlotDurationMinutes)

	// 1. Парсим время
	cfg, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateConfig: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 2. Проверяем согласованность расписания
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 3. Сохраняем
	account, err := s.accountRepo.UpdateScheduleConfig(ctx, accountID, cfg)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("UpdateConfig: account=%s not found", accountID)
			return nil, ErrAccountNotFound
		}
		s.logger.Error("UpdateConfig: repository error for account=%s: %v", accountID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	// 4. Публичная страница должна увидеть новое расписание
	if s.cache != nil && account.Slug != nil {
		s.cache.Invalidate(*account.Slug)
	}

	s.logger.Info("UpdateConfig: saved config for account=%s", accountID)
	return models.FromDomainConfig(account.EffectiveConfig(), account.Config == nil), nil
}

func (s *Service) getAccount(ctx context.Context, op string, accountID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("%s: account=%s not found", op, accountID)
			return nil, ErrAccountNotFound
		}
		s.logger.Error("%s: repository error for account=%s: %v", op, accountID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return account, nil
}
