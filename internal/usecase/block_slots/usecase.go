package block_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barberbook/internal/domain"
	scheduleService "github.com/m04kA/barberbook/internal/service/schedule"
)

// UseCase use case для блокировки слотов владельцем
// Блокировка хранится как запись со статусом blocked, поэтому занятость считается одинаково
type UseCase struct {
	appointmentRepo AppointmentRepository
	configs         ConfigProvider
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, configs ConfigProvider, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configs:         configs,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute блокирует выбранные слоты или весь день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockSlots: business=%s, date=%s, times=%v, wholeDay=%t",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.Times, req.WholeDay)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockSlots: validation failed: %v", err)
		return nil, err
	}

	if isDateInPast(req.Date, uc.timeProvider.Now().In(uc.location)) {
		uc.logger.Warn("BlockSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Получаем сетку слотов дня
	config, err := uc.configs.EffectiveConfig(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrAccountNotFound) {
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("BlockSlots: failed to get config for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	candidates, err := config.CandidateSlots()
	if err != nil {
		uc.logger.Error("BlockSlots: business=%s has unusable config: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: schedule is misconfigured: %v", ErrInvalidTimeSlot, err)
	}

	// 3. Определяем, что блокировать
	times := candidates
	if !req.WholeDay {
		times, err = selectTimes(candidates, req.Times)
		if err != nil {
			uc.logger.Warn("BlockSlots: %v", err)
			return nil, err
		}
	}

	// 4. Создаем блокировки одним запросом, конфликтующие слоты пропускаются
	blocked, err := uc.appointmentRepo.CreateBlocks(ctx, req.BusinessID, req.Date, times)
	if err != nil {
		uc.logger.Error("BlockSlots: failed to create blocks for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to create blocks: %v", ErrInternal, err)
	}

	skipped := difference(times, blocked)
	uc.logger.Info("BlockSlots: business=%s, blocked=%d, skipped=%d", req.BusinessID, len(blocked), len(skipped))

	return &Response{
		Date:    req.Date,
		Blocked: blocked,
		Skipped: skipped,
	}, nil
}
