package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barberbook/internal/domain"
	businessService "github.com/m04kA/barberbook/internal/service/business"
)

// UseCase use case для получения доступных слотов публичной страницы
type UseCase struct {
	appointmentRepo AppointmentRepository
	businesses      BusinessResolver
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businesses BusinessResolver,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		businesses:      businesses,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Для неизвестного slug запросы к записям не выполняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: slug=%s, date=%s", req.Slug, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем барбершоп
	business, err := uc.businesses.ResolveSlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessService.ErrBusinessNotFound) || errors.Is(err, businessService.ErrInvalidSlug) {
			uc.logger.Warn("GetAvailableSlots: business slug=%s not found", req.Slug)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to resolve business: %v", ErrInternal, err)
	}

	// 3. Дата не может быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now().In(uc.location)) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Генерируем сетку слотов
	candidates, err := business.Config.CandidateSlots()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: business=%s has unusable config: %v", business.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
	}

	// 5. Получаем занятое время
	occupied, err := uc.appointmentRepo.OccupiedTimes(ctx, business.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied slots for business=%s: %v", business.ID, err)
		return nil, fmt.Errorf("%w: failed to get occupied slots: %v", ErrInternal, err)
	}

	bookable := domain.BookableSlots(candidates, occupied)
	uc.logger.Info("GetAvailableSlots: business=%s, %d/%d slots available", business.ID, len(bookable), len(candidates))

	return &Response{
		Date:     req.Date,
		Business: *business,
		Occupied: occupied,
		Slots:    domain.ResolveSlots(candidates, occupied),
		Bookable: bookable,
	}, nil
}
