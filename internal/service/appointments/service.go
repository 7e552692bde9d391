package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	appointmentRepo "github.com/m04kA/barberbook/internal/infra/storage/appointment"
	"github.com/m04kA/barberbook/internal/service/appointments/models"
	scheduleService "github.com/m04kA/barberbook/internal/service/schedule"
	schedulemodels "github.com/m04kA/barberbook/internal/service/schedule/models"
)

// Service сервис записей для кабинета владельца
type Service struct {
	appointmentRepo AppointmentRepository
	configs         ConfigProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, configs ConfigProvider, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		configs:         configs,
		logger:          logger,
	}
}

// GetDay возвращает день барбершопа: все записи (включая отмененные), занятые слоты и сетку слотов
func (s *Service) GetDay(ctx context.Context, businessID uuid.UUID, date time.Time) (*models.DaySchedule, error) {
	s.logger.Info("GetDay: business=%s, date=%s", businessID, date.Format(domain.DateFormat))

	// 1. Действующее расписание
	config, isDefault, err := s.configs.ResolveConfig(ctx, businessID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrAccountNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetDay: failed to get config for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetDay - get config: %v", ErrInternal, err)
	}

	candidates, err := config.CandidateSlots()
	if err != nil {
		s.logger.Error("GetDay: business=%s has unusable config: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetDay - candidate slots: %v", ErrScheduleMisconfigured, err)
	}

	// 2. Записи дня
	appointments, err := s.appointmentRepo.ListByFilter(ctx, domain.AppointmentFilter{
		BusinessID:       businessID,
		Date:             date,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("GetDay: failed to list appointments for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetDay - list appointments: %v", ErrInternal, err)
	}

	// 3. Занятость и сетка слотов
	occupied := domain.OccupiedTimes(appointments)

	day := &models.DaySchedule{
		Date:         date.Format(domain.DateFormat),
		Config:       schedulemodels.FromDomainConfig(config, isDefault),
		Appointments: make([]models.AppointmentResponse, 0, len(appointments)),
		Occupied:     models.TimesToStrings(occupied),
		Slots:        models.FromDomainSlots(domain.ResolveSlots(candidates, occupied)),
	}
	for _, a := range appointments {
		day.Appointments = append(day.Appointments, models.FromDomain(a))
	}

	return day, nil
}

// Cancel отменяет запись барбершопа владельцем
// Возвращает отмененную запись, чтобы вызывающий код мог перечитать ее день
func (s *Service) Cancel(ctx context.Context, businessID, appointmentID uuid.UUID) (*domain.Appointment, error) {
	s.logger.Info("Cancel: business=%s, appointment=%s", businessID, appointmentID)

	// 1. Проверяем существование и принадлежность
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to get appointment=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - get appointment: %v", ErrInternal, err)
	}

	if appointment.BusinessID != businessID {
		s.logger.Warn("Cancel: appointment=%s does not belong to business=%s", appointmentID, businessID)
		return nil, ErrAppointmentNotFound
	}

	if appointment.Status == domain.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	// 2. Переводим в статус cancelled
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, &businessID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// Запись отменили между чтением и обновлением
			return nil, ErrAlreadyCancelled
		}
		s.logger.Error("Cancel: failed to cancel appointment=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: Cancel - cancel appointment: %v", ErrInternal, err)
	}

	appointment.Status = domain.StatusCancelled
	s.logger.Info("Cancel: appointment=%s cancelled", appointmentID)

	return appointment, nil
}

// GetByIDs возвращает публичные представления записей "с этого устройства"
func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.PublicAppointmentResponse, error) {
	if len(ids) > domain.MaxLookupIDs {
		return nil, ErrTooManyIDs
	}

	appointments, err := s.appointmentRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("GetByIDs: failed to get %d appointments: %v", len(ids), err)
		return nil, fmt.Errorf("%w: GetByIDs - repository error: %v", ErrInternal, err)
	}

	result := make([]models.PublicAppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, models.PublicFromDomain(a))
	}

	return result, nil
}
