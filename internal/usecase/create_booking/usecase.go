package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	appointmentRepo "github.com/m04kA/barberbook/internal/infra/storage/appointment"
	businessService "github.com/m04kA/barberbook/internal/service/business"
	scheduleService "github.com/m04kA/barberbook/internal/service/schedule"
	"github.com/m04kA/barberbook/pkg/ptr"
	"github.com/m04kA/barberbook/pkg/types"
)

const (
	resultCreated   = "created"
	resultSlotTaken = "slot_taken"
	resultRejected  = "rejected"
	resultError     = "error"
)

// UseCase use case для создания записи
// Гонка за слот решается уникальным индексом в БД, блокировок на уровне приложения нет
type UseCase struct {
	appointmentRepo AppointmentRepository
	businesses      BusinessResolver
	configs         ConfigProvider
	metrics         Metrics
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businesses BusinessResolver,
	configs ConfigProvider,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		businesses:      businesses,
		configs:         configs,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет публичное бронирование по slug барбершопа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slug=%s, date=%s, time=%s",
		req.Slug, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	name, phone, err := validateClient(req.Date, req.Time, req.ClientName, req.ClientPhone)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.observe(SourcePublic, resultRejected)
		return nil, err
	}

	// 2. Получаем барбершоп
	business, err := uc.businesses.ResolveSlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessService.ErrBusinessNotFound) || errors.Is(err, businessService.ErrInvalidSlug) {
			uc.logger.Warn("CreateBooking: business slug=%s not found", req.Slug)
			uc.observe(SourcePublic, resultRejected)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to resolve slug=%s: %v", req.Slug, err)
		uc.observe(SourcePublic, resultError)
		return nil, fmt.Errorf("%w: failed to resolve business: %v", ErrInternal, err)
	}

	// 3. Создаем запись
	return uc.book(ctx, SourcePublic, business.Config, &domain.Appointment{
		BusinessID:      business.ID,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
		ClientName:      name,
		ClientPhone:     phone,
		Status:          domain.StatusScheduled,
	})
}

// ExecuteManual выполняет ручную запись владельцем в свой барбершоп
func (uc *UseCase) ExecuteManual(ctx context.Context, req *ManualRequest) (*Response, error) {
	uc.logger.Info("CreateManualBooking: business=%s, date=%s, time=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	name, phone, err := validateClient(req.Date, req.Time, req.ClientName, req.ClientPhone)
	if err != nil {
		uc.logger.Warn("CreateManualBooking: validation failed: %v", err)
		uc.observe(SourceManual, resultRejected)
		return nil, err
	}

	notes := req.Notes
	if notes == nil || *notes == "" {
		notes = ptr.Ptr(domain.NotesManual)
	}
	if len(*notes) > domain.MaxNotesLength {
		uc.observe(SourceManual, resultRejected)
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	// 2. Получаем действующее расписание
	config, err := uc.configs.EffectiveConfig(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrAccountNotFound) {
			uc.observe(SourceManual, resultRejected)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateManualBooking: failed to get config for business=%s: %v", req.BusinessID, err)
		uc.observe(SourceManual, resultError)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 3. Создаем запись
	return uc.book(ctx, SourceManual, config, &domain.Appointment{
		BusinessID:      req.BusinessID,
		AppointmentDate: req.Date,
		AppointmentTime: req.Time,
		ClientName:      name,
		ClientPhone:     phone,
		Status:          domain.StatusScheduled,
		Notes:           notes,
	})
}

func (uc *UseCase) book(ctx context.Context, source string, config domain.ScheduleConfig, appointment *domain.Appointment) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)

	// Дата не может быть в прошлом
	if isDateInPast(appointment.AppointmentDate, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", appointment.AppointmentDate.Format(domain.DateFormat))
		uc.observe(source, resultRejected)
		return nil, ErrInvalidDate
	}

	// Время должно входить в сетку слотов
	if err := validateSlot(config, appointment.AppointmentTime); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		uc.observe(source, resultRejected)
		return nil, err
	}

	created, err := uc.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken for business=%s",
				appointment.AppointmentDate.Format(domain.DateFormat), appointment.AppointmentTime, appointment.BusinessID)
			uc.observe(source, resultSlotTaken)
			return nil, uc.slotTaken(ctx, appointment.BusinessID, appointment.AppointmentDate, appointment.AppointmentTime)
		}
		uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
		uc.observe(source, resultError)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.observe(source, resultCreated)
	uc.logger.Info("CreateBooking: successfully created appointment id=%s", created.ID)

	return &Response{
		ID:          created.ID,
		BusinessID:  created.BusinessID,
		Date:        created.AppointmentDate,
		Time:        created.AppointmentTime,
		ClientName:  created.ClientName,
		ClientPhone: created.ClientPhone,
		Status:      string(created.Status),
		Notes:       created.Notes,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// slotTaken перечитывает занятость дня после нарушения уникальности
func (uc *UseCase) slotTaken(ctx context.Context, businessID uuid.UUID, date time.Time, t types.TimeString) error {
	occupied, err := uc.appointmentRepo.OccupiedTimes(ctx, businessID, date)
	if err != nil {
		// Клиент все равно должен узнать, что слот занят
		uc.logger.Error("CreateBooking: failed to refetch occupied slots for business=%s: %v", businessID, err)
		occupied = []types.TimeString{t}
	}
	return &SlotTakenError{Time: t, Occupied: occupied}
}

func (uc *UseCase) observe(source, result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(source, result)
	}
}
