package cancel_by_client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	appointmentRepo "github.com/m04kA/barberbook/internal/infra/storage/appointment"
)

// UseCase use case для отмены записи анонимным клиентом
// Клиент знает только ID записи, сохраненный на его устройстве
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	lead            time.Duration
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// lead минимальное время между отменой и началом записи
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	lead time.Duration,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		lead:            lead,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute отменяет запись, если до нее осталось не меньше lead
// Чтение и отмена выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelByClient: appointment=%s", req.AppointmentID)

	if req.AppointmentID == uuid.Nil {
		return nil, ErrAppointmentNotFound
	}

	now := uc.timeProvider.Now()
	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем запись с блокировкой строки
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CancelByClient: appointment=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CancelByClient: failed to get appointment=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2. Отменять можно только действующую клиентскую запись
		if appointment.Status != domain.StatusScheduled {
			uc.logger.Warn("CancelByClient: appointment=%s has status=%s", appointment.ID, appointment.Status)
			return ErrNotCancellable
		}

		// 3. Проверяем минимальное время до записи
		startsAt, err := uc.startsAt(appointment)
		if err != nil {
			uc.logger.Error("CancelByClient: appointment=%s has invalid time %q: %v", appointment.ID, appointment.AppointmentTime, err)
			return fmt.Errorf("%w: invalid appointment time: %v", ErrInternal, err)
		}

		if startsAt.Sub(now) < uc.lead {
			uc.logger.Warn("CancelByClient: appointment=%s starts at %s, less than %s from now",
				appointment.ID, startsAt.Format(time.RFC3339), uc.lead)
			return fmt.Errorf("%w: must cancel at least %d minutes in advance", ErrTooLateToCancel, int(uc.lead.Minutes()))
		}

		// 4. Отменяем
		if err := uc.appointmentRepo.Cancel(txCtx, appointment.ID, nil); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrNotCancellable
			}
			uc.logger.Error("CancelByClient: failed to cancel appointment=%s: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		appointment.Status = domain.StatusCancelled
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelByClient: appointment=%s cancelled", result.ID)

	return &Response{
		ID:          result.ID,
		BusinessID:  result.BusinessID,
		Date:        result.AppointmentDate,
		Status:      string(result.Status),
		CancelledAt: now,
	}, nil
}

// startsAt момент начала записи в часовом поясе барбершопа
func (uc *UseCase) startsAt(a *domain.Appointment) (time.Time, error) {
	y, m, d := a.AppointmentDate.Date()
	return a.AppointmentTime.On(time.Date(y, m, d, 0, 0, 0, 0, uc.location))
}
