package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barberbook/internal/domain"
	appointmentRepo "github.com/m04kA/barberbook/internal/infra/storage/appointment"
	scheduleService "github.com/m04kA/barberbook/internal/service/schedule"
	"github.com/m04kA/barberbook/pkg/logger"
	"github.com/m04kA/barberbook/pkg/types"
)

type fakeRepo struct {
	rows    map[uuid.UUID]*domain.Appointment
	listErr error
}

func newFakeRepo(rows ...*domain.Appointment) *fakeRepo {
	r := &fakeRepo{rows: make(map[uuid.UUID]*domain.Appointment)}
	for _, a := range rows {
		r.rows[a.ID] = a
	}
	return r
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, id := range ids {
		if a, ok := f.rows[id]; ok {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeRepo) ListByFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*domain.Appointment
	for _, a := range f.rows {
		if a.BusinessID != filter.BusinessID || !a.AppointmentDate.Equal(filter.Date) {
			continue
		}
		if !filter.IncludeCancelled && a.Status == domain.StatusCancelled {
			continue
		}
		result = append(result, a)
	}
	// Порядок по времени, как в репозитории
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].AppointmentTime.IsBefore(result[j-1].AppointmentTime); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id uuid.UUID, businessID *uuid.UUID) error {
	a, ok := f.rows[id]
	if !ok || a.Status == domain.StatusCancelled || (businessID != nil && a.BusinessID != *businessID) {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = domain.StatusCancelled
	now := time.Now()
	a.CancelledAt = &now
	return nil
}

type fakeConfigs struct {
	config    domain.ScheduleConfig
	isDefault bool
	err       error
}

func (f *fakeConfigs) ResolveConfig(_ context.Context, _ uuid.UUID) (domain.ScheduleConfig, bool, error) {
	return f.config, f.isDefault, f.err
}

var day = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func row(businessID uuid.UUID, at string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		BusinessID:      businessID,
		AppointmentDate: day,
		AppointmentTime: types.TimeString(at),
		ClientName:      "Клиент " + at,
		ClientPhone:     "+70000000000",
		Status:          status,
	}
}

func shortConfig() domain.ScheduleConfig {
	return domain.ScheduleConfig{Open: "09:00", Close: "12:00", SlotDurationMinutes: 60}
}

func TestService_GetDay(t *testing.T) {
	businessID := uuid.New()
	repo := newFakeRepo(
		row(businessID, "11:00", domain.StatusBlocked),
		row(businessID, "10:00", domain.StatusScheduled),
		row(businessID, "09:00", domain.StatusCancelled),
		row(uuid.New(), "09:00", domain.StatusScheduled),
	)
	svc := NewService(repo, &fakeConfigs{config: shortConfig()}, logger.NewNop())

	got, err := svc.GetDay(context.Background(), businessID, day)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", got.Date)
	require.Len(t, got.Appointments, 3)
	assert.Equal(t, "09:00", got.Appointments[0].Time)
	assert.Equal(t, "cancelled", got.Appointments[0].Status)
	assert.Equal(t, []string{"10:00", "11:00"}, got.Occupied)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, got.Config.Slots)
	require.Len(t, got.Slots, 3)
	assert.True(t, got.Slots[0].Available)
	assert.False(t, got.Slots[1].Available)
	assert.False(t, got.Slots[2].Available)
}

func TestService_GetDay_DefaultFlagFollowsStoredConfig(t *testing.T) {
	// Владелец сохранил значения, совпадающие с расписанием по умолчанию
	saved := NewService(newFakeRepo(), &fakeConfigs{config: domain.DefaultScheduleConfig()}, logger.NewNop())
	got, err := saved.GetDay(context.Background(), uuid.New(), day)
	require.NoError(t, err)
	assert.False(t, got.Config.IsDefault)

	fallback := NewService(newFakeRepo(), &fakeConfigs{config: domain.DefaultScheduleConfig(), isDefault: true}, logger.NewNop())
	got, err = fallback.GetDay(context.Background(), uuid.New(), day)
	require.NoError(t, err)
	assert.True(t, got.Config.IsDefault)
}

func TestService_GetDay_Errors(t *testing.T) {
	t.Run("unknown business", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeConfigs{err: scheduleService.ErrAccountNotFound}, logger.NewNop())
		_, err := svc.GetDay(context.Background(), uuid.New(), day)
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("unusable config", func(t *testing.T) {
		broken := domain.ScheduleConfig{Open: "12:00", Close: "09:00", SlotDurationMinutes: 60}
		svc := NewService(newFakeRepo(), &fakeConfigs{config: broken}, logger.NewNop())
		_, err := svc.GetDay(context.Background(), uuid.New(), day)
		assert.ErrorIs(t, err, ErrScheduleMisconfigured)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := newFakeRepo()
		repo.listErr = errors.New("db down")
		svc := NewService(repo, &fakeConfigs{config: shortConfig()}, logger.NewNop())
		_, err := svc.GetDay(context.Background(), uuid.New(), day)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_Cancel_FreesSlotWithoutDeletingRow(t *testing.T) {
	businessID := uuid.New()
	booked := row(businessID, "10:00", domain.StatusScheduled)
	repo := newFakeRepo(booked)
	svc := NewService(repo, &fakeConfigs{config: shortConfig()}, logger.NewNop())

	cancelled, err := svc.Cancel(context.Background(), businessID, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	got, err := svc.GetDay(context.Background(), businessID, day)
	require.NoError(t, err)
	assert.Empty(t, got.Occupied)
	require.Len(t, got.Appointments, 1)
	assert.Equal(t, "cancelled", got.Appointments[0].Status)
}

func TestService_Cancel_Errors(t *testing.T) {
	businessID := uuid.New()
	foreign := row(uuid.New(), "10:00", domain.StatusScheduled)
	cancelled := row(businessID, "11:00", domain.StatusCancelled)
	svc := NewService(newFakeRepo(foreign, cancelled), &fakeConfigs{config: shortConfig()}, logger.NewNop())

	_, err := svc.Cancel(context.Background(), businessID, uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.Cancel(context.Background(), businessID, foreign.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.Cancel(context.Background(), businessID, cancelled.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestService_GetByIDs_HidesPhone(t *testing.T) {
	booked := row(uuid.New(), "10:00", domain.StatusScheduled)
	svc := NewService(newFakeRepo(booked), &fakeConfigs{}, logger.NewNop())

	got, err := svc.GetByIDs(context.Background(), []uuid.UUID{booked.ID, uuid.New()})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, booked.ID, got[0].ID)
	assert.Equal(t, "10:00", got[0].Time)
}

func TestService_GetByIDs_TooMany(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeConfigs{}, logger.NewNop())

	_, err := svc.GetByIDs(context.Background(), make([]uuid.UUID, domain.MaxLookupIDs+1))

	assert.ErrorIs(t, err, ErrTooManyIDs)
}
