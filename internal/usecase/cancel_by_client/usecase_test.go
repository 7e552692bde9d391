package cancel_by_client

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
	"github.com/m04kA/barberbook/pkg/logger"
	"github.com/m04kA/barberbook/pkg/types"
)

type fakeRepo struct {
	rows        map[uuid.UUID]*domain.Appointment
	cancelCalls int
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id uuid.UUID, _ *uuid.UUID) error {
	f.cancelCalls++
	a, ok := f.rows[id]
	if !ok || a.Status == domain.StatusCancelled {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = domain.StatusCancelled
	return nil
}

// fakeTx выполняет fn сразу и запоминает количество транзакций
type fakeTx struct {
	calls int
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

var day = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newUseCase(now time.Time, rows ...*domain.Appointment) (*UseCase, *fakeRepo, *fakeTx) {
	repo := &fakeRepo{rows: make(map[uuid.UUID]*domain.Appointment)}
	for _, a := range rows {
		repo.rows[a.ID] = a
	}
	tx := &fakeTx{}
	uc := NewUseCase(repo, tx, 2*time.Hour, time.UTC, logger.NewNop())
	uc.timeProvider = &fixedTime{now: now}
	return uc, repo, tx
}

func scheduledAt(at string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		BusinessID:      uuid.New(),
		AppointmentDate: day,
		AppointmentTime: types.TimeString(at),
		ClientName:      "Иван",
		Status:          status,
	}
}

func TestUseCase_Execute_CancelsWithEnoughLead(t *testing.T) {
	a := scheduledAt("12:00", domain.StatusScheduled)
	uc, repo, tx := newUseCase(day.Add(10*time.Hour), a)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: a.ID})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.rows[a.ID].Status)
	assert.Equal(t, 1, tx.calls)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		at      string
		status  domain.AppointmentStatus
		now     time.Time
		wantErr error
	}{
		{
			name:    "inside lead time",
			at:      "12:00",
			status:  domain.StatusScheduled,
			now:     day.Add(10*time.Hour + time.Minute),
			wantErr: ErrTooLateToCancel,
		},
		{
			name:    "already started",
			at:      "09:00",
			status:  domain.StatusScheduled,
			now:     day.Add(10 * time.Hour),
			wantErr: ErrTooLateToCancel,
		},
		{
			name:    "already cancelled",
			at:      "18:00",
			status:  domain.StatusCancelled,
			now:     day,
			wantErr: ErrNotCancellable,
		},
		{
			name:    "owner block",
			at:      "18:00",
			status:  domain.StatusBlocked,
			now:     day,
			wantErr: ErrNotCancellable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := scheduledAt(tt.at, tt.status)
			uc, repo, _ := newUseCase(tt.now, a)

			_, err := uc.Execute(context.Background(), &Request{AppointmentID: a.ID})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.cancelCalls)
			assert.Equal(t, tt.status, repo.rows[a.ID].Status)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc, _, _ := newUseCase(day)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: uuid.New()})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUseCase_Execute_TransactionError(t *testing.T) {
	a := scheduledAt("18:00", domain.StatusScheduled)
	uc, _, _ := newUseCase(day, a)
	uc.txManager = failingTx{}

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: a.ID})

	assert.Error(t, err)
}

type failingTx struct{}

func (failingTx) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return errors.New("begin tx failed")
}
