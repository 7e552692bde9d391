package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barberbook/internal/domain"
	appointmentRepo "github.com/m04kA/barberbook/internal/infra/storage/appointment"
	businessService "github.com/m04kA/barberbook/internal/service/business"
	"github.com/m04kA/barberbook/pkg/logger"
	"github.com/m04kA/barberbook/pkg/types"
)

// fakeRepo повторяет уникальный индекс (business_id, appointment_date, appointment_time) для неотмененных записей
type fakeRepo struct {
	mu      sync.Mutex
	rows    []*domain.Appointment
	created int
}

func (f *fakeRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, r := range f.rows {
		if r.BusinessID == a.BusinessID && r.AppointmentDate.Equal(a.AppointmentDate) &&
			r.AppointmentTime == a.AppointmentTime && r.OccupiesSlot() {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}

	cp := *a
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	f.rows = append(f.rows, &cp)
	f.created++
	return &cp, nil
}

func (f *fakeRepo) OccupiedTimes(_ context.Context, businessID uuid.UUID, date time.Time) ([]types.TimeString, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []types.TimeString
	for _, r := range f.rows {
		if r.BusinessID == businessID && r.AppointmentDate.Equal(date) && r.OccupiesSlot() {
			result = append(result, r.AppointmentTime)
		}
	}
	return result, nil
}

type fakeBusinesses struct {
	business *domain.Business
	calls    int
}

func (f *fakeBusinesses) ResolveSlug(_ context.Context, slug string) (*domain.Business, error) {
	f.calls++
	if f.business == nil || f.business.Slug != slug {
		return nil, businessService.ErrBusinessNotFound
	}
	return f.business, nil
}

type fakeConfigs struct {
	config domain.ScheduleConfig
}

func (f *fakeConfigs) EffectiveConfig(_ context.Context, _ uuid.UUID) (domain.ScheduleConfig, error) {
	return f.config, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type recordingMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func (r *recordingMetrics) ObserveBooking(source, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.results == nil {
		r.results = make(map[string]int)
	}
	r.results[source+"/"+result]++
}

var bookingDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newUseCase(repo *fakeRepo) (*UseCase, *fakeBusinesses, *recordingMetrics) {
	businesses := &fakeBusinesses{business: &domain.Business{
		ID:     uuid.New(),
		Slug:   "fade-house",
		Name:   "Fade House",
		Config: domain.DefaultScheduleConfig(),
	}}
	m := &recordingMetrics{}
	uc := NewUseCase(repo, businesses, &fakeConfigs{config: domain.DefaultScheduleConfig()}, m, time.UTC, logger.NewNop())
	uc.timeProvider = &fixedTime{now: time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)}
	return uc, businesses, m
}

func publicRequest(at string) *Request {
	return &Request{
		Slug:        "fade-house",
		Date:        bookingDay,
		Time:        types.TimeString(at),
		ClientName:  "Иван",
		ClientPhone: "+79990000000",
	}
}

func TestUseCase_Execute_CreatesScheduledAppointment(t *testing.T) {
	repo := &fakeRepo{}
	uc, businesses, m := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), publicRequest("10:00"))

	require.NoError(t, err)
	assert.Equal(t, businesses.business.ID, resp.BusinessID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Nil(t, resp.Notes)
	assert.Equal(t, 1, m.results["public/created"])
}

func TestUseCase_Execute_ConcurrentSameSlotExactlyOneWins(t *testing.T) {
	repo := &fakeRepo{}
	uc, _, _ := newUseCase(repo)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), publicRequest("11:00"))
		}(i)
	}
	wg.Wait()

	var succeeded, taken int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotTaken):
			taken++
			var slotErr *SlotTakenError
			require.ErrorAs(t, err, &slotErr)
			assert.Equal(t, []types.TimeString{"11:00"}, slotErr.Occupied)
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, taken)
	assert.Equal(t, 1, repo.created)
}

func TestUseCase_Execute_CancelledRowDoesNotBlockRebooking(t *testing.T) {
	repo := &fakeRepo{}
	uc, businesses, _ := newUseCase(repo)
	repo.rows = append(repo.rows, &domain.Appointment{
		ID:              uuid.New(),
		BusinessID:      businesses.business.ID,
		AppointmentDate: bookingDay,
		AppointmentTime: "10:00",
		Status:          domain.StatusCancelled,
	})

	_, err := uc.Execute(context.Background(), publicRequest("10:00"))

	assert.NoError(t, err)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr error
	}{
		{
			name:    "empty name",
			modify:  func(r *Request) { r.ClientName = "   " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time format",
			modify:  func(r *Request) { r.Time = "25:00" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "date in the past",
			modify:  func(r *Request) { r.Date = bookingDay.AddDate(0, 0, -2) },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "time inside break",
			modify:  func(r *Request) { r.Time = "13:00" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "time off the grid",
			modify:  func(r *Request) { r.Time = "10:30" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "closing time",
			modify:  func(r *Request) { r.Time = "19:00" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "unknown slug",
			modify:  func(r *Request) { r.Slug = "nobody" },
			wantErr: ErrBusinessNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc, _, m := newUseCase(repo)
			req := publicRequest("10:00")
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.created)
			assert.Equal(t, 1, m.results["public/rejected"])
		})
	}
}

func TestUseCase_Execute_TodayIsAllowed(t *testing.T) {
	repo := &fakeRepo{}
	uc, _, _ := newUseCase(repo)
	uc.timeProvider = &fixedTime{now: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), publicRequest("09:00"))

	assert.NoError(t, err)
}

func TestUseCase_ExecuteManual_DefaultNotes(t *testing.T) {
	repo := &fakeRepo{}
	uc, _, m := newUseCase(repo)

	resp, err := uc.ExecuteManual(context.Background(), &ManualRequest{
		BusinessID: uuid.New(),
		Date:       bookingDay,
		Time:       "15:00",
		ClientName: "Петр",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, domain.NotesManual, *resp.Notes)
	assert.Equal(t, 1, m.results["manual/created"])
}
