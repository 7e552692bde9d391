package bookingclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// FlowState шаг публичной записи
type FlowState int

const (
	FlowLoading FlowState = iota
	FlowSelect
	FlowDetails
	FlowConfirmation
	FlowNotFound
)

func (s FlowState) String() string {
	switch s {
	case FlowSelect:
		return "select"
	case FlowDetails:
		return "details"
	case FlowConfirmation:
		return "confirmation"
	case FlowNotFound:
		return "not_found"
	default:
		return "loading"
	}
}

// BookingAPI часть API, нужная для публичной записи
type BookingAPI interface {
	GetBusiness(ctx context.Context, slug string) (*Business, error)
	AvailableSlots(ctx context.Context, slug, date string) (*AvailableSlots, error)
	CreateAppointment(ctx context.Context, slug string, req *CreateAppointmentRequest) (*Appointment, error)
}

// ContactDetails контакты клиента
type ContactDetails struct {
	Name  string
	Phone string
}

// BookingFlow линейный сценарий записи: выбор слота -> контакты -> подтверждение
// Из подтверждения выхода нет, кроме Reset (новая запись).
// При ошибке загрузки последние данные остаются, а Err() возвращает ошибку
type BookingFlow struct {
	api   BookingAPI
	store DeviceStore
	slug  string

	mu        sync.Mutex
	state     FlowState
	business  *Business
	date      string
	slots     []Slot
	selected  string
	details   ContactDetails
	confirmed *Appointment
	err       error
}

// NewBookingFlow создает сценарий записи для барбершопа slug
func NewBookingFlow(api BookingAPI, store DeviceStore, slug string) *BookingFlow {
	return &BookingFlow{
		api:   api,
		store: store,
		slug:  slug,
		state: FlowLoading,
	}
}

// Load загружает барбершоп и слоты на дату
// Неизвестный slug переводит сценарий в FlowNotFound без запросов слотов.
// С шагов контактов и подтверждения не вызывается: выход оттуда через Back или Reset
func (f *BookingFlow) Load(ctx context.Context, date string) error {
	f.mu.Lock()
	if f.state == FlowDetails || f.state == FlowConfirmation {
		state := f.state
		f.mu.Unlock()
		return fmt.Errorf("%w: load in %s", ErrInvalidTransition, state)
	}
	f.mu.Unlock()

	business, err := f.api.GetBusiness(ctx, f.slug)
	if err != nil {
		f.mu.Lock()
		defer f.mu.Unlock()
		if errors.Is(err, ErrNotFound) {
			f.state = FlowNotFound
			f.err = nil
			return err
		}
		f.err = err
		return err
	}

	f.mu.Lock()
	f.business = business
	f.state = FlowSelect
	f.mu.Unlock()

	return f.SetDate(ctx, date)
}

// SetDate переключает дату на шаге выбора слота, выбор сбрасывается
func (f *BookingFlow) SetDate(ctx context.Context, date string) error {
	f.mu.Lock()
	if f.state != FlowSelect {
		f.mu.Unlock()
		return fmt.Errorf("%w: set date in %s", ErrInvalidTransition, f.state)
	}
	f.mu.Unlock()

	slots, err := f.api.AvailableSlots(ctx, f.slug, date)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.err = err
		return err
	}

	f.date = slots.Date
	f.slots = slots.Slots
	f.selected = ""
	f.err = nil
	return nil
}

// Select выбирает свободный слот и переходит к вводу контактов
func (f *BookingFlow) Select(t string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != FlowSelect {
		return fmt.Errorf("%w: select in %s", ErrInvalidTransition, f.state)
	}

	for _, s := range f.slots {
		if s.Time == t && s.Available {
			f.selected = t
			f.state = FlowDetails
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSlotUnavailable, t)
}

// Back возвращает к выбору слота, доступно только с шага контактов
func (f *BookingFlow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != FlowDetails {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, f.state)
	}
	f.state = FlowSelect
	return nil
}

// Submit создает запись
// Занятый слот: сетка обновляется занятостью из ответа, выбор сбрасывается, сценарий возвращается к выбору
func (f *BookingFlow) Submit(ctx context.Context, details ContactDetails) (*Appointment, error) {
	f.mu.Lock()
	if f.state != FlowDetails {
		state := f.state
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: submit in %s", ErrInvalidTransition, state)
	}
	details.Name = strings.TrimSpace(details.Name)
	details.Phone = strings.TrimSpace(details.Phone)
	if details.Name == "" {
		f.mu.Unlock()
		return nil, ErrMissingName
	}
	f.details = details
	req := &CreateAppointmentRequest{
		Date:        f.date,
		Time:        f.selected,
		ClientName:  details.Name,
		ClientPhone: details.Phone,
	}
	f.mu.Unlock()

	appointment, err := f.api.CreateAppointment(ctx, f.slug, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		var taken *SlotTakenError
		if errors.As(err, &taken) {
			f.slots = applyOccupied(f.slots, taken.Occupied)
			f.selected = ""
			f.state = FlowSelect
		}
		f.err = err
		return nil, err
	}

	f.err = nil
	f.confirmed = appointment
	f.state = FlowConfirmation

	// Запись уже создана: ошибка локального списка не отменяет подтверждение
	if f.store != nil {
		if err := f.store.Append(ctx, appointment.ID); err != nil {
			f.err = err
		}
	}

	return appointment, nil
}

// Reset начинает новую запись на ту же дату
func (f *BookingFlow) Reset(ctx context.Context) error {
	f.mu.Lock()
	if f.business == nil {
		f.mu.Unlock()
		return fmt.Errorf("%w: reset before load", ErrInvalidTransition)
	}
	f.state = FlowSelect
	f.selected = ""
	f.details = ContactDetails{}
	f.confirmed = nil
	f.err = nil
	date := f.date
	f.mu.Unlock()

	return f.SetDate(ctx, date)
}

func (f *BookingFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *BookingFlow) Business() *Business {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.business
}

func (f *BookingFlow) Date() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.date
}

func (f *BookingFlow) Slots() []Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Slot(nil), f.slots...)
}

func (f *BookingFlow) Selected() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

func (f *BookingFlow) Details() ContactDetails {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.details
}

func (f *BookingFlow) Confirmed() *Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmed
}

// Err последняя ошибка загрузки или бронирования, nil после успешного запроса
func (f *BookingFlow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func applyOccupied(slots []Slot, occupied []string) []Slot {
	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		_, busy := taken[s.Time]
		result = append(result, Slot{Time: s.Time, Available: !busy})
	}
	return result
}
