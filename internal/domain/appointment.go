package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusBlocked   AppointmentStatus = "blocked"
)

// IsValid проверяет, что статус известен
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusBlocked:
		return true
	default:
		return false
	}
}

// Appointment запись на определенное время в барбершопе
// Заблокированный слот тоже хранится как запись со статусом blocked и без клиента
type Appointment struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	AppointmentDate time.Time
	AppointmentTime types.TimeString
	ClientName      string
	ClientPhone     string
	Status          AppointmentStatus
	Notes           *string
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OccupiesSlot возвращает true, если запись занимает слот
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// IsBlocked возвращает true для служебной блокировки слота
func (a *Appointment) IsBlocked() bool {
	return a.Status == StatusBlocked
}

// StartsAt момент начала записи в локации даты записи
func (a *Appointment) StartsAt() (time.Time, error) {
	return a.AppointmentTime.On(a.AppointmentDate)
}

// AppointmentFilter фильтр записей барбершопа на дату
type AppointmentFilter struct {
	BusinessID       uuid.UUID // Обязательный параметр
	Date             time.Time // Обязательный параметр
	IncludeCancelled bool      // Включать ли отмененные записи
}

// OccupiedTimes возвращает время всех записей, которые занимают слот
func OccupiedTimes(appointments []*Appointment) []types.TimeString {
	result := make([]types.TimeString, 0, len(appointments))
	for _, a := range appointments {
		if a.OccupiesSlot() {
			result = append(result, a.AppointmentTime)
		}
	}
	return result
}
