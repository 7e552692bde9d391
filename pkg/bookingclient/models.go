package bookingclient

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleConfig расписание барбершопа
type ScheduleConfig struct {
	Open                string   `json:"open"`
	Close               string   `json:"close"`
	BreakStart          string   `json:"breakStart,omitempty"`
	BreakEnd            string   `json:"breakEnd,omitempty"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	IsDefault           bool     `json:"isDefault,omitempty"`
	Slots               []string `json:"slots,omitempty"`
}

// Business публичная карточка барбершопа
type Business struct {
	ID     uuid.UUID       `json:"id"`
	Slug   string          `json:"slug"`
	Name   string          `json:"name"`
	Config *ScheduleConfig `json:"config"`
}

// Slot слот сетки
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailableSlots слоты дня для публичной записи
type AvailableSlots struct {
	Date         string    `json:"date"`
	BusinessID   uuid.UUID `json:"businessId"`
	BusinessName string    `json:"businessName"`
	Slug         string    `json:"slug"`
	Slots        []Slot    `json:"slots"`
	Occupied     []string  `json:"occupied"`
	Bookable     []string  `json:"bookable"`
}

// CreateAppointmentRequest публичная запись
type CreateAppointmentRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone,omitempty"`
}

// Appointment запись в публичном представлении
type Appointment struct {
	ID          uuid.UUID  `json:"id"`
	BusinessID  uuid.UUID  `json:"businessId"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	ClientName  string     `json:"clientName"`
	Status      string     `json:"status"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// CancelResult результат отмены клиентом
type CancelResult struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CancelledAt string    `json:"cancelledAt"`
}

// SignInResponse выданная сессия
type SignInResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Session     Session   `json:"session"`
}

// Session текущая сессия
type Session struct {
	AccountID    uuid.UUID `json:"accountId"`
	Email        string    `json:"email,omitempty"`
	Role         string    `json:"role"`
	Slug         string    `json:"slug,omitempty"`
	BusinessName string    `json:"businessName,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// OwnerAppointment запись в кабинете владельца
type OwnerAppointment struct {
	ID          uuid.UUID  `json:"id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	ClientName  string     `json:"clientName"`
	ClientPhone string     `json:"clientPhone,omitempty"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DaySchedule день барбершопа в кабинете владельца
type DaySchedule struct {
	Date         string             `json:"date"`
	Config       *ScheduleConfig    `json:"config"`
	Appointments []OwnerAppointment `json:"appointments"`
	Occupied     []string           `json:"occupied"`
	Slots        []Slot             `json:"slots"`
}

// ManualAppointmentRequest ручная запись владельцем
type ManualAppointmentRequest struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// BlockSlotsRequest блокировка слотов
type BlockSlotsRequest struct {
	Date     string   `json:"date"`
	Times    []string `json:"times,omitempty"`
	WholeDay bool     `json:"wholeDay,omitempty"`
}

// BlockSlotsResult результат блокировки
type BlockSlotsResult struct {
	Blocked  []string     `json:"blocked"`
	Skipped  []string     `json:"skipped"`
	Schedule *DaySchedule `json:"schedule"`
}

// UpdateConfigRequest сохранение расписания
type UpdateConfigRequest struct {
	Open                string `json:"open"`
	Close               string `json:"close"`
	BreakStart          string `json:"breakStart,omitempty"`
	BreakEnd            string `json:"breakEnd,omitempty"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

type errorResponse struct {
	Message  string   `json:"message"`
	Occupied []string `json:"occupied,omitempty"`
}
