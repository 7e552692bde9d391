package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	schedulemodels "github.com/m04kA/barberbook/internal/service/schedule/models"
)

// AppointmentResponse запись в кабинете владельца
type AppointmentResponse struct {
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

// PublicAppointmentResponse запись, видимая анонимному клиенту (без телефона)
type PublicAppointmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	BusinessID  uuid.UUID  `json:"businessId"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	ClientName  string     `json:"clientName"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// SlotResponse слот с признаком доступности
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DaySchedule день барбершопа: расписание, записи и занятость
// Возвращается после каждого изменения записей владельцем
type DaySchedule struct {
	Date         string                          `json:"date"`
	Config       *schedulemodels.ConfigResponse `json:"config"`
	Appointments []AppointmentResponse           `json:"appointments"`
	Occupied     []string                        `json:"occupied"`
	Slots        []SlotResponse                  `json:"slots"`
}

// FromDomain конвертирует domain модель в DTO кабинета
func FromDomain(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		Date:        a.AppointmentDate.Format(domain.DateFormat),
		Time:        a.AppointmentTime.String(),
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		Status:      string(a.Status),
		Notes:       a.Notes,
		CancelledAt: a.CancelledAt,
		CreatedAt:   a.CreatedAt,
	}
}

// PublicFromDomain конвертирует domain модель в публичный DTO
func PublicFromDomain(a *domain.Appointment) PublicAppointmentResponse {
	return PublicAppointmentResponse{
		ID:          a.ID,
		BusinessID:  a.BusinessID,
		Date:        a.AppointmentDate.Format(domain.DateFormat),
		Time:        a.AppointmentTime.String(),
		ClientName:  a.ClientName,
		Status:      string(a.Status),
		CancelledAt: a.CancelledAt,
	}
}

// FromDomainSlots конвертирует слоты в DTO
func FromDomainSlots(slots []domain.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{Time: s.Time.String(), Available: s.Available})
	}
	return result
}

// TimesToStrings конвертирует список времени в строки
func TimesToStrings[T ~string](times []T) []string {
	result := make([]string, 0, len(times))
	for _, t := range times {
		result = append(result, string(t))
	}
	return result
}
