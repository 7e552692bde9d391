package pages

import (
	"time"

	"github.com/m04kA/barberbook/internal/domain"
	appointmentmodels "github.com/m04kA/barberbook/internal/service/appointments/models"
	getAvailableSlots "github.com/m04kA/barberbook/internal/usecase/get_available_slots"
)

// CookieOptions параметры cookie сессии
type CookieOptions struct {
	Name   string
	Secure bool
}

type loginView struct {
	Email string
	Error string
}

type adminView struct {
	Slug     string
	Day      *appointmentmodels.DaySchedule
	PrevDate string
	NextDate string
}

type bookingView struct {
	Slug     string
	Name     string
	Date     string
	PrevDate string
	NextDate string
	Slots    []appointmentmodels.SlotResponse
}

type notFoundView struct {
	Slug string
}

func newBookingView(resp *getAvailableSlots.Response) *bookingView {
	prev, next := neighbourDates(resp.Date)
	return &bookingView{
		Slug:     resp.Business.Slug,
		Name:     resp.Business.Name,
		Date:     resp.Date.Format(domain.DateFormat),
		PrevDate: prev,
		NextDate: next,
		Slots:    appointmentmodels.FromDomainSlots(resp.Slots),
	}
}

func neighbourDates(date time.Time) (string, string) {
	return date.AddDate(0, 0, -1).Format(domain.DateFormat), date.AddDate(0, 0, 1).Format(domain.DateFormat)
}
