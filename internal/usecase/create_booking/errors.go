package create_booking

import (
	"errors"

	"github.com/m04kA/barberbook/pkg/types"
)

var (
	// ErrBusinessNotFound возвращается, когда барбершоп не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов барбершопа
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotTakenError слот заняли между показом и бронированием
// Occupied содержит перечитанную занятость дня, чтобы клиент мог сразу обновить сетку
type SlotTakenError struct {
	Time     types.TimeString
	Occupied []types.TimeString
}

func (e *SlotTakenError) Error() string {
	return ErrSlotTaken.Error() + ": " + e.Time.String()
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}
