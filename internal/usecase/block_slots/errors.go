package block_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда аккаунт владельца не найден
	ErrBusinessNotFound = errors.New("block_slots: business not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("block_slots: invalid date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("block_slots: invalid time slot")

	// ErrNothingToBlock возвращается, когда не выбрано ни одного слота
	ErrNothingToBlock = errors.New("block_slots: no slots selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_slots: internal error")
)
