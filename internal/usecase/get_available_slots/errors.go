package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда slug не соответствует ни одному барбершопу
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrScheduleMisconfigured возвращается, когда из расписания нельзя построить слоты
	ErrScheduleMisconfigured = errors.New("business schedule is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
