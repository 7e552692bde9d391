package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена или принадлежит другому барбершопу
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("appointment already cancelled")

	// ErrBusinessNotFound возвращается, когда аккаунт владельца не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrScheduleMisconfigured возвращается, когда из сохраненного расписания нельзя построить слоты
	ErrScheduleMisconfigured = errors.New("business schedule is misconfigured")

	// ErrTooManyIDs возвращается, когда в запросе слишком много ID
	ErrTooManyIDs = errors.New("too many appointment ids")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
