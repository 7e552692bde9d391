package cancel_by_client

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("cancel_by_client: appointment not found")

	// ErrNotCancellable возвращается, когда запись уже отменена или является блокировкой
	ErrNotCancellable = errors.New("cancel_by_client: appointment cannot be cancelled")

	// ErrTooLateToCancel возвращается, когда до записи осталось меньше допустимого времени
	ErrTooLateToCancel = errors.New("cancel_by_client: too late to cancel")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_by_client: internal error")
)
