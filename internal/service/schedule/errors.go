package schedule

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidConfig возвращается, когда расписание несогласованно и не может быть сохранено
	ErrInvalidConfig = errors.New("invalid schedule config")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
