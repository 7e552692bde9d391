package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда slug не соответствует ни одному барбершопу
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidSlug возвращается для пустого или слишком длинного slug
	ErrInvalidSlug = errors.New("invalid slug")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
