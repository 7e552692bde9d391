package session

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	// Сообщение показывается пользователю как есть
	ErrInvalidCredentials = errors.New("Invalid login credentials")

	// ErrInvalidToken возвращается для поддельного, просроченного или отозванного токена
	ErrInvalidToken = errors.New("invalid or expired session")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
