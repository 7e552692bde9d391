package bookingclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrBadRequest сервер отклонил входные данные
	ErrBadRequest = errors.New("bookingclient: bad request")

	// ErrUnauthorized нет сессии, неверный ключ API или неверные учетные данные
	ErrUnauthorized = errors.New("bookingclient: unauthorized")

	// ErrForbidden роль сессии не позволяет операцию
	ErrForbidden = errors.New("bookingclient: forbidden")

	// ErrNotFound барбершоп или запись не найдены
	ErrNotFound = errors.New("bookingclient: not found")

	// ErrConflict конфликт состояния (например, запись уже отменена)
	ErrConflict = errors.New("bookingclient: conflict")

	// ErrSlotTaken выбранное время уже занято
	ErrSlotTaken = errors.New("bookingclient: slot taken")

	// ErrUnprocessable расписание барбершопа непригодно для генерации слотов
	ErrUnprocessable = errors.New("bookingclient: unprocessable")

	// ErrInternal ошибка на стороне клиента
	ErrInternal = errors.New("bookingclient: internal error")

	// ErrInvalidResponse сервер вернул неожиданный ответ
	ErrInvalidResponse = errors.New("bookingclient: invalid response")

	// ErrInvalidTransition шаг записи недоступен в текущем состоянии
	ErrInvalidTransition = errors.New("bookingclient: invalid booking step")

	// ErrSlotUnavailable выбранного времени нет среди свободных слотов
	ErrSlotUnavailable = errors.New("bookingclient: slot unavailable")

	// ErrMissingName не указано имя клиента
	ErrMissingName = errors.New("bookingclient: client name is required")
)

// APIError ответ сервера с кодом ошибки
// Message содержит текст сервера без изменений, его можно показывать пользователю
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bookingclient: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	default:
		return ErrInvalidResponse
	}
}

// SlotTakenError время заняли между показом сетки и бронированием
// Occupied актуальная занятость дня на момент отказа
type SlotTakenError struct {
	Message  string
	Occupied []string
}

func (e *SlotTakenError) Error() string {
	return ErrSlotTaken.Error() + ": " + e.Message
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}
