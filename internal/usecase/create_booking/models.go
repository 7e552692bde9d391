package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/pkg/types"
)

const (
	SourcePublic = "public"
	SourceManual = "manual"
)

// Request модель запроса публичного бронирования
type Request struct {
	Slug        string           // Публичный slug барбершопа
	Date        time.Time        // Дата записи (без времени)
	Time        types.TimeString // Время слота (например, "10:00")
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента (опционально)
}

// ManualRequest модель запроса ручной записи владельцем
type ManualRequest struct {
	BusinessID  uuid.UUID        // ID барбершопа (аккаунта владельца)
	Date        time.Time        // Дата записи (без времени)
	Time        types.TimeString // Время слота
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента (опционально)
	Notes       *string          // Заметки, по умолчанию "manual"
}

// Response модель ответа с созданной записью
type Response struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Date        time.Time
	Time        types.TimeString
	ClientName  string
	ClientPhone string
	Status      string
	Notes       *string
	CreatedAt   time.Time
}
