package block_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/pkg/types"
)

// Request модель запроса на блокировку слотов
type Request struct {
	BusinessID uuid.UUID          // ID барбершопа (аккаунта владельца)
	Date       time.Time          // Дата (без времени)
	Times      []types.TimeString // Выбранные слоты, игнорируется при WholeDay
	WholeDay   bool               // Заблокировать всю сетку дня
}

// Response модель ответа
type Response struct {
	Date    time.Time
	Blocked []types.TimeString // Созданные блокировки
	Skipped []types.TimeString // Слоты, которые уже были заняты
}
