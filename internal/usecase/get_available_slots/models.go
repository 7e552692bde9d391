package get_available_slots

import (
	"time"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Slug string    // Публичный slug барбершопа
	Date time.Time // Дата (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	Date     time.Time          // Дата, на которую запрашивались слоты
	Business domain.Business    // Барбершоп с действующим расписанием
	Occupied []types.TimeString // Занятое время (записи и блокировки)
	Slots    []domain.Slot      // Сетка слотов с признаком доступности
	Bookable []types.TimeString // Доступные для записи слоты в порядке сетки
}
