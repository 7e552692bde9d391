package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/pkg/types"
)

// validateClient валидирует данные клиента и время, возвращает нормализованные имя и телефон
func validateClient(date time.Time, t types.TimeString, name, phone string) (string, string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return "", "", fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if len([]rune(name)) > domain.MaxClientNameLength {
		return "", "", fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if len(phone) > domain.MaxClientPhoneLength {
		return "", "", fmt.Errorf("%w: clientPhone is too long", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if date.IsZero() {
		return "", "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := t.Validate(); err != nil {
		return "", "", fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return name, phone, nil
}

// validateSlot проверяет, что время входит в сетку слотов расписания
func validateSlot(config domain.ScheduleConfig, t types.TimeString) error {
	ok, err := config.HasSlot(t)
	if err != nil {
		return fmt.Errorf("%w: schedule is misconfigured: %v", ErrInvalidTimeSlot, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s is not a slot of this schedule", ErrInvalidTimeSlot, t)
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	y, m, d := date.Date()
	ny, nm, nd := now.Date()
	dateOnly := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
