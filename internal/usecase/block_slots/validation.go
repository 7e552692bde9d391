package block_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID == uuid.Nil {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.WholeDay && len(req.Times) == 0 {
		return ErrNothingToBlock
	}

	return nil
}

// selectTimes оставляет выбранные слоты из сетки в порядке сетки, без повторов
func selectTimes(candidates, selected []types.TimeString) ([]types.TimeString, error) {
	wanted := make(map[types.TimeString]struct{}, len(selected))
	for _, t := range selected {
		wanted[t] = struct{}{}
	}

	result := make([]types.TimeString, 0, len(wanted))
	for _, c := range candidates {
		if _, ok := wanted[c]; ok {
			result = append(result, c)
			delete(wanted, c)
		}
	}

	for t := range wanted {
		return nil, fmt.Errorf("%w: %s is not a slot of this schedule", ErrInvalidTimeSlot, t)
	}

	return result, nil
}

// difference возвращает элементы all, которых нет в inserted
func difference(all, inserted []types.TimeString) []types.TimeString {
	done := make(map[types.TimeString]struct{}, len(inserted))
	for _, t := range inserted {
		done[t] = struct{}{}
	}

	result := make([]types.TimeString, 0)
	for _, t := range all {
		if _, ok := done[t]; !ok {
			result = append(result, t)
		}
	}
	return result
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	y, m, d := date.Date()
	ny, nm, nd := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Before(time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC))
}
