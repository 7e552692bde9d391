package domain

import "github.com/m04kA/barberbook/pkg/types"

// Slot слот дня и признак доступности для записи
// Слот недоступен, если его занимает запись клиента или блокировка владельца
type Slot struct {
	Time      types.TimeString
	Available bool
}

// BookableSlots возвращает слоты-кандидаты без занятых, сохраняя порядок кандидатов
func BookableSlots(candidates, occupied []types.TimeString) []types.TimeString {
	taken := toSet(occupied)

	result := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if _, ok := taken[slot]; !ok {
			result = append(result, slot)
		}
	}
	return result
}

// ResolveSlots размечает каждый слот-кандидат признаком доступности
func ResolveSlots(candidates, occupied []types.TimeString) []Slot {
	taken := toSet(occupied)

	result := make([]Slot, len(candidates))
	for i, slot := range candidates {
		_, isTaken := taken[slot]
		result[i] = Slot{Time: slot, Available: !isTaken}
	}
	return result
}

func toSet(times []types.TimeString) map[types.TimeString]struct{} {
	set := make(map[types.TimeString]struct{}, len(times))
	for _, t := range times {
		set[t] = struct{}{}
	}
	return set
}
