package domain

import (
	"fmt"

	"github.com/m04kA/barberbook/pkg/types"
)

// ScheduleConfig рабочее расписание барбершопа на день
// Перерыв задается полуинтервалом [BreakStart, BreakEnd), пустой перерыв ничего не исключает
type ScheduleConfig struct {
	Open                types.TimeString
	Close               types.TimeString
	BreakStart          types.TimeString
	BreakEnd            types.TimeString
	SlotDurationMinutes int
}

// DefaultScheduleConfig расписание по умолчанию
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		Open:                DefaultOpenTime,
		Close:               DefaultCloseTime,
		BreakStart:          DefaultBreakStart,
		BreakEnd:            DefaultBreakEnd,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// HasBreak возвращает true, если перерыв задан
func (c ScheduleConfig) HasBreak() bool {
	return !c.BreakStart.IsZero() || !c.BreakEnd.IsZero()
}

// Validate проверяет согласованность расписания при сохранении
func (c ScheduleConfig) Validate() error {
	open, err := c.Open.Minutes()
	if err != nil {
		return fmt.Errorf("%w: open: %v", ErrInvalidWorkingHours, err)
	}
	closeAt, err := c.Close.Minutes()
	if err != nil {
		return fmt.Errorf("%w: close: %v", ErrInvalidWorkingHours, err)
	}
	if open >= closeAt {
		return fmt.Errorf("%w: open %s must be before close %s", ErrInvalidWorkingHours, c.Open, c.Close)
	}

	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: must be between %d and %d minutes",
			ErrInvalidSlotDuration, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}

	if !c.HasBreak() {
		return nil
	}

	if c.BreakStart.IsZero() || c.BreakEnd.IsZero() {
		return fmt.Errorf("%w: both break bounds must be set", ErrInvalidBreak)
	}
	breakStart, err := c.BreakStart.Minutes()
	if err != nil {
		return fmt.Errorf("%w: break start: %v", ErrInvalidBreak, err)
	}
	breakEnd, err := c.BreakEnd.Minutes()
	if err != nil {
		return fmt.Errorf("%w: break end: %v", ErrInvalidBreak, err)
	}
	if breakStart >= breakEnd {
		return fmt.Errorf("%w: break start %s must be before break end %s", ErrInvalidBreak, c.BreakStart, c.BreakEnd)
	}
	if breakStart < open || breakEnd > closeAt {
		return fmt.Errorf("%w: break must be within working hours", ErrInvalidBreak)
	}

	return nil
}

// CandidateSlots генерирует слоты дня: от Open с шагом SlotDurationMinutes строго до Close,
// исключая попадающие в [BreakStart, BreakEnd)
//
// Некорректная длительность или часы работы возвращают ошибку конфигурации,
// перерыв вне рабочих часов при генерации не проверяется (его отсекает Validate при сохранении)
func (c ScheduleConfig) CandidateSlots() ([]types.TimeString, error) {
	if c.SlotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlotDuration, c.SlotDurationMinutes)
	}

	open, err := c.Open.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrInvalidWorkingHours, err)
	}
	closeAt, err := c.Close.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: close: %v", ErrInvalidWorkingHours, err)
	}
	if open >= closeAt {
		return nil, fmt.Errorf("%w: open %s must be before close %s", ErrInvalidWorkingHours, c.Open, c.Close)
	}

	// Пустой перерыв: полуинтервал [0, 0) ничего не содержит
	breakStart, breakEnd := 0, 0
	if !c.BreakStart.IsZero() && !c.BreakEnd.IsZero() {
		if breakStart, err = c.BreakStart.Minutes(); err != nil {
			return nil, fmt.Errorf("%w: break start: %v", ErrInvalidBreak, err)
		}
		if breakEnd, err = c.BreakEnd.Minutes(); err != nil {
			return nil, fmt.Errorf("%w: break end: %v", ErrInvalidBreak, err)
		}
	}

	slots := make([]types.TimeString, 0, (closeAt-open)/c.SlotDurationMinutes+1)
	for m := open; m < closeAt; m += c.SlotDurationMinutes {
		if m >= breakStart && m < breakEnd {
			continue
		}
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// HasSlot возвращает true, если время входит в сетку слотов расписания
func (c ScheduleConfig) HasSlot(t types.TimeString) (bool, error) {
	slots, err := c.CandidateSlots()
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s == t {
			return true, nil
		}
	}
	return false, nil
}
