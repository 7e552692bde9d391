package domain

import "errors"

var (
	// ErrInvalidSlotDuration возвращается при неположительной или слишком большой длительности слота
	ErrInvalidSlotDuration = errors.New("domain: invalid slot duration")

	// ErrInvalidWorkingHours возвращается, когда открытие не раньше закрытия или время некорректно
	ErrInvalidWorkingHours = errors.New("domain: invalid working hours")

	// ErrInvalidBreak возвращается, когда перерыв не лежит внутри рабочих часов
	ErrInvalidBreak = errors.New("domain: invalid break")
)
