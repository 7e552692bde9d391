package models

import (
	"fmt"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/pkg/types"
)

// UpdateConfigRequest запрос на сохранение расписания
// Пустые breakStart и breakEnd означают работу без перерыва
type UpdateConfigRequest struct {
	Open                string `json:"open"`
	Close               string `json:"close"`
	BreakStart          string `json:"breakStart"`
	BreakEnd            string `json:"breakEnd"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// ToDomain парсит время и собирает domain модель
func (r *UpdateConfigRequest) ToDomain() (domain.ScheduleConfig, error) {
	open, err := types.NewTimeStringFromString(r.Open)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("open: %w", err)
	}
	closeAt, err := types.NewTimeStringFromString(r.Close)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("close: %w", err)
	}

	cfg := domain.ScheduleConfig{
		Open:                open,
		Close:               closeAt,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}

	if r.BreakStart != "" {
		if cfg.BreakStart, err = types.NewTimeStringFromString(r.BreakStart); err != nil {
			return domain.ScheduleConfig{}, fmt.Errorf("breakStart: %w", err)
		}
	}
	if r.BreakEnd != "" {
		if cfg.BreakEnd, err = types.NewTimeStringFromString(r.BreakEnd); err != nil {
			return domain.ScheduleConfig{}, fmt.Errorf("breakEnd: %w", err)
		}
	}

	return cfg, nil
}

// ConfigResponse расписание владельца
type ConfigResponse struct {
	Open                string   `json:"open"`
	Close               string   `json:"close"`
	BreakStart          string   `json:"breakStart,omitempty"`
	BreakEnd            string   `json:"breakEnd,omitempty"`
	SlotDurationMinutes int      `json:"slotDurationMinutes"`
	IsDefault           bool     `json:"isDefault"`
	Slots               []string `json:"slots"`
}

// FromDomainConfig конвертирует domain модель в DTO вместе с сеткой слотов
func FromDomainConfig(cfg domain.ScheduleConfig, isDefault bool) *ConfigResponse {
	resp := &ConfigResponse{
		Open:                cfg.Open.String(),
		Close:               cfg.Close.String(),
		BreakStart:          cfg.BreakStart.String(),
		BreakEnd:            cfg.BreakEnd.String(),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		IsDefault:           isDefault,
		Slots:               []string{},
	}

	if slots, err := cfg.CandidateSlots(); err == nil {
		for _, s := range slots {
			resp.Slots = append(resp.Slots, s.String())
		}
	}

	return resp
}
