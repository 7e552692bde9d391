package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role роль аккаунта
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// CanManageSchedule возвращает true для ролей, которым доступна панель расписания
func (r Role) CanManageSchedule() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Account аккаунт владельца барбершопа
// ID аккаунта одновременно является ID бизнеса в записях
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	Slug         *string
	BusinessName string
	Config       *ScheduleConfig // nil, если расписание не сохранено
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveConfig возвращает сохраненное расписание или расписание по умолчанию
func (a *Account) EffectiveConfig() ScheduleConfig {
	if a.Config == nil {
		return DefaultScheduleConfig()
	}
	return *a.Config
}

// Business публичное представление барбершопа, найденного по slug
type Business struct {
	ID              uuid.UUID
	Slug            string
	Name            string
	Config          ScheduleConfig
	HasStoredConfig bool
}

// BusinessFromAccount строит публичное представление из аккаунта
func BusinessFromAccount(a *Account) *Business {
	slug := ""
	if a.Slug != nil {
		slug = *a.Slug
	}
	return &Business{
		ID:              a.ID,
		Slug:            slug,
		Name:            a.BusinessName,
		Config:          a.EffectiveConfig(),
		HasStoredConfig: a.Config != nil,
	}
}

// NormalizeSlug приводит slug к каноническому виду
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// IsReservedSlug возвращает true для slug, совпадающих с фиксированными путями сервиса
func IsReservedSlug(slug string) bool {
	for _, reserved := range ReservedSlugs {
		if NormalizeSlug(slug) == reserved {
			return true
		}
	}
	return false
}
