package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session живая сессия владельца
type Session struct {
	ID        string // jti токена
	AccountID uuid.UUID
	Role      Role
	Slug      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsExpired возвращает true, если сессия истекла к моменту now
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
