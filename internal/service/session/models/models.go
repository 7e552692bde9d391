package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
)

// SignInRequest запрос на вход
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse выданная сессия
type SignInResponse struct {
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Session     SessionResponse `json:"session"`
}

// SessionResponse текущая сессия
type SessionResponse struct {
	AccountID    uuid.UUID `json:"accountId"`
	Email        string    `json:"email,omitempty"`
	Role         string    `json:"role"`
	Slug         string    `json:"slug,omitempty"`
	BusinessName string    `json:"businessName,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(s *domain.Session) SessionResponse {
	return SessionResponse{
		AccountID: s.AccountID,
		Role:      string(s.Role),
		Slug:      s.Slug,
		ExpiresAt: s.ExpiresAt,
	}
}
