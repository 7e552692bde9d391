package sessionstore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore хранит отозванные сессии в памяти процесса
// Используется, когда Redis не настроен, и в тестах
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke помечает сессию отозванной до момента until
func (s *MemoryStore) Revoke(_ context.Context, sessionID string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gc()
	if until.After(s.now()) {
		s.revoked[sessionID] = until
	}
	return nil
}

// IsRevoked возвращает true, если сессия была отозвана и запись еще не истекла
func (s *MemoryStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[sessionID]
	if !ok {
		return false, nil
	}
	if !until.After(s.now()) {
		delete(s.revoked, sessionID)
		return false, nil
	}
	return true, nil
}

// gc удаляет истекшие записи, вызывается под блокировкой
func (s *MemoryStore) gc() {
	now := s.now()
	for id, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, id)
		}
	}
}
