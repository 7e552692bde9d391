package bookingclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// maxDeviceLookup сколько последних записей устройства запрашивается за раз
const maxDeviceLookup = 50

// DeviceStore список записей, сделанных с этого устройства
// Список только пополняется: без срока жизни и без привязки к аккаунту
type DeviceStore interface {
	Append(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]uuid.UUID, error)
}

// MemoryStore DeviceStore в памяти процесса
type MemoryStore struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, id)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.ids...), nil
}

// FileStore DeviceStore в JSON файле
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.read()
	if err != nil {
		return err
	}
	return s.write(append(ids, id))
}

func (s *FileStore) List(_ context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) read() ([]uuid.UUID, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []uuid.UUID{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read device store: %v", ErrInternal, err)
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("%w: decode device store: %v", ErrInternal, err)
	}
	return ids, nil
}

// write пишет через временный файл, чтобы не оставить обрезанный JSON
func (s *FileStore) write(ids []uuid.UUID) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("%w: encode device store: %v", ErrInternal, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: create device store dir: %v", ErrInternal, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("%w: write device store: %v", ErrInternal, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replace device store: %v", ErrInternal, err)
	}
	return nil
}

// DeviceAppointments записи, сделанные с этого устройства
// Повторяющиеся ID запрашиваются один раз, порядок ответа задает сервер
func (c *Client) DeviceAppointments(ctx context.Context, store DeviceStore) ([]Appointment, error) {
	ids, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	// Идем с конца: при переполнении важнее последние записи
	for i := len(ids) - 1; i >= 0 && len(unique) < maxDeviceLookup; i-- {
		if _, ok := seen[ids[i]]; ok {
			continue
		}
		seen[ids[i]] = struct{}{}
		unique = append(unique, ids[i])
	}

	return c.Appointments(ctx, unique)
}
