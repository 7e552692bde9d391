package business

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/barberbook/internal/domain"
)

// Cache LRU кэш барбершопов по slug с ограниченным сроком жизни записей
// Invalidate чистит только свой процесс, остальные инстансы увидят изменения не позже чем через ttl.
// Хранит копии, чтобы вызывающий код не мог изменить закэшированное значение
type Cache struct {
	cache *expirable.LRU[string, domain.Business]
}

// New создает кэш на size записей со сроком жизни ttl
func New(size int, ttl time.Duration) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("business.cache: size must be positive, got %d", size)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("business.cache: ttl must be positive, got %s", ttl)
	}
	return &Cache{cache: expirable.NewLRU[string, domain.Business](size, nil, ttl)}, nil
}

// Get возвращает барбершоп из кэша, просроченные записи не возвращаются
func (c *Cache) Get(slug string) (*domain.Business, bool) {
	entry, ok := c.cache.Get(slug)
	if !ok {
		return nil, false
	}
	return &entry, true
}

// Store кладет барбершоп в кэш
func (c *Cache) Store(b *domain.Business) {
	if b == nil || b.Slug == "" {
		return
	}
	c.cache.Add(b.Slug, *b)
}

// Invalidate удаляет барбершоп из кэша
func (c *Cache) Invalidate(slug string) {
	c.cache.Remove(slug)
}

// Len количество записей в кэше
func (c *Cache) Len() int {
	return c.cache.Len()
}
