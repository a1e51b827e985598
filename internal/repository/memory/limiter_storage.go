package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// LimiterStorage is a process-local fiber.Storage used by the rate limiter
// when no Redis instance is reachable.
type LimiterStorage struct {
	cache *cache.Cache
}

func NewLimiterStorage() *LimiterStorage {
	// Limiter windows are short; purge expired counters every minute.
	c := cache.New(cache.NoExpiration, 1*time.Minute)
	return &LimiterStorage{
		cache: c,
	}
}

func (s *LimiterStorage) Get(key string) ([]byte, error) {
	if len(key) == 0 {
		return nil, nil
	}
	if x, found := s.cache.Get(key); found {
		return x.([]byte), nil
	}
	return nil, nil
}

// Set stores val under key. A zero exp means the entry never expires.
func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if len(key) == 0 || len(val) == 0 {
		return nil
	}
	if exp <= 0 {
		exp = cache.NoExpiration
	}
	// Copy: fasthttp reuses the buffer behind val.
	buf := make([]byte, len(val))
	copy(buf, val)
	s.cache.Set(key, buf, exp)
	return nil
}

func (s *LimiterStorage) Delete(key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *LimiterStorage) Reset() error {
	s.cache.Flush()
	return nil
}

func (s *LimiterStorage) Close() error {
	return nil
}
