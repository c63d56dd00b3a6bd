package inmemorycache

import (
	"encoding/json"
	"sync"
	"time"
)

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

type Cache interface {
	Get(key string, dest interface{}) (bool, error)
	Set(key string, value interface{}, ttl time.Duration) error
	Delete(key string)
}

type InMemoryCache struct {
	cache map[string]cacheEntry
	mutex sync.Mutex
	now   func() time.Time
}

func NewInMemoryCacheProvider() *InMemoryCache {
	return NewInMemoryCacheProviderWithClock(time.Now)
}

// NewInMemoryCacheProviderWithClock injects the clock used for expiry checks,
// so tests can advance time deterministically.
func NewInMemoryCacheProviderWithClock(now func() time.Time) *InMemoryCache {
	return &InMemoryCache{
		cache: make(map[string]cacheEntry),
		now:   now,
	}
}

// isExpired decides expiry against an explicit instant. Entries are collected
// lazily on read; there is no background sweep.
func isExpired(entry cacheEntry, now time.Time) bool {
	return now.After(entry.expiration)
}

// Get reports a miss both for keys never written and for expired entries.
func (m *InMemoryCache) Get(key string, dest interface{}) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[key]
	if !exists {
		return false, nil
	}

	if isExpired(entry, m.now()) {
		delete(m.cache, key)
		return false, nil
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}

	return true, nil
}

// Set overwrites unconditionally and resets the expiry clock.
func (m *InMemoryCache) Set(key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[key] = cacheEntry{
		data:       jsonData,
		expiration: m.now().Add(ttl),
	}

	return nil
}

func (m *InMemoryCache) Delete(key string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.cache, key)
}
