package cache

import (
	"context"
	"encoding/json"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Chu kỳ dọn key hết hạn
const memoryCleanupInterval = time.Minute

// MemoryCache - Cache trong process, dùng khi không có Redis và trong test
// Giá trị được lưu dạng JSON giống RedisCache
type MemoryCache struct {
	store *gocache.Cache
}

var _ Cache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return newMemoryCache(memoryCleanupInterval)
}

func newMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.store.Get(key)
	if !ok {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// ttl <= 0: không hết hạn (giống Redis SET không EX)
func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.store.Set(key, data, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		m.store.Delete(k)
	}
	return nil
}

// DeletePattern hỗ trợ glob giống Redis SCAN MATCH (*, ?, [...])
func (m *MemoryCache) DeletePattern(_ context.Context, pattern string) error {
	for k := range m.store.Items() {
		if ok, _ := path.Match(pattern, k); ok {
			m.store.Delete(k)
		}
	}
	return nil
}

func (m *MemoryCache) Ping(context.Context) error { return nil }

// Len - số key đang giữ, kể cả key hết hạn chưa tới lượt dọn
func (m *MemoryCache) Len() int {
	return m.store.ItemCount()
}
