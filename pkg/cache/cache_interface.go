package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheUnavailable - Redis không kết nối được, caller nên fallback về DB
var ErrCacheUnavailable = errors.New("cache unavailable")

// Cache interface định nghĩa contract cho cache layer
type Cache interface {
	// Get lấy data từ cache và unmarshal vào dest
	// found = false: cache miss, dest không bị thay đổi
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set lưu data (JSON) vào cache với TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete xóa các keys khỏi cache
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern xóa theo glob pattern (vd: "products:*")
	DeletePattern(ctx context.Context, pattern string) error

	// Ping kiểm tra connection
	Ping(ctx context.Context) error
}
