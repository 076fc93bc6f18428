package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "MedDesk/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyDoctorList = "doctor:list"

// DoctorCache caches the public doctor list in Redis. The list is read
// far more often than it changes, so writes just drop the key.
type DoctorCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDoctorCache returns a new DoctorCache.
func NewDoctorCache(rdb *redis.Client, ttl time.Duration) *DoctorCache {
	return &DoctorCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil if miss.
func (c *DoctorCache) GetList(ctx context.Context) ([]dom.Doctor, error) {
	b, err := c.rdb.Get(ctx, keyDoctorList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Doctor
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *DoctorCache) SetList(ctx context.Context, list []dom.Doctor) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyDoctorList, b, c.ttl).Err()
}

// Invalidate removes the cached list.
func (c *DoctorCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyDoctorList).Err()
}
