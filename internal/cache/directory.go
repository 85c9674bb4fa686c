// Package cache holds the redis-backed cache for the public barber
// directory, the one read-heavy endpoint worth caching.
package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const directoryKey = "barbers:directory"

type Directory struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDirectory returns nil when addr is empty; all methods are nil-safe so
// an unconfigured cache degrades to a pass-through.
func NewDirectory(addr, password string, db int) *Directory {
	if addr == "" {
		return nil
	}
	return &Directory{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: 5 * time.Minute,
	}
}

func (d *Directory) Get(ctx context.Context) ([]byte, bool) {
	if d == nil {
		return nil, false
	}
	b, err := d.rdb.Get(ctx, directoryKey).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (d *Directory) Set(ctx context.Context, payload []byte) {
	if d == nil {
		return
	}
	d.rdb.Set(ctx, directoryKey, payload, d.ttl)
}

func (d *Directory) Invalidate(ctx context.Context) {
	if d == nil {
		return
	}
	d.rdb.Del(ctx, directoryKey)
}
