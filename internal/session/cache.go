// Package session caches the mutable session claims (role, points) that the
// token itself must not carry. Every ledger write and role change
// invalidates the cached entry, so privileged checks never act on stale
// values.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const claimsTTL = 5 * time.Minute

type Claims struct {
	Role   string `json:"role"`
	Points int    `json:"points"`
}

type Cache interface {
	Get(ctx context.Context, userID int) (*Claims, error)
	Set(ctx context.Context, userID int, claims Claims) error
	Invalidate(ctx context.Context, userID int) error
}

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func key(userID int) string {
	return fmt.Sprintf("session:claims:%d", userID)
}

func (c *RedisCache) Get(ctx context.Context, userID int) (*Claims, error) {
	raw, err := c.rdb.Get(ctx, key(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't read session claims", zap.Error(err))
		return nil, err
	}
	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

func (c *RedisCache) Set(ctx context.Context, userID int, claims Claims) error {
	raw, err := json.Marshal(claims)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, key(userID), raw, claimsTTL).Err(); err != nil {
		zap.L().Error("can't cache session claims", zap.Error(err))
		return err
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, userID int) error {
	if err := c.rdb.Del(ctx, key(userID)).Err(); err != nil {
		zap.L().Error("can't invalidate session claims", zap.Error(err))
		return err
	}
	return nil
}

// NoopCache keeps the service functional without redis; every read misses
// and falls through to the database.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, userID int) (*Claims, error)      { return nil, nil }
func (NoopCache) Set(ctx context.Context, userID int, claims Claims) error  { return nil }
func (NoopCache) Invalidate(ctx context.Context, userID int) error          { return nil }
