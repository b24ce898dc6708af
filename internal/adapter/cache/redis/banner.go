package cache

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/The-Gleb/banner_admin/internal/domain/entity"
	"github.com/The-Gleb/banner_admin/internal/domain/service"
	"github.com/redis/go-redis/v9"
)

var _ service.BannerCache = new(redisCache)

type redisCache struct {
	client *redis.Client
	expiry time.Duration
}

func NewRedisCache(client *redis.Client, expiry time.Duration) *redisCache {
	return &redisCache{client: client, expiry: expiry}
}

func bannerKey(id int64) string {
	return fmt.Sprintf("banner:%d", id)
}

func versionKey(id int64) string {
	return fmt.Sprintf("banner:%d:version", id)
}

// Version returns the invalidation counter of the banner, zero if it was
// never invalidated.
func (c *redisCache) Version(ctx context.Context, id int64) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(id)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		slog.Error("error getting banner version from redis", "error", err)
		return 0, err
	}
	return v, nil
}

// Set stores the banner unless its version moved past version, in which case
// it returns service.ErrCacheStale.
func (c *redisCache) Set(ctx context.Context, banner entity.Banner, version int64) error {
	b, err := json.Marshal(banner)
	if err != nil {
		slog.Error("error marshalling banner for redis", "error", err)
		return err
	}

	vKey := versionKey(banner.ID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != version {
			return service.ErrCacheStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, bannerKey(banner.ID), b, c.expiry)
			return nil
		})
		return err
	}, vKey)
	if stdErrors.Is(err, redis.TxFailedErr) {
		return service.ErrCacheStale
	}
	if err != nil && !stdErrors.Is(err, service.ErrCacheStale) {
		slog.Error("error updating banner in redis", "error", err)
	}

	return err
}

// Get returns service.ErrCacheMiss when the banner is not cached.
func (c *redisCache) Get(ctx context.Context, id int64) (entity.Banner, error) {
	jsonBanner, err := c.client.Get(ctx, bannerKey(id)).Result()
	if err == redis.Nil {
		return entity.Banner{}, service.ErrCacheMiss
	}
	if err != nil {
		slog.Error("error getting banner from redis", "error", err)
		return entity.Banner{}, err
	}

	var banner entity.Banner
	err = json.Unmarshal([]byte(jsonBanner), &banner)
	if err != nil {
		slog.Error("error unmarshalling result from redis", "error", err)
		return entity.Banner{}, err
	}

	slog.Debug("got banner from cache", "banner_id", id)

	return banner, nil
}

// Delete drops the cached banner and bumps its version so a read that started
// before the delete cannot store its copy afterwards.
func (c *redisCache) Delete(ctx context.Context, id int64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, bannerKey(id))
		pipe.Incr(ctx, versionKey(id))
		return nil
	})
	if err != nil {
		slog.Error("error deleting banner from redis", "error", err)
		return err
	}
	return nil
}
