package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashmitmorwal3/neighbourtalk/internal/models"
)

const alertsCacheKey = "alerts_recent"

// alertsCacheTTL keeps the cached listing short-lived so a lost
// invalidation can only go stale for a minute.
const alertsCacheTTL = 60 * time.Second

// RedisAlertCache caches the recency-sorted alert listing. The store treats
// it as optional; when Redis is not configured nothing is cached.
type RedisAlertCache struct {
	Client *redis.Client
}

func New(addr string) (*RedisAlertCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisAlertCache{Client: client}, nil
}

func (r *RedisAlertCache) Close() {
	r.Client.Close()
}

func (r *RedisAlertCache) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisAlertCache) GetAlerts(ctx context.Context) ([]models.Alert, error) {
	val, err := r.Client.Get(ctx, alertsCacheKey).Result()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}

	var alerts []models.Alert
	if err := json.Unmarshal([]byte(val), &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *RedisAlertCache) SetAlerts(ctx context.Context, alerts []models.Alert) error {
	data, err := json.Marshal(alerts)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, alertsCacheKey, data, alertsCacheTTL).Err()
}

func (r *RedisAlertCache) Invalidate(ctx context.Context) error {
	return r.Client.Del(ctx, alertsCacheKey).Err()
}
