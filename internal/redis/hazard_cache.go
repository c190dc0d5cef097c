package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"hazardpoint/internal/domain"
)

// HazardCache holds the unresolved-hazard rows feeding the map feed. Only
// stored attributes are cached; display status is derived on every read so
// lazy expiry is never frozen into the cache.
type HazardCache struct {
	client *goredis.Client
	key    string
}

func NewHazardCache(r *Redis) *HazardCache {
	return &HazardCache{
		client: r.Client,
		key:    "hazards:unresolved",
	}
}

func (c *HazardCache) GetUnresolved(ctx context.Context) ([]*domain.Hazard, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var hazards []*domain.Hazard
	if err := json.Unmarshal(data, &hazards); err != nil {
		return nil, err
	}

	return hazards, nil
}

func (c *HazardCache) SetUnresolved(ctx context.Context, hazards []*domain.Hazard, ttl time.Duration) error {
	b, err := json.Marshal(hazards)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
