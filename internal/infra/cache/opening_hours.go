package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

const openingHoursKey = "grooming:opening_hours:v1"

type cachedRule struct {
	DOW            int               `json:"dow"`
	IsClosed       bool              `json:"isClosed"`
	OpenTime       *types.TimeString `json:"openTime,omitempty"`
	CloseTime      *types.TimeString `json:"closeTime,omitempty"`
	MaxPerHalfHour int               `json:"maxPerHalfHour"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// OpeningHoursCache кеширует таблицу часов работы целиком в одном ключе Redis
type OpeningHoursCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewOpeningHoursCache создает кеш часов работы
func NewOpeningHoursCache(rdb *redis.Client, ttl time.Duration) *OpeningHoursCache {
	return &OpeningHoursCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached rules; found is false on a cache miss
func (c *OpeningHoursCache) Get(ctx context.Context) (rules []domain.OpeningHoursRule, found bool, err error) {
	raw, err := c.rdb.Get(ctx, openingHoursKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - %v", ErrCacheRead, err)
	}

	var cached []cachedRule
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("%w: Get - %v", ErrCacheDecode, err)
	}

	rules = make([]domain.OpeningHoursRule, 0, len(cached))
	for _, r := range cached {
		rules = append(rules, domain.OpeningHoursRule{
			DOW:            r.DOW,
			IsClosed:       r.IsClosed,
			OpenTime:       r.OpenTime,
			CloseTime:      r.CloseTime,
			MaxPerHalfHour: r.MaxPerHalfHour,
			UpdatedAt:      r.UpdatedAt,
		})
	}
	return rules, true, nil
}

// Set stores the rules with the configured TTL
func (c *OpeningHoursCache) Set(ctx context.Context, rules []domain.OpeningHoursRule) error {
	cached := make([]cachedRule, 0, len(rules))
	for _, r := range rules {
		cached = append(cached, cachedRule{
			DOW:            r.DOW,
			IsClosed:       r.IsClosed,
			OpenTime:       r.OpenTime,
			CloseTime:      r.CloseTime,
			MaxPerHalfHour: r.MaxPerHalfHour,
			UpdatedAt:      r.UpdatedAt,
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCacheWrite, err)
	}
	if err := c.rdb.Set(ctx, openingHoursKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCacheWrite, err)
	}
	return nil
}

// Invalidate drops the cached table
func (c *OpeningHoursCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, openingHoursKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - %v", ErrCacheWrite, err)
	}
	return nil
}
