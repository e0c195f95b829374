package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Azonix07/gamespotbooking-v1-sub002/internal/domain"
	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/logger"
)

const slotKeyPrefix = "slots:"

// SlotCache keeps rendered slot grids in Redis for a short TTL. It is
// purely advisory: every failure degrades to a cache miss and the
// caller recomputes from the database.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewSlotCache(client *redis.Client, ttl time.Duration, logger logger.Logger) *SlotCache {
	return &SlotCache{client: client, ttl: ttl, logger: logger}
}

func (c *SlotCache) GetSlots(ctx context.Context, date string) ([]domain.Slot, bool) {
	data, err := c.client.Get(ctx, slotKeyPrefix+date).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Debug("slot cache read failed",
			logger.String("date", date),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) SetSlots(ctx context.Context, date string, slots []domain.Slot) {
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotKeyPrefix+date, data, c.ttl).Err(); err != nil {
		c.logger.Debug("slot cache write failed",
			logger.String("date", date),
			logger.String("error", err.Error()),
		)
	}
}

func (c *SlotCache) Invalidate(ctx context.Context, date string) {
	if err := c.client.Del(ctx, slotKeyPrefix+date).Err(); err != nil {
		c.logger.Debug("slot cache invalidation failed",
			logger.String("date", date),
			logger.String("error", err.Error()),
		)
	}
}
