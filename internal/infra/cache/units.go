package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/courtspace/court-scheduler/internal/domain/schedule"
)

// CachedUnitDirectory caches unit-existence answers in Redis in front of
// the database-backed directory. Redis being down degrades to the
// underlying lookup instead of failing the request.
type CachedUnitDirectory struct {
	next   schedule.UnitDirectory
	client *redis.Client
	ttl    time.Duration
}

func NewCachedUnitDirectory(
	next schedule.UnitDirectory,
	client *redis.Client,
	ttl time.Duration,
) *CachedUnitDirectory {
	return &CachedUnitDirectory{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func unitKey(unitID uint) string {
	return fmt.Sprintf("unit_exists:%d", unitID)
}

func (c *CachedUnitDirectory) UnitExists(
	ctx context.Context,
	unitID uint,
) (bool, error) {

	if c.client != nil {
		val, err := c.client.Get(ctx, unitKey(unitID)).Result()
		if err == nil {
			return val == "1", nil
		}
	}

	exists, err := c.next.UnitExists(ctx, unitID)
	if err != nil {
		return false, err
	}

	if c.client != nil {
		val := "0"
		if exists {
			val = "1"
		}
		c.client.Set(ctx, unitKey(unitID), val, c.ttl)
	}

	return exists, nil
}

// Invalidate drops the cached answer for a unit; called after unit
// create/delete so the directory does not serve stale existence.
func (c *CachedUnitDirectory) Invalidate(ctx context.Context, unitID uint) {
	if c.client != nil {
		c.client.Del(ctx, unitKey(unitID))
	}
}

var _ schedule.UnitDirectory = (*CachedUnitDirectory)(nil)
