package api

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sleeperbus/booking-web/internal/config"
	"github.com/sleeperbus/booking-web/internal/model"
)

// CachedCatalog wraps a Client with a Redis cache for the two catalog
// reads, which dominate traffic: every page render needs the seat list
// and the meal list, while bookings mutate rarely.  Seat lists use a
// short TTL because availability changes with every booking; the meal
// catalog is effectively static and can live longer.  When Redis is
// unavailable the wrapper degrades to pass-through, never to an error.
// All other Client methods are promoted unchanged.
type CachedCatalog struct {
	*Client
	rdb *redis.Client
	cfg config.CacheConfig
}

// NewCachedCatalog builds the caching wrapper.  rdb may be nil, in which
// case every call goes straight to the upstream API.
func NewCachedCatalog(c *Client, rdb *redis.Client, cfg config.CacheConfig) *CachedCatalog {
	return &CachedCatalog{Client: c, rdb: rdb, cfg: cfg}
}

// InvalidateSeats drops the cached seat list for one date.  Called after
// a booking or cancellation touches that date so the next render shows
// the seats' true availability instead of a stale cache entry.
func (cc *CachedCatalog) InvalidateSeats(ctx context.Context, date string) {
	if cc.rdb == nil || !cc.cfg.Enabled {
		return
	}
	_ = cc.rdb.Del(ctx, cc.seatKey(date)).Err()
}

// ListSeats serves the seat list from cache when possible.
func (cc *CachedCatalog) ListSeats(ctx context.Context, date string) ([]model.Seat, error) {
	if cc.rdb == nil || !cc.cfg.Enabled {
		return cc.Client.ListSeats(ctx, date)
	}
	key := cc.seatKey(date)
	if bs, err := cc.rdb.Get(ctx, key).Bytes(); err == nil {
		var seats []model.Seat
		if json.Unmarshal(bs, &seats) == nil {
			return seats, nil
		}
	}
	seats, err := cc.Client.ListSeats(ctx, date)
	if err != nil {
		return nil, err
	}
	if bs, err := json.Marshal(seats); err == nil {
		_ = cc.rdb.SetEx(ctx, key, bs, cc.cfg.SeatsTTL).Err()
	}
	return seats, nil
}

// ListMeals serves the meal catalog from cache when possible.
func (cc *CachedCatalog) ListMeals(ctx context.Context) ([]model.Meal, error) {
	if cc.rdb == nil || !cc.cfg.Enabled {
		return cc.Client.ListMeals(ctx)
	}
	key := cc.cfg.Prefix + ":meals"
	if bs, err := cc.rdb.Get(ctx, key).Bytes(); err == nil {
		var meals []model.Meal
		if json.Unmarshal(bs, &meals) == nil {
			return meals, nil
		}
	}
	meals, err := cc.Client.ListMeals(ctx)
	if err != nil {
		return nil, err
	}
	if bs, err := json.Marshal(meals); err == nil {
		_ = cc.rdb.SetEx(ctx, key, bs, cc.cfg.MealsTTL).Err()
	}
	return meals, nil
}

// seatKey builds a stable, bounded-length key for a date's seat list.
func (cc *CachedCatalog) seatKey(date string) string {
	sum := sha1.Sum([]byte("seats:" + date))
	return fmt.Sprintf("%s:%x", cc.cfg.Prefix, sum[:])
}
