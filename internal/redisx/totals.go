package redisx

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/impilostore/orderdesk/internal/orders"
)

const keyProductTotals = "totals:products"

// TTLTotals bounds staleness of the cached aggregate between writes.
var TTLTotals = 5 * time.Minute

// TotalsCache is a small read-through cache for the product-totals
// aggregate. A nil receiver (redis not configured) behaves as a permanent
// miss, so callers never branch on availability.
type TotalsCache struct{ RDB *redis.Client }

func (c *TotalsCache) Get(ctx context.Context) ([]orders.ProductTotal, bool) {
	if c == nil || c.RDB == nil {
		return nil, false
	}
	b, err := c.RDB.Get(ctx, keyProductTotals).Bytes()
	if err != nil {
		return nil, false
	}
	var out []orders.ProductTotal
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *TotalsCache) Set(ctx context.Context, totals []orders.ProductTotal) {
	if c == nil || c.RDB == nil {
		return
	}
	b, err := json.Marshal(totals)
	if err != nil {
		return
	}
	_ = c.RDB.Set(ctx, keyProductTotals, b, TTLTotals).Err()
}

// Invalidate drops the cached aggregate. Called after every order write.
func (c *TotalsCache) Invalidate(ctx context.Context) {
	if c == nil || c.RDB == nil {
		return
	}
	_ = c.RDB.Del(ctx, keyProductTotals).Err()
}

// TotalsSource is the authoritative aggregate query.
type TotalsSource interface {
	ProductTotals(ctx context.Context) ([]orders.ProductTotal, error)
}

// CachedTotals layers the cache over the store. Errors from the store pass
// through untouched; cache errors are treated as misses.
type CachedTotals struct {
	Source TotalsSource
	Cache  *TotalsCache
}

func (c *CachedTotals) ProductTotals(ctx context.Context) ([]orders.ProductTotal, error) {
	if totals, ok := c.Cache.Get(ctx); ok {
		return totals, nil
	}
	totals, err := c.Source.ProductTotals(ctx)
	if err != nil {
		return nil, err
	}
	c.Cache.Set(ctx, totals)
	return totals, nil
}
