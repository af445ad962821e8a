package redisx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impilostore/orderdesk/internal/orders"
)

type fakeSource struct {
	totals []orders.ProductTotal
	err    error
	calls  int
}

func (f *fakeSource) ProductTotals(context.Context) ([]orders.ProductTotal, error) {
	f.calls++
	return f.totals, f.err
}

func TestNewClientAppliesTimeouts(t *testing.T) {
	c := New("localhost:6379")
	defer c.Close()

	opts := c.Options()
	assert.Equal(t, opTimeout, opts.DialTimeout)
	assert.Equal(t, opTimeout, opts.ReadTimeout)
	assert.Equal(t, opTimeout, opts.WriteTimeout)
}

func TestNilCacheIsAMiss(t *testing.T) {
	var c *TotalsCache
	_, ok := c.Get(context.Background())
	assert.False(t, ok)
	// and these must not panic
	c.Set(context.Background(), nil)
	c.Invalidate(context.Background())
}

func TestCachedTotalsFallsThroughWithoutRedis(t *testing.T) {
	src := &fakeSource{totals: []orders.ProductTotal{{Product: "DONSA", TotalQuantity: 2, ItemsSold: 1}}}
	ct := &CachedTotals{Source: src, Cache: nil}

	got, err := ct.ProductTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, src.totals, got)
	assert.Equal(t, 1, src.calls)

	// no cache, so the source is hit every time
	_, err = ct.ProductTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCachedTotalsPropagatesSourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("db down")}
	ct := &CachedTotals{Source: src}
	_, err := ct.ProductTotals(context.Background())
	assert.Error(t, err)
}
