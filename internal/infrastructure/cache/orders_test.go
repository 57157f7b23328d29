package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendapos/terminal/internal/domain/trade"
)

func testQuery() trade.OrderQuery {
	return trade.OrderQuery{Limit: 200, Order: trade.SortDesc, DateFilter: trade.DateFilterWeek}
}

func TestCacheMissThenHit(t *testing.T) {
	c := NewOrderCache()
	defer c.Close()

	_, _, ok := c.Get(testQuery())
	assert.False(t, ok)

	orders := []trade.Order{{ID: "o1", Status: trade.OrderStatusPendiente}}
	c.Set(testQuery(), orders, 42)

	got, count, ok := c.Get(testQuery())
	require.True(t, ok)
	assert.Equal(t, 42, count)
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestDifferentQueriesDifferentEntries(t *testing.T) {
	c := NewOrderCache()
	defer c.Close()

	asc := testQuery()
	asc.Order = trade.SortAsc
	c.Set(testQuery(), []trade.Order{{ID: "desc"}}, 1)

	_, _, ok := c.Get(asc)
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := NewOrderCache(WithTTL(10 * time.Millisecond))
	defer c.Close()

	c.Set(testQuery(), []trade.Order{{ID: "o1"}}, 1)
	time.Sleep(20 * time.Millisecond)

	_, _, ok := c.Get(testQuery())
	assert.False(t, ok)
}

func TestInvalidateAll(t *testing.T) {
	c := NewOrderCache()
	defer c.Close()

	c.Set(testQuery(), []trade.Order{{ID: "o1"}}, 1)
	c.InvalidateAll()

	_, _, ok := c.Get(testQuery())
	assert.False(t, ok)
}

func TestGetReturnsACopy(t *testing.T) {
	c := NewOrderCache()
	defer c.Close()

	c.Set(testQuery(), []trade.Order{{ID: "o1", Status: trade.OrderStatusPendiente}}, 1)

	got, _, ok := c.Get(testQuery())
	require.True(t, ok)
	got[0].Status = trade.OrderStatusCancelado

	fresh, _, ok := c.Get(testQuery())
	require.True(t, ok)
	assert.Equal(t, trade.OrderStatusPendiente, fresh[0].Status)
}
