package cache

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tiendapos/terminal/internal/domain/trade"
)

const (
	defaultTTL             = 30 * time.Second
	defaultCleanupInterval = 30 * time.Second
)

// entry wraps a cached order page with its expiration time
type entry struct {
	orders    []trade.Order
	count     int
	expiresAt time.Time
}

func (e *entry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// OrderCacheOption is a functional option for configuring the cache
type OrderCacheOption func(*OrderCache)

// WithTTL sets how long a cached page stays fresh
func WithTTL(ttl time.Duration) OrderCacheOption {
	return func(c *OrderCache) {
		c.ttl = ttl
	}
}

// WithLogger sets the logger for the cache
func WithLogger(logger *zap.Logger) OrderCacheOption {
	return func(c *OrderCache) {
		c.logger = logger
	}
}

// OrderCache keeps recently fetched order pages in memory, keyed by the query
// that produced them. It lets the board re-render without refetching while a
// page is still fresh.
type OrderCache struct {
	pages   sync.Map // map[string]*entry
	ttl     time.Duration
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

// NewOrderCache creates an order page cache
func NewOrderCache(opts ...OrderCacheOption) *OrderCache {
	cache := &OrderCache{
		ttl:    defaultTTL,
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

// queryKey derives the cache key from a listing query
func queryKey(q trade.OrderQuery) string {
	return fmt.Sprintf("orders:%d:%d:%s:%s:%s:%s:%s",
		q.Limit, q.Offset, q.Order, q.Attr, q.Value, q.StoreID, q.DateFilter)
}

// Get returns the cached page for the query, or ok=false on a miss. The
// returned slice is a copy; mutating it does not touch the cache.
func (c *OrderCache) Get(q trade.OrderQuery) ([]trade.Order, int, bool) {
	key := queryKey(q)

	if value, ok := c.pages.Load(key); ok {
		e := value.(*entry)
		if !e.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			c.logger.Debug("order cache hit", zap.String("key", key))
			orders := make([]trade.Order, len(e.orders))
			copy(orders, e.orders)
			return orders, e.count, true
		}
		c.pages.Delete(key)
	}

	atomic.AddInt64(&c.misses, 1)
	c.logger.Debug("order cache miss", zap.String("key", key))
	return nil, 0, false
}

// Set stores a fetched page under its query
func (c *OrderCache) Set(q trade.OrderQuery, orders []trade.Order, count int) {
	key := queryKey(q)
	stored := make([]trade.Order, len(orders))
	copy(stored, orders)

	c.pages.Store(key, &entry{
		orders:    stored,
		count:     count,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.logger.Debug("cached order page",
		zap.String("key", key),
		zap.Int("orders", len(orders)),
		zap.Duration("ttl", c.ttl))
}

// Invalidate drops the cached page for one query
func (c *OrderCache) Invalidate(q trade.OrderQuery) {
	c.pages.Delete(queryKey(q))
}

// InvalidateAll drops every cached page. Called after any mutation that can
// change order listings.
func (c *OrderCache) InvalidateAll() {
	c.pages.Range(func(key, _ any) bool {
		c.pages.Delete(key)
		return true
	})
	c.logger.Debug("invalidated order cache")
}

// Stats returns hit and miss counters
func (c *OrderCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Close stops the background cleanup goroutine
func (c *OrderCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// cleanupExpired periodically removes expired pages
func (c *OrderCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.doCleanup()
		}
	}
}

func (c *OrderCache) doCleanup() {
	var removed int
	c.pages.Range(func(key, value any) bool {
		if value.(*entry).isExpired() {
			c.pages.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		c.logger.Debug("cleaned up expired order pages", zap.Int("removed", removed))
	}
}
