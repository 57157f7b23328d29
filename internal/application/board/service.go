package board

import (
	"context"

	"go.uber.org/zap"

	"github.com/tiendapos/terminal/internal/domain/shared"
	"github.com/tiendapos/terminal/internal/domain/trade"
	"github.com/tiendapos/terminal/internal/infrastructure/cache"
)

// OrderAPI is the slice of the backend the board needs
type OrderAPI interface {
	ListOrders(ctx context.Context, q trade.OrderQuery) ([]trade.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id string, status trade.OrderStatus) (*trade.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithPageSize sets how many orders one load fetches
func WithPageSize(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithDateFilter restricts loads to a date window
func WithDateFilter(f trade.DateFilter) ServiceOption {
	return func(s *Service) {
		if f.IsValid() {
			s.dateFilter = f
		}
	}
}

// WithCache caches fetched order pages between loads
func WithCache(c *cache.OrderCache) ServiceOption {
	return func(s *Service) {
		s.cache = c
	}
}

const defaultPageSize = 200

// Service drives the order board: it loads the order list from the backend
// and reconciles the board's optimistic state with server confirmations. A
// status move applies locally first and rolls back to the exact pre-drag
// list when the backend rejects it.
type Service struct {
	api    OrderAPI
	cache  *cache.OrderCache
	board  *trade.Board
	logger *zap.Logger

	pageSize   int
	dateFilter trade.DateFilter
	storeID    string
	total      int
}

// NewService creates a board service with an empty board
func NewService(api OrderAPI, opts ...ServiceOption) *Service {
	s := &Service{
		api:      api,
		board:    trade.NewBoard(),
		logger:   zap.NewNop(),
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the underlying board state
func (s *Service) Board() *trade.Board {
	return s.board
}

// Total returns the backend's total order count for the current filters
func (s *Service) Total() int {
	return s.total
}

// SetStoreFilter restricts loads to one store. Empty means all stores.
func (s *Service) SetStoreFilter(storeID string) {
	s.storeID = storeID
}

func (s *Service) query() trade.OrderQuery {
	return trade.OrderQuery{
		Limit:      s.pageSize,
		Order:      s.board.Sort(),
		StoreID:    s.storeID,
		DateFilter: s.dateFilter,
	}
}

// Load fetches the order list for the current filters and sort, serving from
// the cache while a page is still fresh, and replaces the board contents.
func (s *Service) Load(ctx context.Context) error {
	q := s.query()

	if s.cache != nil {
		if orders, count, ok := s.cache.Get(q); ok {
			s.board.SetOrders(orders)
			s.total = count
			return nil
		}
	}

	orders, count, err := s.api.ListOrders(ctx, q)
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Set(q, orders, count)
	}
	s.board.SetOrders(orders)
	s.total = count

	s.logger.Debug("board loaded",
		zap.Int("orders", len(orders)),
		zap.Int("total", count),
		zap.String("sort", string(s.board.Sort())))
	return nil
}

// Refresh drops any cached page and reloads from the backend
func (s *Service) Refresh(ctx context.Context) error {
	if s.cache != nil {
		s.cache.InvalidateAll()
	}
	return s.Load(ctx)
}

// ToggleSort flips the sort direction and refetches the list so every column
// reorders consistently.
func (s *Service) ToggleSort(ctx context.Context) error {
	s.board.ToggleSort()
	return s.Load(ctx)
}

// DragStart begins dragging a card
func (s *Service) DragStart(orderID string) error {
	return s.board.DragStart(orderID)
}

// DragOver updates the drop-position indicator while dragging
func (s *Service) DragOver(targetID string) *trade.DropTarget {
	return s.board.DragOver(targetID)
}

// DragEnd completes the drag. When the drop implies a status change, the
// board shows the new column immediately and the change is sent to the
// backend; a rejection restores the pre-drag list exactly. A second drag
// attempted while the change is in flight fails with ErrMoveInFlight.
func (s *Service) DragEnd(ctx context.Context, targetID string) (trade.MoveIntent, error) {
	intent, err := s.board.DragEnd(targetID)
	if err != nil {
		return trade.MoveIntent{}, err
	}
	if !intent.Moved {
		return intent, nil
	}
	defer s.board.FinishMove()

	update := shared.OptimisticUpdate[[]trade.Order]{
		Snapshot: s.board.SnapshotOrders,
		Apply: func() {
			s.board.ApplyMove(intent)
		},
		Commit: func(ctx context.Context) error {
			_, err := s.api.UpdateOrderStatus(ctx, intent.OrderID, intent.To)
			return err
		},
		Restore: s.board.RestoreOrders,
	}

	if err := update.Run(ctx); err != nil {
		s.logger.Warn("status change rejected, rolled back",
			zap.String("order_id", intent.OrderID),
			zap.String("from", string(intent.From)),
			zap.String("to", string(intent.To)),
			zap.Error(err))
		return intent, err
	}

	s.logger.Info("order moved",
		zap.String("order_id", intent.OrderID),
		zap.String("from", string(intent.From)),
		zap.String("to", string(intent.To)))

	// the move is committed; refetch so the board picks up any concurrent
	// backend changes, but a failed refetch does not undo the move
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("board refetch after move failed",
			zap.String("order_id", intent.OrderID),
			zap.Error(err))
	}
	return intent, nil
}

// MoveOrder changes an order's status directly, without a drag interaction.
// It uses the same optimistic apply-then-confirm path as DragEnd.
func (s *Service) MoveOrder(ctx context.Context, orderID string, to trade.OrderStatus) error {
	order, ok := s.board.Find(orderID)
	if !ok {
		return shared.ErrNotFound
	}
	if order.Status == to {
		return nil
	}
	intent := trade.MoveIntent{OrderID: orderID, From: order.Status, To: to, Moved: true}

	update := shared.OptimisticUpdate[[]trade.Order]{
		Snapshot: s.board.SnapshotOrders,
		Apply: func() {
			s.board.ApplyMove(intent)
		},
		Commit: func(ctx context.Context) error {
			_, err := s.api.UpdateOrderStatus(ctx, orderID, to)
			return err
		},
		Restore: s.board.RestoreOrders,
	}
	if err := update.Run(ctx); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("board refetch after move failed",
			zap.String("order_id", orderID),
			zap.Error(err))
	}
	return nil
}

// DeleteOrder removes an order and refreshes the board
func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.api.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
