package trade

import (
	"github.com/tiendapos/terminal/internal/domain/shared"
)

// DragPhase is the state of the board's drag interaction.
// Transitions: Idle -> Dragging -> Resolving -> Idle. The Resolving phase
// lasts while the status change awaits server confirmation; starting another
// drag during it is rejected so at most one move is in flight.
type DragPhase string

const (
	PhaseIdle      DragPhase = "idle"
	PhaseDragging  DragPhase = "dragging"
	PhaseResolving DragPhase = "resolving"
)

// DropTarget describes where the dragged card is hovering: a whole column
// (empty-column semantics) or right after another card.
type DropTarget struct {
	Status       OrderStatus
	AfterOrderID string // empty when the target is the column itself
}

// MoveIntent is the resolved outcome of a completed drag. Moved is false when
// the drop resolved to the order's current column or to nothing at all.
type MoveIntent struct {
	OrderID string
	From    OrderStatus
	To      OrderStatus
	Moved   bool
}

// Board holds the client-side shadow of the order list grouped into the five
// status columns, plus the drag interaction state. It performs no I/O; the
// application layer drives it and reconciles with the server.
type Board struct {
	orders []Order
	sort   SortDirection
	phase  DragPhase
	active string
	target *DropTarget
}

// NewBoard creates an empty board with descending sort
func NewBoard() *Board {
	return &Board{
		orders: []Order{},
		sort:   SortDesc,
		phase:  PhaseIdle,
	}
}

// SetOrders replaces the board's order list
func (b *Board) SetOrders(orders []Order) {
	b.orders = make([]Order, len(orders))
	copy(b.orders, orders)
}

// Orders returns a copy of the flat order list
func (b *Board) Orders() []Order {
	out := make([]Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Grouped returns the orders partitioned into the five status buckets.
// The grouping is derived state, recomputed on every call.
func (b *Board) Grouped() map[OrderStatus][]Order {
	return GroupByStatus(b.orders)
}

// Column returns the orders of a single status bucket
func (b *Board) Column(status OrderStatus) []Order {
	return b.Grouped()[status]
}

// Find returns the order with the given ID
func (b *Board) Find(orderID string) (*Order, bool) {
	for i := range b.orders {
		if b.orders[i].ID == orderID {
			return &b.orders[i], true
		}
	}
	return nil, false
}

// Sort returns the current sort direction
func (b *Board) Sort() SortDirection {
	return b.sort
}

// ToggleSort flips the sort direction applied uniformly across all columns
func (b *Board) ToggleSort() SortDirection {
	b.sort = b.sort.Toggle()
	return b.sort
}

// Phase returns the current drag phase
func (b *Board) Phase() DragPhase {
	return b.phase
}

// ActiveOrder returns the order being dragged, if any
func (b *Board) ActiveOrder() (*Order, bool) {
	if b.active == "" {
		return nil, false
	}
	return b.Find(b.active)
}

// Target returns the current drop target indicator, if any
func (b *Board) Target() *DropTarget {
	return b.target
}

// DragStart records the dragged order. It fails while a previous move is
// still resolving, so moves serialize.
func (b *Board) DragStart(orderID string) error {
	switch b.phase {
	case PhaseResolving:
		return shared.ErrMoveInFlight
	case PhaseDragging:
		return shared.ErrInvalidState
	}
	if _, ok := b.Find(orderID); !ok {
		return shared.ErrNotFound
	}
	b.phase = PhaseDragging
	b.active = orderID
	b.target = nil
	return nil
}

// DragOver resolves the hover target for the drop-position indicator. An
// unknown target clears the indicator. It mutates no order state.
func (b *Board) DragOver(targetID string) *DropTarget {
	if b.phase != PhaseDragging {
		return nil
	}
	status, afterID, ok := b.resolveTarget(targetID)
	if !ok {
		b.target = nil
		return nil
	}
	b.target = &DropTarget{Status: status, AfterOrderID: afterID}
	return b.target
}

// DragEnd resolves the drop destination and, when it implies a status change,
// transitions the board to Resolving and returns the move intent. Dropping on
// the order's own column, or on nothing, ends the drag with no move.
func (b *Board) DragEnd(targetID string) (MoveIntent, error) {
	if b.phase != PhaseDragging {
		return MoveIntent{}, shared.ErrInvalidState
	}
	active, ok := b.Find(b.active)
	if !ok {
		b.reset()
		return MoveIntent{}, shared.ErrNotFound
	}

	status, _, ok := b.resolveTarget(targetID)
	if !ok || status == active.Status {
		b.reset()
		return MoveIntent{OrderID: active.ID, From: active.Status, To: active.Status}, nil
	}

	b.phase = PhaseResolving
	b.target = nil
	return MoveIntent{OrderID: active.ID, From: active.Status, To: status, Moved: true}, nil
}

// ApplyMove rewrites the dragged order's status locally. Called before the
// server confirms, so the board shows the new column immediately.
func (b *Board) ApplyMove(intent MoveIntent) {
	for i := range b.orders {
		if b.orders[i].ID == intent.OrderID {
			b.orders[i].Status = intent.To
			return
		}
	}
}

// SnapshotOrders captures the order list for rollback
func (b *Board) SnapshotOrders() []Order {
	return b.Orders()
}

// RestoreOrders puts a snapshot back exactly
func (b *Board) RestoreOrders(snapshot []Order) {
	b.SetOrders(snapshot)
}

// FinishMove ends the Resolving phase, regardless of outcome
func (b *Board) FinishMove() {
	b.reset()
}

func (b *Board) reset() {
	b.phase = PhaseIdle
	b.active = ""
	b.target = nil
}

// resolveTarget maps a drop target ID to a destination status: the target is
// either a column (the ID is a status) or another order card (the ID is that
// order's, destination is its status).
func (b *Board) resolveTarget(targetID string) (OrderStatus, string, bool) {
	if status := OrderStatus(targetID); status.IsValid() {
		return status, "", true
	}
	if order, ok := b.Find(targetID); ok {
		return order.Status, order.ID, true
	}
	return "", "", false
}
