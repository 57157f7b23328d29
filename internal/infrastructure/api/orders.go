package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/tiendapos/terminal/internal/domain/trade"
)

// OrderPatch is a partial order update. Zero-valued fields are omitted from
// the request body.
type OrderPatch struct {
	Status        trade.OrderStatus `json:"status,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
	TotalReceived float64           `json:"totalReceived,omitempty"`
}

func orderQueryValues(q trade.OrderQuery) url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Order != "" {
		values.Set("order", string(q.Order))
	}
	if q.Attr != "" {
		values.Set("attr", q.Attr)
		values.Set("value", q.Value)
	}
	if q.StoreID != "" {
		values.Set("storeId", q.StoreID)
	}
	if q.DateFilter != "" {
		values.Set("dateFilter", string(q.DateFilter))
	}
	return values
}

// ListOrders fetches orders matching the query. It returns the page of orders
// and the total count reported by the backend.
func (c *Client) ListOrders(ctx context.Context, q trade.OrderQuery) ([]trade.Order, int, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/order", orderQueryValues(q), nil, nil)
	if err != nil {
		return nil, 0, err
	}
	var orders []trade.Order
	if err := env.decode(&orders); err != nil {
		return nil, 0, err
	}
	return orders, env.CountData, nil
}

// GetOrder fetches a single order by ID
func (c *Client) GetOrder(ctx context.Context, id string) (*trade.Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/order/"+id, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var order trade.Order
	if err := env.decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder submits a new order. Each call carries a fresh Idempotency-Key
// so a retried submission cannot create the order twice.
func (c *Client) CreateOrder(ctx context.Context, input trade.CreateOrderInput) (*trade.Order, error) {
	headers := http.Header{}
	headers.Set("Idempotency-Key", uuid.NewString())

	env, err := c.do(ctx, http.MethodPost, "/api/order", nil, input, headers)
	if err != nil {
		return nil, err
	}
	var order trade.Order
	if err := env.decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder applies a partial update to an order
func (c *Client) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (*trade.Order, error) {
	env, err := c.do(ctx, http.MethodPatch, "/api/order/"+id, nil, patch, nil)
	if err != nil {
		return nil, err
	}
	var order trade.Order
	if err := env.decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus changes only the status of an order
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status trade.OrderStatus) (*trade.Order, error) {
	return c.UpdateOrder(ctx, id, OrderPatch{Status: status})
}

// DeleteOrder removes an order
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/order/"+id, nil, nil, nil)
	return err
}
