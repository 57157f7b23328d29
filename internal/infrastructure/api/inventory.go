package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tiendapos/terminal/internal/domain/catalog"
)

func inventoryQueryValues(q catalog.InventoryQuery) url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Order != "" {
		values.Set("order", q.Order)
	}
	if q.Attr != "" {
		values.Set("attr", q.Attr)
		values.Set("value", q.Value)
	}
	if q.StoreID != "" {
		values.Set("storeId", q.StoreID)
	}
	if q.CategoryID != "" {
		values.Set("categoryId", q.CategoryID)
	}
	return values
}

// ListInventory fetches the store products matching the query, together with
// the aggregate stats block and the total row count.
func (c *Client) ListInventory(ctx context.Context, q catalog.InventoryQuery) ([]catalog.Inventory, *catalog.InventoryStats, int, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/inventory", inventoryQueryValues(q), nil, nil)
	if err != nil {
		return nil, nil, 0, err
	}

	var rows []catalog.Inventory
	if err := env.decode(&rows); err != nil {
		return nil, nil, 0, err
	}

	var stats *catalog.InventoryStats
	if len(env.Stats) > 0 {
		stats = &catalog.InventoryStats{}
		if err := json.Unmarshal(env.Stats, stats); err != nil {
			return nil, nil, 0, fmt.Errorf("api: failed to parse inventory stats: %w", err)
		}
	}

	return rows, stats, env.CountData, nil
}

// GetInventory fetches a single store product by its inventory ID
func (c *Client) GetInventory(ctx context.Context, id string) (*catalog.Inventory, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/inventory/"+id, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var row catalog.Inventory
	if err := env.decode(&row); err != nil {
		return nil, err
	}
	return &row, nil
}
