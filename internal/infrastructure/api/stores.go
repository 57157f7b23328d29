package api

import (
	"context"
	"net/http"

	"github.com/tiendapos/terminal/internal/domain/store"
)

// ListStores fetches every store visible to the operator
func (c *Client) ListStores(ctx context.Context) ([]store.Store, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/store", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var stores []store.Store
	if err := env.decode(&stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// GetStore fetches a single store by ID
func (c *Client) GetStore(ctx context.Context, id string) (*store.Store, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/store/"+id, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var s store.Store
	if err := env.decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
