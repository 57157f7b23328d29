package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tiendapos/terminal/internal/domain/partner"
)

func customerQueryValues(q partner.CustomerQuery) url.Values {
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
	return values
}

// ListCustomers fetches customers matching the query and the total count
func (c *Client) ListCustomers(ctx context.Context, q partner.CustomerQuery) ([]partner.Customer, int, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/customer", customerQueryValues(q), nil, nil)
	if err != nil {
		return nil, 0, err
	}
	var customers []partner.Customer
	if err := env.decode(&customers); err != nil {
		return nil, 0, err
	}
	return customers, env.CountData, nil
}

// CreateCustomer registers a new customer
func (c *Client) CreateCustomer(ctx context.Context, input partner.CreateCustomerInput) (*partner.Customer, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/customer", nil, input, nil)
	if err != nil {
		return nil, err
	}
	var customer partner.Customer
	if err := env.decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer applies a partial update to a customer
func (c *Client) UpdateCustomer(ctx context.Context, id string, input partner.CreateCustomerInput) (*partner.Customer, error) {
	env, err := c.do(ctx, http.MethodPatch, "/api/customer/"+id, nil, input, nil)
	if err != nil {
		return nil, err
	}
	var customer partner.Customer
	if err := env.decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer removes a customer
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/customer/"+id, nil, nil, nil)
	return err
}
