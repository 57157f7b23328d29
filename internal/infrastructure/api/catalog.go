package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tiendapos/terminal/internal/domain/catalog"
)

func productQueryValues(q catalog.ProductQuery) url.Values {
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
	if q.CategoryID != "" {
		values.Set("categoryId", q.CategoryID)
	}
	if q.BrandID != "" {
		values.Set("brandId", q.BrandID)
	}
	return values
}

// ListProducts fetches catalog products matching the query and the total count
func (c *Client) ListProducts(ctx context.Context, q catalog.ProductQuery) ([]catalog.Product, int, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/product", productQueryValues(q), nil, nil)
	if err != nil {
		return nil, 0, err
	}
	var products []catalog.Product
	if err := env.decode(&products); err != nil {
		return nil, 0, err
	}
	return products, env.CountData, nil
}

// ListCategories fetches all product categories
func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/category", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var categories []catalog.Category
	if err := env.decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory registers a new product category
func (c *Client) CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*catalog.Category, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/category", nil, input, nil)
	if err != nil {
		return nil, err
	}
	var category catalog.Category
	if err := env.decode(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListBrands fetches all product brands
func (c *Client) ListBrands(ctx context.Context) ([]catalog.Brand, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/brand", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var brands []catalog.Brand
	if err := env.decode(&brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// CreateBrand registers a new product brand
func (c *Client) CreateBrand(ctx context.Context, input catalog.CreateBrandInput) (*catalog.Brand, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/brand", nil, input, nil)
	if err != nil {
		return nil, err
	}
	var brand catalog.Brand
	if err := env.decode(&brand); err != nil {
		return nil, err
	}
	return &brand, nil
}
