package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendapos/terminal/internal/domain/trade"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, staticToken(token))
	require.NoError(t, err)
	return client, srv
}

func TestNewClientRejectsBadURL(t *testing.T) {
	_, err := NewClient("not a url", staticToken(""))
	assert.Error(t, err)

	_, err = NewClient("", staticToken(""))
	assert.Error(t, err)
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"statusCode":200,"data":[]}`))
	}, "tok-123")

	_, _, err := client.ListOrders(context.Background(), trade.OrderQuery{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestUnauthenticatedRequestOmitsBearer(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"statusCode":200,"data":[]}`))
	}, "")

	_, _, err := client.ListOrders(context.Background(), trade.OrderQuery{})
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestListOrders(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/order", r.URL.Path)
		assert.Equal(t, "200", r.URL.Query().Get("limit"))
		assert.Equal(t, "DESC", r.URL.Query().Get("order"))
		assert.Equal(t, "week", r.URL.Query().Get("dateFilter"))
		w.Write([]byte(`{
			"statusCode": 200,
			"data": [
				{"id": "o1", "status": "pendiente", "totalAmount": 60},
				{"id": "o2", "status": "completado", "totalAmount": 100}
			],
			"countData": 17
		}`))
	}, "tok")

	orders, count, err := client.ListOrders(context.Background(), trade.OrderQuery{
		Limit:      200,
		Order:      trade.SortDesc,
		DateFilter: trade.DateFilterWeek,
	})
	require.NoError(t, err)
	assert.Equal(t, 17, count)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, trade.OrderStatusPendiente, orders[0].Status)
	assert.Equal(t, 60.0, orders[0].TotalAmount)
}

func TestCreateOrder(t *testing.T) {
	var body trade.CreateOrderInput
	var idempotencyKey string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		idempotencyKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"statusCode":201,"data":{"id":"o-new","status":"pendiente","totalAmount":60}}`))
	}, "tok")

	input := trade.CreateOrderInput{
		TotalAmount:   60,
		Type:          trade.OrderTypeQuick,
		PaymentMethod: "cash",
		TotalReceived: 60,
		StoreID:       "store-1",
		CustomerID:    "cust-1",
		Items:         []trade.OrderItem{{StoreProductID: "p1", Quantity: 2, Price: 25}},
	}
	order, err := client.CreateOrder(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "o-new", order.ID)
	assert.NotEmpty(t, idempotencyKey)
	assert.Equal(t, 60.0, body.TotalAmount)
	assert.Equal(t, "store-1", body.StoreID)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
}

func TestUpdateOrderStatus(t *testing.T) {
	var patch map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/order/o1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		w.Write([]byte(`{"statusCode":200,"data":{"id":"o1","status":"en-proceso"}}`))
	}, "tok")

	order, err := client.UpdateOrderStatus(context.Background(), "o1", trade.OrderStatusEnProceso)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusEnProceso, order.Status)

	// only the status travels in the patch
	assert.Equal(t, map[string]any{"status": "en-proceso"}, patch)
}

func TestBackendErrorShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Transición de estado no permitida","statusCode":409,"error":"Conflict"}`))
	}, "tok")

	_, err := client.UpdateOrderStatus(context.Background(), "o1", trade.OrderStatusCompletado)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, "Transición de estado no permitida", apiErr.Message)
	assert.Equal(t, "Conflict", apiErr.ErrCode)
	assert.False(t, apiErr.IsNetworkError())
}

func TestNonJSONErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}, "tok")

	_, _, err := client.ListOrders(context.Background(), trade.OrderQuery{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "502")
}

func TestNetworkErrorHasStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // guaranteed connection refused

	client, err := NewClient(srv.URL, staticToken(""))
	require.NoError(t, err)

	_, _, err = client.ListOrders(context.Background(), trade.OrderQuery{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.True(t, apiErr.IsNetworkError())
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, "tok")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := client.ListOrders(ctx, trade.OrderQuery{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNetworkError())
}
