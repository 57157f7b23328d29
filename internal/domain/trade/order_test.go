package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range AllStatuses() {
		assert.True(t, status.IsValid(), status)
	}
	assert.False(t, OrderStatus("enviado").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusTitle(t *testing.T) {
	assert.Equal(t, "En Proceso", OrderStatusEnProceso.Title())
	assert.Equal(t, "Pendiente", OrderStatusPendiente.Title())
}

func TestOrderTypeIsValid(t *testing.T) {
	assert.True(t, OrderTypeQuick.IsValid())
	assert.True(t, OrderTypeInstallment.IsValid())
	assert.True(t, OrderTypeDelivery.IsValid())
	assert.False(t, OrderType("layaway").IsValid())
}

func TestSortDirectionToggle(t *testing.T) {
	assert.Equal(t, SortAsc, SortDesc.Toggle())
	assert.Equal(t, SortDesc, SortAsc.Toggle())
}

func TestGroupByStatus(t *testing.T) {
	orders := []Order{
		{ID: "o1", Status: OrderStatusPendiente},
		{ID: "o2", Status: OrderStatusCompletado},
		{ID: "o3", Status: OrderStatusPendiente},
		{ID: "o4", Status: OrderStatus("desconocido")},
		{ID: "o5", Status: OrderStatusCancelado},
	}

	grouped := GroupByStatus(orders)

	require.Len(t, grouped, 5)
	assert.Len(t, grouped[OrderStatusPendiente], 2)
	assert.Len(t, grouped[OrderStatusCompletado], 1)
	assert.Len(t, grouped[OrderStatusCancelado], 1)
	assert.Empty(t, grouped[OrderStatusEnProceso])
	assert.Empty(t, grouped[OrderStatusEnCamino])

	// relative input ordering survives inside each bucket
	assert.Equal(t, "o1", grouped[OrderStatusPendiente][0].ID)
	assert.Equal(t, "o3", grouped[OrderStatusPendiente][1].ID)
}

func TestGroupByStatusEmptyInput(t *testing.T) {
	grouped := GroupByStatus(nil)
	require.Len(t, grouped, 5)
	for _, status := range AllStatuses() {
		assert.NotNil(t, grouped[status])
		assert.Empty(t, grouped[status])
	}
}
