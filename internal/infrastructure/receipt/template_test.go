package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendapos/terminal/internal/domain/trade"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "Bs. 1.234,50", FormatAmount(1234.5))
	assert.Equal(t, "Bs. 60,00", FormatAmount(60))
	assert.Equal(t, "Bs. 0,99", FormatAmount(0.99))
}

func sampleReceipt() Receipt {
	return Receipt{
		OrderID:       "o-123",
		StoreName:     "Sucursal Centro",
		CustomerName:  "Ana Quispe",
		Type:          trade.OrderTypeQuick,
		PaymentMethod: "cash",
		IssuedAt:      time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		Lines: []Line{
			{Name: "Zapatos", Quantity: 2, Price: 25, Total: 50},
			{Name: "Medias", Quantity: 1, Price: 10, Total: 10},
		},
		Total:         60,
		TotalReceived: 60,
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleReceipt())
	require.NoError(t, err)

	assert.Contains(t, html, "Sucursal Centro")
	assert.Contains(t, html, "Ana Quispe")
	assert.Contains(t, html, "o-123")
	assert.Contains(t, html, "Zapatos")
	assert.Contains(t, html, "15/03/2026 10:30")
	assert.Contains(t, html, "Bs. 60,00")
	assert.Contains(t, html, "Bs. 25,00")
}

func TestRenderHTMLDeliveryAndInstallments(t *testing.T) {
	r := sampleReceipt()
	r.DeliveryCost = 10
	r.Installments = 3
	r.Notes = "entregar por la tarde"

	html, err := RenderHTML(r)
	require.NoError(t, err)

	assert.Contains(t, html, "Envío: Bs. 10,00")
	assert.Contains(t, html, "Cuotas: 3")
	assert.Contains(t, html, "entregar por la tarde")
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	r := sampleReceipt()
	r.CustomerName = "<script>alert(1)</script>"

	html, err := RenderHTML(r)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestFromOrder(t *testing.T) {
	issued := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	order := &trade.Order{
		ID:            "o-9",
		TotalAmount:   110,
		TotalReceived: 40,
		Type:          trade.OrderTypeInstallment,
		PaymentMethod: "qr",
		Store:         &trade.OrderStoreRef{ID: "s1", Name: "Sucursal Sur"},
		Customer:      &trade.OrderCustomerRef{ID: "c1", Name: "Luis"},
		InstallmentInfo: &trade.InstallmentInfo{
			NumberOfInstallments: 3,
			NextPaymentDate:      "2026-04-15",
		},
		Items: []trade.OrderLine{
			{
				ID: "l1", Quantity: 2, Price: 55,
				StoreProduct: &trade.OrderLineStoreProduct{
					ID:      "sp1",
					Product: &trade.OrderLineProduct{ID: "p1", Name: "Mochila"},
				},
			},
		},
	}

	r := FromOrder(order, issued)
	assert.Equal(t, "o-9", r.OrderID)
	assert.Equal(t, "Sucursal Sur", r.StoreName)
	assert.Equal(t, "Luis", r.CustomerName)
	assert.Equal(t, 3, r.Installments)
	assert.Equal(t, 110.0, r.Total)
	assert.Equal(t, 40.0, r.TotalReceived)
	require.Len(t, r.Lines, 1)
	assert.Equal(t, "Mochila", r.Lines[0].Name)
	assert.Equal(t, 110.0, r.Lines[0].Total)
}
