package receipt

import (
	"time"

	"github.com/tiendapos/terminal/internal/domain/shared/valueobject"
	"github.com/tiendapos/terminal/internal/domain/trade"
)

// Line is one printed item row
type Line struct {
	Name     string
	Quantity int
	Price    float64
	Total    float64
}

// Receipt is the printable view of a completed sale
type Receipt struct {
	OrderID       string
	StoreName     string
	CustomerName  string
	Type          trade.OrderType
	PaymentMethod string
	IssuedAt      time.Time
	Lines         []Line
	DeliveryCost  float64
	Total         float64
	TotalReceived float64
	Installments  int
	Notes         string
}

// FromOrder builds the printable receipt from a created order
func FromOrder(order *trade.Order, issuedAt time.Time) Receipt {
	r := Receipt{
		OrderID:       order.ID,
		Type:          order.Type,
		PaymentMethod: order.PaymentMethod,
		IssuedAt:      issuedAt,
		Total:         order.TotalAmount,
		TotalReceived: order.TotalReceived,
		Notes:         order.Notes,
	}
	if order.Store != nil {
		r.StoreName = order.Store.Name
	}
	if order.Customer != nil {
		r.CustomerName = order.Customer.Name
	}
	if order.DeliveryInfo != nil {
		r.DeliveryCost = order.DeliveryInfo.Cost
	}
	if order.InstallmentInfo != nil {
		r.Installments = order.InstallmentInfo.NumberOfInstallments
	}
	for _, item := range order.Items {
		line := Line{
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    valueobject.NewMoneyBOBFromFloat(item.Price).MultiplyByInt(int64(item.Quantity)).Float64(),
		}
		if item.StoreProduct != nil && item.StoreProduct.Product != nil {
			line.Name = item.StoreProduct.Product.Name
		}
		r.Lines = append(r.Lines, line)
	}
	return r
}
