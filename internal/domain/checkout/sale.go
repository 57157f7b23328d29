package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendapos/terminal/internal/domain/shared"
	"github.com/tiendapos/terminal/internal/domain/shared/valueobject"
	"github.com/tiendapos/terminal/internal/domain/trade"
)

// PaymentMethod is how the customer pays at the counter
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentQR   PaymentMethod = "qr"
	PaymentCard PaymentMethod = "card"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentQR, PaymentCard:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// InstallmentDetails is the sub-form of an installment sale. The initial
// payment must be positive and no greater than the sale total.
type InstallmentDetails struct {
	InitialPayment       float64 `validate:"gt=0"`
	NumberOfInstallments int     `validate:"min=1"`
	NextPaymentDate      string  `validate:"required"`
}

// InstallmentAmount derives the per-installment amount from the sale total:
// (total - initialPayment) / numberOfInstallments, rounded to cents. It is a
// pure function so it can be recomputed whenever either input changes.
func (d InstallmentDetails) InstallmentAmount(total decimal.Decimal) decimal.Decimal {
	if d.NumberOfInstallments < 1 {
		return decimal.Zero
	}
	remaining, err := valueobject.NewMoneyBOB(total).Subtract(valueobject.NewMoneyBOBFromFloat(d.InitialPayment))
	if err != nil {
		return decimal.Zero
	}
	per, err := remaining.Divide(decimal.NewFromInt(int64(d.NumberOfInstallments)))
	if err != nil {
		return decimal.Zero
	}
	return per.Round(2).Amount()
}

// Check validates the details against the sale total
func (d InstallmentDetails) Check(total decimal.Decimal) error {
	initial := valueobject.NewMoneyBOBFromFloat(d.InitialPayment)
	if !initial.IsPositive() {
		return shared.NewDomainError("INVALID_INITIAL_PAYMENT", "Initial payment must be positive")
	}
	if over, _ := initial.GreaterThan(valueobject.NewMoneyBOB(total)); over {
		return shared.NewDomainError("INVALID_INITIAL_PAYMENT", "Initial payment cannot exceed the total")
	}
	if d.NumberOfInstallments < 1 {
		return shared.NewDomainError("INVALID_INSTALLMENTS", "At least one installment is required")
	}
	if d.NextPaymentDate == "" {
		return shared.NewDomainError("INVALID_NEXT_PAYMENT_DATE", "Next payment date is required")
	}
	return nil
}

// DeliveryDetails is the sub-form of a delivery sale. The address must be
// non-empty and the cost positive; the charged total is subtotal + cost.
type DeliveryDetails struct {
	Address string  `validate:"required"`
	Cost    float64 `validate:"gt=0"`
	Notes   string
}

// Check validates the delivery details
func (d DeliveryDetails) Check() error {
	if d.Address == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Delivery address is required")
	}
	if d.Cost <= 0 {
		return shared.NewDomainError("INVALID_DELIVERY_COST", "Delivery cost must be positive")
	}
	return nil
}

// SaleDetails carries the per-type sub-form of a finalized sale. Exactly the
// field matching the sale type is consulted; the others are ignored.
type SaleDetails struct {
	PaymentMethod PaymentMethod
	Notes         string
	Installment   *InstallmentDetails
	Delivery      *DeliveryDetails
}

// SaleTotal returns the amount charged for the sale: the cart subtotal, plus
// the delivery cost for delivery sales.
func SaleTotal(cart *Session, saleType trade.OrderType, details SaleDetails) decimal.Decimal {
	total := cart.SubtotalMoney()
	if saleType == trade.OrderTypeDelivery && details.Delivery != nil {
		total = total.MustAdd(valueobject.NewMoneyBOBFromFloat(details.Delivery.Cost))
	}
	return total.Amount()
}

// BuildOrderInput assembles the order-creation payload for the given sale
// type. It validates the per-type sub-form but not the checkout preconditions
// (non-empty cart, selected customer and store), which belong to the caller.
func BuildOrderInput(cart *Session, saleType trade.OrderType, details SaleDetails, storeID, customerID string, now time.Time) (trade.CreateOrderInput, error) {
	if !saleType.IsValid() {
		return trade.CreateOrderInput{}, shared.NewDomainError("INVALID_SALE_TYPE", "Unknown sale type")
	}
	if !details.PaymentMethod.IsValid() {
		return trade.CreateOrderInput{}, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	items := make([]trade.OrderItem, 0, cart.Len())
	for _, item := range cart.Items() {
		price, _ := item.UnitPrice.Float64()
		items = append(items, trade.OrderItem{
			StoreProductID: item.StoreProductID,
			Quantity:       item.Quantity,
			Price:          price,
		})
	}

	total := SaleTotal(cart, saleType, details)
	totalAmount, _ := total.Float64()

	input := trade.CreateOrderInput{
		TotalAmount:   totalAmount,
		Type:          saleType,
		Notes:         details.Notes,
		PaymentMethod: details.PaymentMethod.String(),
		PaymentDate:   now.Format(time.RFC3339),
		TotalReceived: totalAmount,
		StoreID:       storeID,
		CustomerID:    customerID,
		Items:         items,
	}

	switch saleType {
	case trade.OrderTypeQuick:
		// totalReceived already equals the total

	case trade.OrderTypeInstallment:
		if details.Installment == nil {
			return trade.CreateOrderInput{}, shared.NewDomainError("MISSING_INSTALLMENT_INFO", "Installment details are required")
		}
		if err := details.Installment.Check(total); err != nil {
			return trade.CreateOrderInput{}, err
		}
		input.TotalReceived = details.Installment.InitialPayment
		input.InstallmentInfo = &trade.InstallmentInfo{
			NumberOfInstallments: details.Installment.NumberOfInstallments,
			NextPaymentDate:      details.Installment.NextPaymentDate,
		}

	case trade.OrderTypeDelivery:
		if details.Delivery == nil {
			return trade.CreateOrderInput{}, shared.NewDomainError("MISSING_DELIVERY_INFO", "Delivery details are required")
		}
		if err := details.Delivery.Check(); err != nil {
			return trade.CreateOrderInput{}, err
		}
		input.DeliveryInfo = &trade.DeliveryInfo{
			Address: details.Delivery.Address,
			Cost:    details.Delivery.Cost,
			Notes:   details.Delivery.Notes,
		}
	}

	return input, nil
}
