package trade

// OrderStatus represents the status of an order as reported by the backend.
// The backend is the authority over status; the client only proposes changes.
type OrderStatus string

const (
	OrderStatusPendiente  OrderStatus = "pendiente"
	OrderStatusEnProceso  OrderStatus = "en-proceso"
	OrderStatusEnCamino   OrderStatus = "en-camino"
	OrderStatusCompletado OrderStatus = "completado"
	OrderStatusCancelado  OrderStatus = "cancelado"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPendiente, OrderStatusEnProceso, OrderStatusEnCamino, OrderStatusCompletado, OrderStatusCancelado:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Title returns the display title for the status column
func (s OrderStatus) Title() string {
	switch s {
	case OrderStatusPendiente:
		return "Pendiente"
	case OrderStatusEnProceso:
		return "En Proceso"
	case OrderStatusEnCamino:
		return "En Camino"
	case OrderStatusCompletado:
		return "Completado"
	case OrderStatusCancelado:
		return "Cancelado"
	}
	return string(s)
}

// AllStatuses returns the five statuses in board column order
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPendiente,
		OrderStatusEnProceso,
		OrderStatusEnCamino,
		OrderStatusCompletado,
		OrderStatusCancelado,
	}
}

// OrderType selects the shape of an order: a quick over-the-counter sale, a
// sale paid in installments, or a sale delivered to an address.
type OrderType string

const (
	OrderTypeQuick       OrderType = "quick"
	OrderTypeInstallment OrderType = "installment"
	OrderTypeDelivery    OrderType = "delivery"
)

// IsValid checks if the type is a valid OrderType
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeQuick, OrderTypeInstallment, OrderTypeDelivery:
		return true
	}
	return false
}

// String returns the string representation of OrderType
func (t OrderType) String() string {
	return string(t)
}

// DeliveryInfo holds the extra fields of a delivery order
type DeliveryInfo struct {
	Address string  `json:"address"`
	Cost    float64 `json:"cost"`
	Notes   string  `json:"notes,omitempty"`
}

// InstallmentInfo holds the extra fields of an installment order
type InstallmentInfo struct {
	NumberOfInstallments int    `json:"numberOfInstallments"`
	NextPaymentDate      string `json:"nextPaymentDate"`
}

// OrderItem is a line item in an order creation payload
type OrderItem struct {
	StoreProductID string  `json:"storeProductId"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
}

// CreateOrderInput is the payload for creating an order. DeliveryInfo and
// InstallmentInfo are set only for the matching order type.
type CreateOrderInput struct {
	TotalAmount     float64          `json:"totalAmount"`
	Status          OrderStatus      `json:"status,omitempty"`
	Type            OrderType        `json:"type,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	PaymentMethod   string           `json:"paymentMethod"`
	PaymentDate     string           `json:"paymentDate"`
	TotalReceived   float64          `json:"totalReceived"`
	DeliveryInfo    *DeliveryInfo    `json:"deliveryInfo,omitempty"`
	InstallmentInfo *InstallmentInfo `json:"installmentInfo,omitempty"`
	StoreID         string           `json:"storeId"`
	CustomerID      string           `json:"customerId"`
	Items           []OrderItem      `json:"items"`
}

// OrderStoreRef is the store summary embedded in an order
type OrderStoreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderCustomerRef is the customer summary embedded in an order
type OrderCustomerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// OrderLineProduct is the product summary nested in an order line
type OrderLineProduct struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SKU       string   `json:"sku,omitempty"`
	ImageURLs []string `json:"imageUrls,omitempty"`
}

// OrderLineStoreProduct links an order line back to the store product
type OrderLineStoreProduct struct {
	ID      string            `json:"id"`
	Product *OrderLineProduct `json:"product,omitempty"`
}

// OrderLine is a line item of an existing order
type OrderLine struct {
	ID           string                 `json:"id"`
	Quantity     int                    `json:"quantity"`
	Price        float64                `json:"price"`
	StoreProduct *OrderLineStoreProduct `json:"storeProduct,omitempty"`
}

// Installment is a scheduled payment of an installment order
type Installment struct {
	ID                string  `json:"id"`
	InstallmentNumber int     `json:"installmentNumber"`
	Amount            float64 `json:"amount"`
	DueDate           string  `json:"dueDate"`
	PaidDate          string  `json:"paidDate,omitempty"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes,omitempty"`
}

// Order is an order as returned by the backend. The client holds a cached
// shadow copy of it for optimistic rendering only.
type Order struct {
	ID              string            `json:"id"`
	TotalAmount     float64           `json:"totalAmount"`
	Status          OrderStatus       `json:"status"`
	Type            OrderType         `json:"type"`
	Notes           string            `json:"notes,omitempty"`
	PaymentMethod   string            `json:"paymentMethod"`
	PaymentDate     string            `json:"paymentDate"`
	TotalReceived   float64           `json:"totalReceived"`
	DeliveryInfo    *DeliveryInfo     `json:"deliveryInfo,omitempty"`
	InstallmentInfo *InstallmentInfo  `json:"installmentInfo,omitempty"`
	Store           *OrderStoreRef    `json:"store,omitempty"`
	Customer        *OrderCustomerRef `json:"customer,omitempty"`
	Items           []OrderLine       `json:"items,omitempty"`
	Installments    []Installment     `json:"installments,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// SortDirection is the ordering applied to order listings
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Toggle flips the sort direction
func (d SortDirection) Toggle() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// DateFilter restricts an order listing to a date window
type DateFilter string

const (
	DateFilterDay   DateFilter = "day"
	DateFilterWeek  DateFilter = "week"
	DateFilterMonth DateFilter = "month"
	DateFilterYear  DateFilter = "year"
)

// IsValid checks if the filter is a valid DateFilter
func (f DateFilter) IsValid() bool {
	switch f {
	case DateFilterDay, DateFilterWeek, DateFilterMonth, DateFilterYear:
		return true
	}
	return false
}

// OrderQuery holds the listing parameters accepted by the order endpoint
type OrderQuery struct {
	Limit      int
	Offset     int
	Order      SortDirection
	Attr       string
	Value      string
	StoreID    string
	DateFilter DateFilter
}

// GroupByStatus partitions a flat order list into the five status buckets in a
// single pass, preserving the input ordering inside each bucket. Orders with
// an unknown status are dropped.
func GroupByStatus(orders []Order) map[OrderStatus][]Order {
	grouped := make(map[OrderStatus][]Order, 5)
	for _, status := range AllStatuses() {
		grouped[status] = []Order{}
	}
	for _, order := range orders {
		if _, ok := grouped[order.Status]; ok {
			grouped[order.Status] = append(grouped[order.Status], order)
		}
	}
	return grouped
}
