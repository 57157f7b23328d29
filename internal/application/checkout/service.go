package checkout

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tiendapos/terminal/internal/domain/checkout"
	"github.com/tiendapos/terminal/internal/domain/partner"
	"github.com/tiendapos/terminal/internal/domain/shared"
	"github.com/tiendapos/terminal/internal/domain/trade"
)

// OrderCreator submits finalized sales to the backend
type OrderCreator interface {
	CreateOrder(ctx context.Context, input trade.CreateOrderInput) (*trade.Order, error)
}

// CustomerCreator registers new customers with the backend
type CustomerCreator interface {
	CreateCustomer(ctx context.Context, input partner.CreateCustomerInput) (*partner.Customer, error)
}

// ReceiptPrinter produces the printable ticket for a created order. Printing
// is best-effort: a failure never undoes the sale.
type ReceiptPrinter interface {
	Print(ctx context.Context, order *trade.Order) error
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithReceiptPrinter enables receipt printing after a successful sale
func WithReceiptPrinter(printer ReceiptPrinter) ServiceOption {
	return func(s *Service) {
		s.printer = printer
	}
}

// WithCustomerAPI enables registering new customers mid-checkout
func WithCustomerAPI(customers CustomerCreator) ServiceOption {
	return func(s *Service) {
		s.customers = customers
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// Service drives one checkout at the terminal: a cart being assembled, the
// customer it is for, and the store it sells from. Finalize turns the three
// into an order.
type Service struct {
	orders    OrderCreator
	customers CustomerCreator
	printer   ReceiptPrinter
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time

	cart     *checkout.Session
	customer *partner.Customer
	storeID  string
}

// NewService creates a checkout service with an empty cart
func NewService(orders OrderCreator, opts ...ServiceOption) *Service {
	s := &Service{
		orders:   orders,
		validate: validator.New(),
		logger:   zap.NewNop(),
		now:      time.Now,
		cart:     checkout.NewSession(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cart returns the active cart session
func (s *Service) Cart() *checkout.Session {
	return s.cart
}

// SelectCustomer picks the customer the sale is for
func (s *Service) SelectCustomer(customer partner.Customer) {
	s.customer = &customer
}

// Customer returns the selected customer, or nil
func (s *Service) Customer() *partner.Customer {
	return s.customer
}

// ClearCustomer deselects the customer
func (s *Service) ClearCustomer() {
	s.customer = nil
}

// CreateAndSelectCustomer registers a walk-in customer during checkout and
// selects them for the sale in progress. Validation failures never reach the
// backend; a backend failure leaves any previous selection untouched.
func (s *Service) CreateAndSelectCustomer(ctx context.Context, input partner.CreateCustomerInput) (*partner.Customer, error) {
	if s.customers == nil {
		return nil, shared.NewDomainError("CUSTOMER_API_UNAVAILABLE", "Customer registration is not configured")
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, shared.NewDomainErrorWithCause("INVALID_CUSTOMER", "Invalid customer details", err)
	}

	customer, err := s.customers.CreateCustomer(ctx, input)
	if err != nil {
		s.logger.Warn("customer registration failed",
			zap.String("name", input.Name),
			zap.Error(err))
		return nil, err
	}

	s.customer = customer
	s.logger.Info("customer registered and selected",
		zap.String("customer_id", customer.ID),
		zap.String("name", customer.Name))
	return customer, nil
}

// SelectStore picks the store the sale runs against. An empty ID means no
// concrete store is selected and finalizing is blocked.
func (s *Service) SelectStore(storeID string) {
	s.storeID = storeID
}

// StoreID returns the selected store ID
func (s *Service) StoreID() string {
	return s.storeID
}

// AddItem puts a catalog entry in the cart
func (s *Service) AddItem(entry checkout.CatalogEntry) {
	s.cart.AddItem(entry)
}

// Finalize validates the checkout, submits the order and starts a fresh cart.
// Preconditions are checked before anything leaves the terminal: an empty
// cart, a missing customer or a missing store fail without a network call.
// On a backend failure the cart and customer stay untouched so the operator
// can retry.
func (s *Service) Finalize(ctx context.Context, saleType trade.OrderType, details checkout.SaleDetails) (*trade.Order, error) {
	if s.cart.IsEmpty() {
		return nil, shared.ErrCartEmpty
	}
	if s.customer == nil {
		return nil, shared.ErrNoCustomerSelected
	}
	if s.storeID == "" {
		return nil, shared.ErrNoStoreSelected
	}

	if details.Installment != nil {
		if err := s.validate.Struct(details.Installment); err != nil {
			return nil, shared.NewDomainErrorWithCause("INVALID_INSTALLMENT_INFO", "Invalid installment details", err)
		}
	}
	if details.Delivery != nil {
		if err := s.validate.Struct(details.Delivery); err != nil {
			return nil, shared.NewDomainErrorWithCause("INVALID_DELIVERY_INFO", "Invalid delivery details", err)
		}
	}

	input, err := checkout.BuildOrderInput(s.cart, saleType, details, s.storeID, s.customer.ID, s.now())
	if err != nil {
		return nil, err
	}

	order, err := s.orders.CreateOrder(ctx, input)
	if err != nil {
		s.logger.Warn("order creation failed",
			zap.String("store_id", s.storeID),
			zap.String("customer_id", s.customer.ID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("sale finalized",
		zap.String("order_id", order.ID),
		zap.String("type", saleType.String()),
		zap.Float64("total", order.TotalAmount))

	s.cart = checkout.NewSession()
	s.customer = nil

	if s.printer != nil {
		if err := s.printer.Print(ctx, order); err != nil {
			s.logger.Warn("receipt printing failed",
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}

	return order, nil
}
