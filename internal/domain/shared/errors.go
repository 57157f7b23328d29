package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorWithCause creates a domain error wrapping an underlying error
func NewDomainErrorWithCause(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState       = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrCartEmpty          = NewDomainError("CART_EMPTY", "Cart is empty")
	ErrNoCustomerSelected = NewDomainError("NO_CUSTOMER_SELECTED", "A customer must be selected")
	ErrNoStoreSelected    = NewDomainError("NO_STORE_SELECTED", "A concrete store must be selected")
	ErrOutOfStock         = NewDomainError("OUT_OF_STOCK", "Product is out of stock")
	ErrMoveInFlight       = NewDomainError("MOVE_IN_FLIGHT", "Another status change is still being confirmed")
)
