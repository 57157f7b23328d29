package partner

// Customer is a store customer
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Country   string `json:"country,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Enabled   bool   `json:"enabled"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateCustomerInput is the payload for creating a customer
type CreateCustomerInput struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Country   string `json:"country,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	Gender    string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

// CustomerQuery holds the listing parameters of the customer endpoint
type CustomerQuery struct {
	Limit  int
	Offset int
	Order  string
	Attr   string
	Value  string
}
