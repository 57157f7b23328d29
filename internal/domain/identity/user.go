package identity

// User is the authenticated operator of the terminal
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Credentials is the login payload
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the login/register response body
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"User"`
}
