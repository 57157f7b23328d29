package store

// Coordinates is a geographic point
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Branding holds the visual identity of a store
type Branding struct {
	LogoURL    string `json:"logoUrl,omitempty"`
	BannerURL  string `json:"bannerUrl,omitempty"`
	FaviconURL string `json:"faviconUrl,omitempty"`
	ColorTheme string `json:"colorTheme,omitempty"`
	HeroTitle  string `json:"heroTitle,omitempty"`
}

// Contact holds the contact details of a store
type Contact struct {
	Phone          string       `json:"phone,omitempty"`
	CurrentCountry string       `json:"currentCountry,omitempty"`
	Email          string       `json:"email,omitempty"`
	Address        string       `json:"address,omitempty"`
	City           string       `json:"city,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
}

// DeliveryPolicy describes how a store charges deliveries
type DeliveryPolicy struct {
	Type  string  `json:"type"` // pending, free, fixed, calculated
	Value float64 `json:"value"`
}

// Config is the per-store configuration blob
type Config struct {
	Branding    *Branding       `json:"branding,omitempty"`
	Contact     *Contact        `json:"contact,omitempty"`
	Delivery    *DeliveryPolicy `json:"delivery,omitempty"`
	AboutUs     string          `json:"aboutUs,omitempty"`
	Category    string          `json:"category,omitempty"`
	ThemeID     string          `json:"themeId,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	FacebookURL string          `json:"facebookUrl,omitempty"`
}

// Store is a physical or virtual store
type Store struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description,omitempty"`
	Config      *Config `json:"config,omitempty"`
	Enabled     bool    `json:"enabled"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
