package catalog

// Brand is a product brand
type Brand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// Category is a product category
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Enabled      bool   `json:"enabled"`
	Icon         string `json:"icon,omitempty"`
	ProductCount int    `json:"productCount,omitempty"`
}

// ProductMetadata carries optional merchandising attributes
type ProductMetadata struct {
	IsFeatured     bool              `json:"isFeatured,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Product is a catalog product
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	ImageURLs   []string         `json:"imageUrls,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	Metadata    *ProductMetadata `json:"metadata,omitempty"`
	Brand       *Brand           `json:"brand,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	Enabled     bool             `json:"enabled"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// ProductQuery holds the listing parameters of the product endpoint
type ProductQuery struct {
	Limit      int
	Offset     int
	Order      string
	Attr       string
	Value      string
	CategoryID string
	BrandID    string
}

// CreateCategoryInput is the payload for creating a category
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// CreateBrandInput is the payload for creating a brand
type CreateBrandInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}
