package catalog

// InventoryStatus is the availability of a store product
type InventoryStatus string

const (
	InventoryDisponible InventoryStatus = "disponible"
	InventoryAgotado    InventoryStatus = "agotado"
	InventoryReservado  InventoryStatus = "reservado"
)

// InventoryProduct is the product summary embedded in an inventory row
type InventoryProduct struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SKU       string   `json:"sku"`
	ImageURLs []string `json:"imageUrls,omitempty"`
	Price     float64  `json:"price,omitempty"`
}

// InventoryStore is the store summary embedded in an inventory row
type InventoryStore struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Inventory is one store product with its stock levels. Its ID is the
// store-product ID referenced by order line items.
type Inventory struct {
	ID               string           `json:"id"`
	StockQuantity    int              `json:"stockQuantity"`
	ReservedQuantity int              `json:"reservedQuantity"`
	Status           InventoryStatus  `json:"status"`
	Product          InventoryProduct `json:"product"`
	Store            InventoryStore   `json:"store"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
}

// InStock reports whether any stock is available to sell
func (i Inventory) InStock() bool {
	return i.StockQuantity > 0
}

// InventoryStats is the aggregate block the inventory endpoint may return
type InventoryStats struct {
	UniqueProducts int     `json:"uniqueProducts"`
	TotalUnits     int     `json:"totalUnits"`
	TotalValue     float64 `json:"totalValue"`
	OutOfStock     int     `json:"outOfStock"`
}

// InventoryQuery holds the listing parameters of the inventory endpoint
type InventoryQuery struct {
	Limit      int
	Offset     int
	Order      string
	Attr       string
	Value      string
	StoreID    string
	CategoryID string
}
