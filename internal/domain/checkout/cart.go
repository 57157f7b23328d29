package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiendapos/terminal/internal/domain/catalog"
	"github.com/tiendapos/terminal/internal/domain/shared/valueobject"
)

// CatalogEntry is the slice of an inventory row the cart needs to build a
// line item: identity, price and the stock ceiling.
type CatalogEntry struct {
	StoreProductID string
	Name           string
	UnitPrice      float64
	Stock          int
	ImageURL       string
}

// EntryFromInventory builds a CatalogEntry from an inventory row
func EntryFromInventory(inv catalog.Inventory) CatalogEntry {
	entry := CatalogEntry{
		StoreProductID: inv.ID,
		Name:           inv.Product.Name,
		UnitPrice:      inv.Product.Price,
		Stock:          inv.StockQuantity,
	}
	if len(inv.Product.ImageURLs) > 0 {
		entry.ImageURL = inv.Product.ImageURLs[0]
	}
	return entry
}

// CartItem is one line of the in-progress sale.
// Invariant: 0 < Quantity <= StockCeiling.
type CartItem struct {
	ID             string
	StoreProductID string
	Name           string
	UnitPrice      decimal.Decimal
	Quantity       int
	StockCeiling   int
	ImageURL       string
}

// LineTotal returns UnitPrice * Quantity
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Session is the in-memory cart being assembled into one order. It is owned
// by the active checkout and is never persisted: a new session starts empty.
type Session struct {
	id    uuid.UUID
	items []CartItem
}

// NewSession creates an empty cart session
func NewSession() *Session {
	return &Session{
		id:    uuid.New(),
		items: []CartItem{},
	}
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Items returns a copy of the cart lines
func (s *Session) Items() []CartItem {
	out := make([]CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// IsEmpty reports whether the cart has no lines
func (s *Session) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of cart lines
func (s *Session) Len() int {
	return len(s.items)
}

// TotalUnits returns the summed quantity across all lines
func (s *Session) TotalUnits() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// AddItem adds a catalog entry to the cart. Out-of-stock entries are ignored.
// An entry already in the cart gets its quantity bumped, clamped at the stock
// ceiling; otherwise a new line with quantity 1 is appended. A line is never
// duplicated.
func (s *Session) AddItem(entry CatalogEntry) {
	if entry.Stock == 0 {
		return
	}
	for i := range s.items {
		if s.items[i].StoreProductID == entry.StoreProductID {
			if s.items[i].Quantity < s.items[i].StockCeiling {
				s.items[i].Quantity++
			}
			return
		}
	}
	s.items = append(s.items, CartItem{
		ID:             entry.StoreProductID,
		StoreProductID: entry.StoreProductID,
		Name:           entry.Name,
		UnitPrice:      decimal.NewFromFloat(entry.UnitPrice),
		Quantity:       1,
		StockCeiling:   entry.Stock,
		ImageURL:       entry.ImageURL,
	})
}

// IncrementQuantity bumps a line's quantity, a no-op at the stock ceiling
func (s *Session) IncrementQuantity(id string) {
	for i := range s.items {
		if s.items[i].ID == id && s.items[i].Quantity < s.items[i].StockCeiling {
			s.items[i].Quantity++
			return
		}
	}
}

// DecrementQuantity lowers a line's quantity, a no-op at the floor of 1
func (s *Session) DecrementQuantity(id string) {
	for i := range s.items {
		if s.items[i].ID == id && s.items[i].Quantity > 1 {
			s.items[i].Quantity--
			return
		}
	}
}

// RemoveItem removes a line unconditionally
func (s *Session) RemoveItem(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (s *Session) Clear() {
	s.items = s.items[:0]
}

// Subtotal returns the sum of all line totals
func (s *Session) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// SubtotalMoney returns the subtotal as a Money value
func (s *Session) SubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyBOB(s.Subtotal())
}
