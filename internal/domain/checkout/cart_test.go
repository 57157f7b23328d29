package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendapos/terminal/internal/domain/catalog"
)

func entry(id string, price float64, stock int) CatalogEntry {
	return CatalogEntry{
		StoreProductID: id,
		Name:           "Producto " + id,
		UnitPrice:      price,
		Stock:          stock,
	}
}

func TestSessionStartsEmpty(t *testing.T) {
	s := NewSession()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Subtotal().IsZero())
}

func TestAddItem(t *testing.T) {
	t.Run("appends a new line with quantity 1", func(t *testing.T) {
		s := NewSession()
		s.AddItem(entry("p1", 25, 5))

		require.Equal(t, 1, s.Len())
		item := s.Items()[0]
		assert.Equal(t, "p1", item.StoreProductID)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, 5, item.StockCeiling)
	})

	t.Run("bumps quantity instead of duplicating the line", func(t *testing.T) {
		s := NewSession()
		s.AddItem(entry("p1", 25, 5))
		s.AddItem(entry("p1", 25, 5))
		s.AddItem(entry("p1", 25, 5))

		require.Equal(t, 1, s.Len())
		assert.Equal(t, 3, s.Items()[0].Quantity)
	})

	t.Run("clamps at the stock ceiling", func(t *testing.T) {
		s := NewSession()
		for i := 0; i < 10; i++ {
			s.AddItem(entry("p1", 25, 2))
		}

		require.Equal(t, 1, s.Len())
		assert.Equal(t, 2, s.Items()[0].Quantity)
	})

	t.Run("ignores out-of-stock entries", func(t *testing.T) {
		s := NewSession()
		s.AddItem(entry("p1", 25, 0))
		assert.True(t, s.IsEmpty())
	})
}

func TestIncrementQuantity(t *testing.T) {
	s := NewSession()
	s.AddItem(entry("p1", 25, 2))

	s.IncrementQuantity("p1")
	assert.Equal(t, 2, s.Items()[0].Quantity)

	// at the ceiling the bump is a silent no-op
	s.IncrementQuantity("p1")
	assert.Equal(t, 2, s.Items()[0].Quantity)

	// unknown line is a no-op too
	s.IncrementQuantity("missing")
	assert.Equal(t, 1, s.Len())
}

func TestDecrementQuantity(t *testing.T) {
	s := NewSession()
	s.AddItem(entry("p1", 25, 5))
	s.IncrementQuantity("p1")

	s.DecrementQuantity("p1")
	assert.Equal(t, 1, s.Items()[0].Quantity)

	// quantity never drops below 1; removal is explicit
	s.DecrementQuantity("p1")
	assert.Equal(t, 1, s.Items()[0].Quantity)
	assert.Equal(t, 1, s.Len())
}

func TestRemoveItem(t *testing.T) {
	s := NewSession()
	s.AddItem(entry("p1", 25, 5))
	s.AddItem(entry("p2", 10, 3))

	s.RemoveItem("p1")
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "p2", s.Items()[0].StoreProductID)
}

func TestClear(t *testing.T) {
	s := NewSession()
	s.AddItem(entry("p1", 25, 5))
	s.AddItem(entry("p2", 10, 3))

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.True(t, s.Subtotal().IsZero())
}

func TestSubtotal(t *testing.T) {
	s := NewSession()
	s.AddItem(entry("p1", 25, 5))
	s.IncrementQuantity("p1")
	s.AddItem(entry("p2", 10, 3))

	// 25 * 2 + 10 * 1 = 60
	assert.Equal(t, "60.00", s.Subtotal().StringFixed(2))
	assert.Equal(t, 3, s.TotalUnits())
	assert.Equal(t, "60.00", s.SubtotalMoney().StringFixed(2))
}

func TestSubtotalRoundTrip(t *testing.T) {
	t.Run("add then remove restores the prior subtotal", func(t *testing.T) {
		s := NewSession()
		s.AddItem(entry("p1", 25, 5))
		s.IncrementQuantity("p1")
		before := s.Subtotal()

		s.AddItem(entry("p2", 10, 3))
		s.RemoveItem("p2")

		assert.True(t, before.Equal(s.Subtotal()))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("increment then decrement restores the prior subtotal", func(t *testing.T) {
		s := NewSession()
		s.AddItem(entry("p1", 25, 5))
		s.AddItem(entry("p2", 10, 3))
		before := s.Subtotal()

		s.IncrementQuantity("p2")
		s.DecrementQuantity("p2")

		assert.True(t, before.Equal(s.Subtotal()))
	})
}

func TestEntryFromInventory(t *testing.T) {
	inv := catalog.Inventory{
		ID:            "sp-1",
		StockQuantity: 7,
		Product: catalog.InventoryProduct{
			ID:        "prod-1",
			Name:      "Zapatos",
			Price:     120,
			ImageURLs: []string{"https://cdn.example.com/z.jpg"},
		},
	}

	e := EntryFromInventory(inv)
	assert.Equal(t, "sp-1", e.StoreProductID)
	assert.Equal(t, "Zapatos", e.Name)
	assert.Equal(t, 120.0, e.UnitPrice)
	assert.Equal(t, 7, e.Stock)
	assert.Equal(t, "https://cdn.example.com/z.jpg", e.ImageURL)
}
