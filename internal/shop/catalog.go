// Package shop implements the in-memory market where run score unlocks
// decorative sprites. The catalog is immutable; ownership lives in a separate
// set keyed by item id.
package shop

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bubble-jump/internal/config"
)

// ErrUnknownItem is returned for ids missing from the catalog.
var ErrUnknownItem = errors.New("shop: unknown item")

// Item is a purchasable decoration.
type Item struct {
	ID    string
	Name  string
	Price int
	Emoji string
	Glyph rune
}

// Catalog is an ordered, read-only list of items.
type Catalog struct {
	items []Item
	index map[string]int
}

// NewCatalog builds a catalog from configured items, preserving order.
func NewCatalog(items []config.ShopItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := c.index[it.ID]; dup {
			return nil, fmt.Errorf("shop: duplicate item %q", it.ID)
		}
		c.index[it.ID] = len(c.items)
		c.items = append(c.items, Item{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price,
			Emoji: it.Emoji,
			Glyph: it.GlyphRune(),
		})
	}
	return c, nil
}

// Items returns a copy of the catalog in display order.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at position i.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Lookup finds an item by id.
func (c *Catalog) Lookup(id string) (Item, error) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return c.items[i], nil
}
