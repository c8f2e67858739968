package shop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-jump/internal/games/jumper"
)

// Outcome classifies a purchase attempt.
type Outcome int

const (
	OutcomePurchased Outcome = iota
	OutcomeSelected
	OutcomeInsufficient
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePurchased:
		return "purchased"
	case OutcomeSelected:
		return "selected"
	case OutcomeInsufficient:
		return "insufficient"
	default:
		return "unknown"
	}
}

// Result describes a purchase attempt.
type Result struct {
	Item      Item
	Outcome   Outcome
	Shortfall int // points missing; only set for OutcomeInsufficient
	Message   string
}

// Notifier receives unlocked items. *jumper.Session implements it.
type Notifier interface {
	AddDecoration(itemID string, glyph rune) (jumper.Sprite, bool)
}

var _ Notifier = (*jumper.Session)(nil)

// Market tracks which catalog items are owned during this process.
type Market struct {
	catalog  *Catalog
	owned    map[string]bool
	selected string
	notifier Notifier
	logger   *log.Logger
}

// NewMarket creates a market with nothing owned. notifier and logger may be nil.
func NewMarket(catalog *Catalog, notifier Notifier, logger *log.Logger) *Market {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Market{
		catalog:  catalog,
		owned:    make(map[string]bool),
		notifier: notifier,
		logger:   logger,
	}
}

// Catalog returns the underlying catalog.
func (m *Market) Catalog() *Catalog {
	return m.catalog
}

// Purchase tries to buy or select an item with the given balance. Owning an
// item only requires balance >= price; nothing is deducted. Owned and newly
// bought items are selected and forwarded to the notifier.
func (m *Market) Purchase(itemID string, balance int) (Result, error) {
	item, err := m.catalog.Lookup(itemID)
	if err != nil {
		return Result{}, err
	}

	var res Result
	switch {
	case m.owned[item.ID]:
		res = Result{Item: item, Outcome: OutcomeSelected, Message: fmt.Sprintf("%s selected!", item.Name)}
	case balance >= item.Price:
		m.owned[item.ID] = true
		res = Result{Item: item, Outcome: OutcomePurchased, Message: fmt.Sprintf("%s purchased!", item.Name)}
	default:
		short := item.Price - balance
		m.logger.Debug("purchase refused", "item", item.ID, "price", item.Price, "balance", balance)
		return Result{
			Item:      item,
			Outcome:   OutcomeInsufficient,
			Shortfall: short,
			Message:   fmt.Sprintf("Not enough points! Need %dP more.", short),
		}, nil
	}

	m.selected = item.ID
	if m.notifier != nil {
		m.notifier.AddDecoration(item.ID, item.Glyph)
	}
	m.logger.Info("market item "+res.Outcome.String(), "item", item.ID, "balance", balance)
	return res, nil
}

// Owned reports whether the item has been bought.
func (m *Market) Owned(itemID string) bool {
	return m.owned[itemID]
}

// OwnedCount returns the number of owned items.
func (m *Market) OwnedCount() int {
	return len(m.owned)
}

// Selected returns the last purchased or selected item id, or "".
func (m *Market) Selected() string {
	return m.selected
}

// Reset forgets all ownership and the selection. Sprites already handed to
// the notifier are not withdrawn.
func (m *Market) Reset() {
	m.owned = make(map[string]bool)
	m.selected = ""
}
