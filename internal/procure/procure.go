package procure

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/enum"
	"github.com/alhambra-events/api/internal/event"
)

// Requirement is one aggregated shopping-list line for a single ingredient.
type Requirement struct {
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	// Events lists each contributing event name once, in first-seen order,
	// no matter how many of its dishes use the ingredient.
	Events []string `json:"events"`
}

// Aggregator derives the consolidated shopping list from the event book.
type Aggregator struct {
	cat *catalog.Catalog
}

// NewAggregator creates an Aggregator over the given catalog.
func NewAggregator(cat *catalog.Catalog) *Aggregator {
	return &Aggregator{cat: cat}
}

// ShoppingList scans production-eligible events (QUOTE_SENT or APPROVED),
// expands every selected menu item's ingredient spec scaled by the event's
// attendee count, and accumulates quantities by ingredient name. Menu items
// without an ingredient list contribute nothing. The catalog guarantees a
// consistent unit per ingredient name at load time.
//
// Aggregation is stateless and associative: merging the lists of two event
// subsets equals aggregating their union directly.
func (a *Aggregator) ShoppingList(events []event.Record) map[string]*Requirement {
	list := make(map[string]*Requirement)

	for i := range events {
		ev := &events[i]
		if !enum.IsProductionEligible(ev.Status) {
			continue
		}
		heads := decimal.NewFromInt(int64(ev.Attendees))

		for _, menuID := range ev.SelectedMenu {
			item := a.cat.FindMenuItem(menuID)
			if item == nil {
				continue
			}
			for _, ing := range item.Ingredients {
				contribution := ing.QuantityPerPortion.Mul(heads)
				req, ok := list[ing.Name]
				if !ok {
					req = &Requirement{Unit: ing.Unit, Quantity: decimal.Zero}
					list[ing.Name] = req
				}
				req.Quantity = req.Quantity.Add(contribution)
				if !containsString(req.Events, ev.Name) {
					req.Events = append(req.Events, ev.Name)
				}
			}
		}
	}

	return list
}

// Line is a shopping-list entry with its ingredient name, for ordered output.
type Line struct {
	Ingredient string          `json:"ingredient"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"`
	Events     []string        `json:"events"`
}

// SortedLines flattens a shopping list into lines sorted by ingredient name.
func SortedLines(list map[string]*Requirement) []Line {
	lines := make([]Line, 0, len(list))
	for name, req := range list {
		lines = append(lines, Line{
			Ingredient: name,
			Unit:       req.Unit,
			Quantity:   req.Quantity,
			Events:     req.Events,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Ingredient < lines[j].Ingredient })
	return lines
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
