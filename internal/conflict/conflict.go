package conflict

import (
	"fmt"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/event"
)

// Checker validates scarce-resource availability for an event date.
// Busy dates are keyed by equipment id so the set can be supplied from an
// external reservation source instead of the built-in defaults.
type Checker struct {
	busy  map[string]map[string]bool
	names map[string]string
}

// NewChecker creates a Checker from a resource id -> reserved dates map.
// Dates use the same YYYY-MM-DD form as event dates. Display names for
// conflict messages are looked up from the catalog.
func NewChecker(cat *catalog.Catalog, busy map[string][]string) *Checker {
	c := &Checker{
		busy:  make(map[string]map[string]bool, len(busy)),
		names: make(map[string]string, len(busy)),
	}
	for id, dates := range busy {
		set := make(map[string]bool, len(dates))
		for _, d := range dates {
			set[d] = true
		}
		c.busy[id] = set
		if item := cat.FindEquipment(id); item != nil {
			c.names[id] = item.Name
		} else {
			c.names[id] = id
		}
	}
	return c
}

// DefaultChecker returns a Checker seeded with the mobile tabun's standing
// reservations.
func DefaultChecker(cat *catalog.Catalog) *Checker {
	return NewChecker(cat, map[string][]string{
		catalog.TabunID: {"2023-11-15", "2023-11-20"},
	})
}

// Check returns an advisory conflict message when the event's date falls on
// a reserved date for a resource the event actually selected, and ok=false
// otherwise. An empty date never conflicts.
func (c *Checker) Check(date string, equipment []event.SelectedEquipment) (string, bool) {
	if date == "" {
		return "", false
	}
	for _, line := range equipment {
		if dates, tracked := c.busy[line.ItemID]; tracked && dates[date] {
			msg := fmt.Sprintf("Resource conflict: %s is already reserved for another event on %s.", c.names[line.ItemID], date)
			return msg, true
		}
	}
	return "", false
}
