package conflict_test

import (
	"strings"
	"testing"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/conflict"
	"github.com/alhambra-events/api/internal/event"
)

func TestCheck_TabunOnBusyDate(t *testing.T) {
	c := conflict.DefaultChecker(catalog.MustDefault())
	equipment := []event.SelectedEquipment{{ItemID: catalog.TabunID, Quantity: 1}}

	msg, found := c.Check("2023-11-15", equipment)
	if !found {
		t.Fatal("expected a conflict")
	}
	if !strings.Contains(msg, "Mobile tabun oven") || !strings.Contains(msg, "2023-11-15") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestCheck_ClearsWhenResourceRemoved(t *testing.T) {
	c := conflict.DefaultChecker(catalog.MustDefault())
	equipment := []event.SelectedEquipment{{ItemID: "beer_tap", Quantity: 1}}

	if msg, found := c.Check("2023-11-15", equipment); found {
		t.Fatalf("conflict without the tracked resource: %q", msg)
	}
}

func TestCheck_FreeDate(t *testing.T) {
	c := conflict.DefaultChecker(catalog.MustDefault())
	equipment := []event.SelectedEquipment{{ItemID: catalog.TabunID, Quantity: 1}}

	if msg, found := c.Check("2023-11-16", equipment); found {
		t.Fatalf("conflict on a free date: %q", msg)
	}
}

func TestCheck_EmptyDateNeverConflicts(t *testing.T) {
	c := conflict.DefaultChecker(catalog.MustDefault())
	equipment := []event.SelectedEquipment{{ItemID: catalog.TabunID, Quantity: 1}}

	if _, found := c.Check("", equipment); found {
		t.Fatal("empty date must not conflict")
	}
}

func TestCheck_ExternalReservationSource(t *testing.T) {
	cat := catalog.MustDefault()
	c := conflict.NewChecker(cat, map[string][]string{
		"cooling_unit": {"2024-01-01"},
	})

	msg, found := c.Check("2024-01-01", []event.SelectedEquipment{{ItemID: "cooling_unit", Quantity: 2}})
	if !found {
		t.Fatal("expected a conflict")
	}
	if !strings.Contains(msg, "Cooling unit") {
		t.Fatalf("display name not resolved: %q", msg)
	}

	// Unknown resource ids fall back to the raw id in the message
	c = conflict.NewChecker(cat, map[string][]string{"mystery": {"2024-01-01"}})
	msg, found = c.Check("2024-01-01", []event.SelectedEquipment{{ItemID: "mystery", Quantity: 1}})
	if !found || !strings.Contains(msg, "mystery") {
		t.Fatalf("got %q, found=%v", msg, found)
	}
}
