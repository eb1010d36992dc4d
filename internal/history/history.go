package history

import (
	"fmt"
	"time"

	"github.com/alhambra-events/api/internal/event"
)

// timestampLayout is the day-first display format the audit log uses.
const timestampLayout = "02/01/2006, 15:04:05"

// Differ produces audit log entries from two snapshots of the same event.
// Entries carry a fixed actor label; per-user identity is out of scope.
type Differ struct {
	actor string
	now   func() time.Time
}

// NewDiffer creates a Differ attributing changes to the given actor.
func NewDiffer(actor string) *Differ {
	return &Differ{actor: actor, now: time.Now}
}

// NewDifferAt is NewDiffer with an injected clock, for tests.
func NewDifferAt(actor string, now func() time.Time) *Differ {
	return &Differ{actor: actor, now: now}
}

// Diff compares the tracked fields of two snapshots and returns one entry per
// change: attendees, date, location type, and the selected menu. The menu
// comparison is count-only on purpose: swapping one dish for another keeps
// the portion plan intact and is not worth a departments-wide notification,
// so equal-size selections never produce an entry.
func (d *Differ) Diff(prev, next *event.Record) []event.HistoryItem {
	if prev == nil {
		return nil
	}

	stamp := d.now().Format(timestampLayout)
	var changes []event.HistoryItem

	add := func(action, details string) {
		changes = append(changes, event.HistoryItem{
			Timestamp: stamp,
			User:      d.actor,
			Action:    action,
			Details:   details,
		})
	}

	if prev.Attendees != next.Attendees {
		add("Headcount changed", fmt.Sprintf("From %d to %d", prev.Attendees, next.Attendees))
	}
	if prev.Date != next.Date {
		add("Event date changed", fmt.Sprintf("From %s to %s", prev.Date, next.Date))
	}
	if prev.LocationType != next.LocationType {
		add("Location type changed", fmt.Sprintf("From %s to %s", orNone(prev.LocationType), orNone(next.LocationType)))
	}
	if len(prev.SelectedMenu) != len(next.SelectedMenu) {
		add("Menu updated", "The dish selection was changed")
	}

	return changes
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
