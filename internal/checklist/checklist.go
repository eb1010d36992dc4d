package checklist

import (
	"strings"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/enum"
)

// Item is one operational task derived from the event configuration.
// Items are regenerated from scratch whenever the triggering fields change;
// completion state is not carried across regenerations.
type Item struct {
	ID         string `json:"id"`
	Department string `json:"department"`
	Task       string `json:"task"`
	Completed  bool   `json:"is_completed"`
}

// Generator maps an event's location configuration and dietary notes to the
// set of tasks the departments need to execute.
type Generator struct {
	cat *catalog.Catalog
}

// NewGenerator creates a Generator over the given catalog (the external-event
// rule references the internal kitchen kit contents).
func NewGenerator(cat *catalog.Catalog) *Generator {
	return &Generator{cat: cat}
}

// Generate applies the rule table. Deterministic: the same inputs always
// yield the same tasks in the same order.
func (g *Generator) Generate(locationType, inHouseSubType, allergies string) []Item {
	var tasks []Item

	switch locationType {
	case enum.LocationStanding:
		tasks = append(tasks, Item{
			ID:         "stand-1",
			Department: enum.DepartmentLogistics,
			Task:       "Clear chairs and set up bar tables",
		})

	case enum.LocationInHouse:
		tasks = append(tasks, Item{
			ID:         "in-1",
			Department: enum.DepartmentOps,
			Task:       "Sync the meeting room calendar",
		})
		switch inHouseSubType {
		case enum.InHouseCooking:
			tasks = append(tasks,
				Item{ID: "cook-1", Department: enum.DepartmentLogistics, Task: "Prepare aprons for participants"},
				Item{ID: "cook-2", Department: enum.DepartmentOps, Task: "Verify water and power points are live"},
			)
		case enum.InHouseWine:
			tasks = append(tasks,
				Item{ID: "wine-1", Department: enum.DepartmentLogistics, Task: "Prepare openers, champagne buckets and ice"},
				Item{ID: "wine-2", Department: enum.DepartmentLogistics, Task: "Prepare wine glasses"},
			)
		}

	case enum.LocationExternal:
		tasks = append(tasks, Item{
			ID:         "ext-1",
			Department: enum.DepartmentOps,
			Task:       "Check the weather forecast",
		})
		tasks = append(tasks, Item{
			ID:         "shipka-kitchen",
			Department: enum.DepartmentLogistics,
			Task:       "Load kitchen kit: " + strings.Join(g.cat.InternalKits().Kitchen, ", "),
		})
	}

	if allergies != "" {
		tasks = append(tasks, Item{
			ID:         "cat-1",
			Department: enum.DepartmentOps,
			Task:       "Confirm allergen labeling with the caterer",
		})
	}

	return tasks
}
