package checklist_test

import (
	"strings"
	"testing"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/checklist"
	"github.com/alhambra-events/api/internal/enum"
)

func ids(items []checklist.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func assertIDs(t *testing.T, items []checklist.Item, want ...string) {
	t.Helper()
	got := ids(items)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestGenerate_Standing(t *testing.T) {
	g := checklist.NewGenerator(catalog.MustDefault())
	items := g.Generate(enum.LocationStanding, "", "")
	assertIDs(t, items, "stand-1")
	if items[0].Department != enum.DepartmentLogistics {
		t.Fatalf("got department %s", items[0].Department)
	}
}

func TestGenerate_InHouseCooking(t *testing.T) {
	g := checklist.NewGenerator(catalog.MustDefault())
	assertIDs(t, g.Generate(enum.LocationInHouse, enum.InHouseCooking, ""), "in-1", "cook-1", "cook-2")
}

func TestGenerate_InHouseWine(t *testing.T) {
	g := checklist.NewGenerator(catalog.MustDefault())
	assertIDs(t, g.Generate(enum.LocationInHouse, enum.InHouseWine, ""), "in-1", "wine-1", "wine-2")
}

func TestGenerate_InHouseLectureHasNoExtras(t *testing.T) {
	g := checklist.NewGenerator(catalog.MustDefault())
	assertIDs(t, g.Generate(enum.LocationInHouse, enum.InHouseLecture, ""), "in-1")
}

func TestGenerate_ExternalIncludesKitchenKit(t *testing.T) {
	g := checklist.NewGenerator(catalog.MustDefault())
	items := g.Generate(enum.LocationExternal, "", "")
	assertIDs(t, items, "ext-1", "shipka-kitchen")

	kit := items[1]
	if kit.Department != enum.DepartmentLogistics {
		t.Fatalf("got department %s", kit.Department)
	}
	if !strings.Contains(kit.Task, "large pasta pot") {
		t.Fatalf("kit contents missing from task: %q", kit.Task)
	}
}

func TestGenerate_AllergiesAppendEverywhere(t *testing.T) {
	g := checklist.NewGenerator(catalog.MustDefault())

	assertIDs(t, g.Generate(enum.LocationStanding, "", "peanuts"), "stand-1", "cat-1")
	// Fires even without a location
	assertIDs(t, g.Generate("", "", "shellfish"), "cat-1")
}

func TestGenerate_Deterministic(t *testing.T) {
	g := checklist.NewGenerator(catalog.MustDefault())
	a := g.Generate(enum.LocationInHouse, enum.InHouseWine, "nuts")
	b := g.Generate(enum.LocationInHouse, enum.InHouseWine, "nuts")
	if len(a) != len(b) {
		t.Fatal("non-deterministic length")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("item %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_EmptyConfiguration(t *testing.T) {
	g := checklist.NewGenerator(catalog.MustDefault())
	if items := g.Generate("", "", ""); len(items) != 0 {
		t.Fatalf("expected no items, got %v", ids(items))
	}
}
