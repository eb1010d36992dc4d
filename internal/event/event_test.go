package event_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/enum"
	"github.com/alhambra-events/api/internal/event"
)

func TestValidate(t *testing.T) {
	valid := event.Record{
		Status:       enum.EventStatusDraft,
		Name:         "Company evening",
		Attendees:    10,
		LocationType: enum.LocationStanding,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*event.Record)
		want   error
	}{
		{"empty name", func(r *event.Record) { r.Name = "" }, event.ErrNameRequired},
		{"bad status", func(r *event.Record) { r.Status = "PENDING" }, event.ErrInvalidStatus},
		{"bad location", func(r *event.Record) { r.LocationType = "orbit" }, event.ErrInvalidLocation},
		{"bad sub type", func(r *event.Record) { r.InHouseSubType = "karaoke" }, event.ErrInvalidSubType},
		{"negative attendees", func(r *event.Record) { r.Attendees = -1 }, event.ErrNegativeCount},
		{"negative vegan count", func(r *event.Record) { r.Catering.VeganCount = -2 }, event.ErrNegativeCount},
		{"negative budget", func(r *event.Record) { r.Budget = decimal.NewFromInt(-5) }, event.ErrNegativeBudget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			if err := r.Validate(); err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNormalize_MergesAndSyncsTableware(t *testing.T) {
	r := event.Record{
		Attendees: 30,
		Equipment: []event.SelectedEquipment{
			{ItemID: "beer_tap", Quantity: 1},
			{ItemID: catalog.TablewareID, Quantity: 7},
			{ItemID: "beer_tap", Quantity: 1},
			{ItemID: "chair_wood", Quantity: 0},
		},
	}
	r.Normalize()

	want := []event.SelectedEquipment{
		{ItemID: "beer_tap", Quantity: 2},
		{ItemID: catalog.TablewareID, Quantity: 30},
	}
	if !reflect.DeepEqual(r.Equipment, want) {
		t.Fatalf("got %+v, want %+v", r.Equipment, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	r := event.Record{
		Attendees: 12,
		Equipment: []event.SelectedEquipment{
			{ItemID: catalog.TablewareID, Quantity: 1},
			{ItemID: "tabun", Quantity: 1},
		},
	}
	r.Normalize()
	first := append([]event.SelectedEquipment(nil), r.Equipment...)

	r.Normalize()
	if !reflect.DeepEqual(r.Equipment, first) {
		t.Fatalf("second pass changed the list: %+v vs %+v", r.Equipment, first)
	}
}

func TestNormalize_TablewareDroppedAtZeroAttendees(t *testing.T) {
	r := event.Record{
		Attendees: 0,
		Equipment: []event.SelectedEquipment{{ItemID: catalog.TablewareID, Quantity: 15}},
	}
	r.Normalize()
	if r.Equipment != nil {
		t.Fatalf("expected empty equipment, got %+v", r.Equipment)
	}
}

func TestSetEquipment(t *testing.T) {
	r := event.Record{Attendees: 10}

	r.SetEquipment("tabun", 1)
	if !r.HasEquipment("tabun") {
		t.Fatal("tabun not added")
	}

	r.SetEquipment("tabun", 2)
	if r.Equipment[0].Quantity != 2 {
		t.Fatalf("got quantity %d, want 2", r.Equipment[0].Quantity)
	}

	r.SetEquipment("tabun", 0)
	if r.HasEquipment("tabun") {
		t.Fatal("tabun not removed at zero quantity")
	}
}

func TestDuplicate(t *testing.T) {
	src := event.Record{
		ID:           "orig-id",
		Status:       enum.EventStatusApproved,
		Name:         "Spring banquet",
		Date:         "2023-11-18",
		Attendees:    20,
		SelectedMenu: []string{"sashimi_sea"},
		Equipment:    []event.SelectedEquipment{{ItemID: "tabun", Quantity: 1}},
		History:      []event.HistoryItem{{Action: "Headcount changed"}},
	}

	dup := src.Duplicate()

	if dup.ID != "" {
		t.Fatalf("copy kept id %q", dup.ID)
	}
	if dup.Name != "Spring banquet (copy)" {
		t.Fatalf("got name %q", dup.Name)
	}
	if dup.Date != "" || dup.Status != enum.EventStatusDraft || dup.History != nil {
		t.Fatalf("copy not reset: date=%q status=%q history=%v", dup.Date, dup.Status, dup.History)
	}

	// Slices must be independent of the source
	dup.SelectedMenu[0] = "changed"
	dup.Equipment[0].Quantity = 9
	if src.SelectedMenu[0] != "sashimi_sea" || src.Equipment[0].Quantity != 1 {
		t.Fatal("duplicate shares slices with the source")
	}
}

func TestAppendHistory(t *testing.T) {
	var r event.Record
	r.AppendHistory(event.HistoryItem{Action: "first"})
	r.AppendHistory(event.HistoryItem{Action: "second"}, event.HistoryItem{Action: "third"})
	if len(r.History) != 3 || r.History[0].Action != "first" || r.History[2].Action != "third" {
		t.Fatalf("unexpected history: %+v", r.History)
	}
}
