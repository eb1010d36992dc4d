package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/enum"
	"github.com/alhambra-events/api/internal/event"
	"github.com/alhambra-events/api/internal/handler"
	"github.com/alhambra-events/api/internal/procure"
)

func newKitchenRouter(store handler.EventStore) http.Handler {
	cat := catalog.MustDefault()
	h := handler.NewKitchenHandler(store, cat, procure.NewAggregator(cat))
	r := chi.NewRouter()
	r.Route("/kitchen", h.RegisterRoutes)
	return r
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestKitchenTickets(t *testing.T) {
	store := newMockStore()
	store.add(event.Record{
		ID: "ev-1", Name: "Approved dinner", Status: enum.EventStatusApproved,
		Date: "2023-11-18", Attendees: 15,
		Catering:     event.CateringSelection{PackageID: "prod_3", VeganCount: 2, Allergies: "peanuts"},
		SelectedMenu: []string{"tartare_winter", "no_such_dish"},
	})
	store.add(event.Record{
		ID: "ev-2", Name: "Still a draft", Status: enum.EventStatusDraft,
		Attendees: 30, SelectedMenu: []string{"sashimi_sea"},
	})
	router := newKitchenRouter(store)

	rr := doRequest(t, router, "GET", "/kitchen/tickets", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body)
	}
	tickets := decodeList(t, rr)
	if len(tickets) != 1 {
		t.Fatalf("got %d tickets, want 1", len(tickets))
	}

	ticket := tickets[0]
	if ticket["event_id"] != "ev-1" || ticket["vegan_count"] != float64(2) || ticket["allergies"] != "peanuts" {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
	menu := ticket["menu"].([]interface{})
	if len(menu) != 1 {
		t.Fatalf("got %d dishes, want 1 (unknown ids skipped)", len(menu))
	}
	dish := menu[0].(map[string]interface{})
	if dish["id"] != "tartare_winter" || dish["portions"] != float64(15) {
		t.Fatalf("unexpected dish: %+v", dish)
	}
}

func TestShoppingList(t *testing.T) {
	store := newMockStore()
	store.add(event.Record{
		ID: "ev-1", Name: "First", Status: enum.EventStatusApproved,
		Attendees: 10, SelectedMenu: []string{"tartare_winter"},
	})
	store.add(event.Record{
		ID: "ev-2", Name: "Second", Status: enum.EventStatusQuoteSent,
		Attendees: 20, SelectedMenu: []string{"tartare_winter"},
	})
	router := newKitchenRouter(store)

	rr := doRequest(t, router, "GET", "/kitchen/shopping-list", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body)
	}
	lines := decodeList(t, rr)

	var oil map[string]interface{}
	for _, line := range lines {
		if line["ingredient"] == "olive oil" {
			oil = line
		}
	}
	if oil == nil {
		t.Fatalf("olive oil missing: %+v", lines)
	}
	if oil["quantity"] != "450" || oil["unit"] != "ml" {
		t.Fatalf("unexpected line: %+v", oil)
	}
	events := oil["events"].([]interface{})
	if len(events) != 2 {
		t.Fatalf("got %d source events, want 2", len(events))
	}
}

func TestShoppingList_Empty(t *testing.T) {
	router := newKitchenRouter(newMockStore())
	rr := doRequest(t, router, "GET", "/kitchen/shopping-list", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d", rr.Code)
	}
	if lines := decodeList(t, rr); len(lines) != 0 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}
