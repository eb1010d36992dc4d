package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/enum"
	"github.com/alhambra-events/api/internal/procure"
)

// KitchenHandler serves the production views: per-event prep tickets and the
// consolidated shopping list.
type KitchenHandler struct {
	store      EventStore
	cat        *catalog.Catalog
	aggregator *procure.Aggregator
}

// NewKitchenHandler creates a new KitchenHandler.
func NewKitchenHandler(store EventStore, cat *catalog.Catalog, aggregator *procure.Aggregator) *KitchenHandler {
	return &KitchenHandler{store: store, cat: cat, aggregator: aggregator}
}

// RegisterRoutes registers kitchen endpoints on the given Chi router.
func (h *KitchenHandler) RegisterRoutes(r chi.Router) {
	r.Get("/tickets", h.Tickets)
	r.Get("/shopping-list", h.ShoppingList)
}

type ticketDish struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Portions int    `json:"portions"`
}

type kitchenTicket struct {
	EventID         string       `json:"event_id"`
	Name            string       `json:"name"`
	Date            string       `json:"date"`
	Status          string       `json:"status"`
	Attendees       int          `json:"attendees"`
	VeganCount      int          `json:"vegan_count"`
	GlutenFreeCount int          `json:"gluten_free_count"`
	Allergies       string       `json:"allergies"`
	Menu            []ticketDish `json:"menu"`
}

// Tickets returns one prep ticket per production-eligible event: the dishes
// to produce at the event's headcount, plus the dietary adjustments.
func (h *KitchenHandler) Tickets(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		log.Printf("ERROR: list events for tickets: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	tickets := []kitchenTicket{}
	for i := range events {
		ev := &events[i]
		if !enum.IsProductionEligible(ev.Status) {
			continue
		}

		ticket := kitchenTicket{
			EventID:         ev.ID,
			Name:            ev.Name,
			Date:            ev.Date,
			Status:          ev.Status,
			Attendees:       ev.Attendees,
			VeganCount:      ev.Catering.VeganCount,
			GlutenFreeCount: ev.Catering.GlutenFreeCount,
			Allergies:       ev.Catering.Allergies,
			Menu:            []ticketDish{},
		}
		for _, id := range ev.SelectedMenu {
			if item := h.cat.FindMenuItem(id); item != nil {
				ticket.Menu = append(ticket.Menu, ticketDish{ID: item.ID, Name: item.Name, Portions: ev.Attendees})
			}
		}
		tickets = append(tickets, ticket)
	}

	writeJSON(w, http.StatusOK, tickets)
}

type shoppingLine struct {
	Ingredient string   `json:"ingredient"`
	Unit       string   `json:"unit"`
	Quantity   string   `json:"quantity"`
	Events     []string `json:"events"`
}

// ShoppingList returns the consolidated ingredient requirements across all
// production-eligible events, sorted by ingredient name.
func (h *KitchenHandler) ShoppingList(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		log.Printf("ERROR: list events for shopping list: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	lines := procure.SortedLines(h.aggregator.ShoppingList(events))

	resp := make([]shoppingLine, len(lines))
	for i, line := range lines {
		resp[i] = shoppingLine{
			Ingredient: line.Ingredient,
			Unit:       line.Unit,
			Quantity:   line.Quantity.String(),
			Events:     line.Events,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
