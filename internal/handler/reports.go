package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alhambra-events/api/internal/pricing"
)

// ReportsHandler serves the profitability dashboard data.
type ReportsHandler struct {
	store  EventStore
	engine *pricing.Engine
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(store EventStore, engine *pricing.Engine) *ReportsHandler {
	return &ReportsHandler{store: store, engine: engine}
}

// RegisterRoutes registers report endpoints on the given Chi router.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profitability", h.Profitability)
}

type profitabilityRow struct {
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
	Revenue   string `json:"revenue"`
	COGS      string `json:"cogs"`
	Profit    string `json:"profit"`
}

type profitabilitySummary struct {
	Revenue       string `json:"revenue"`
	COGS          string `json:"cogs"`
	Profit        string `json:"profit"`
	MarginPercent string `json:"margin_percent"`
}

// Profitability returns per-event revenue, estimated COGS and profit for the
// whole event book, plus the aggregate margin.
func (h *ReportsHandler) Profitability(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		log.Printf("ERROR: list events for report: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	rows, summary := h.engine.Summarize(events)

	respRows := make([]profitabilityRow, len(rows))
	for i, row := range rows {
		respRows[i] = profitabilityRow{
			EventID:   row.EventID,
			EventName: row.EventName,
			Revenue:   row.Revenue.StringFixed(2),
			COGS:      row.COGS.StringFixed(2),
			Profit:    row.Profit.StringFixed(2),
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": respRows,
		"summary": profitabilitySummary{
			Revenue:       summary.Revenue.StringFixed(2),
			COGS:          summary.COGS.StringFixed(2),
			Profit:        summary.Profit.StringFixed(2),
			MarginPercent: summary.MarginPercent.StringFixed(1),
		},
	})
}
