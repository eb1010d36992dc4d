package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/alhambra-events/api/internal/checklist"
	"github.com/alhambra-events/api/internal/conflict"
	"github.com/alhambra-events/api/internal/event"
	"github.com/alhambra-events/api/internal/pricing"
)

// QuotesHandler computes live quote previews and serves shared quote pages.
type QuotesHandler struct {
	store      EventStore
	engine     *pricing.Engine
	checklists *checklist.Generator
	conflicts  *conflict.Checker
	links      LinkIssuer
}

// NewQuotesHandler creates a new QuotesHandler.
func NewQuotesHandler(store EventStore, engine *pricing.Engine, checklists *checklist.Generator, conflicts *conflict.Checker, links LinkIssuer) *QuotesHandler {
	return &QuotesHandler{store: store, engine: engine, checklists: checklists, conflicts: conflicts, links: links}
}

// RegisterRoutes registers quote endpoints on the given Chi router.
func (h *QuotesHandler) RegisterRoutes(r chi.Router) {
	r.Post("/preview", h.Preview)
	r.Get("/shared/{token}", h.Shared)
}

type quoteResponse struct {
	CateringBase string `json:"catering_base"`
	MenuAddons   string `json:"menu_addons"`
	Equipment    string `json:"equipment"`
	Total        string `json:"total"`
	OverBudget   bool   `json:"over_budget"`
}

func toQuoteResponse(q pricing.Quote) quoteResponse {
	return quoteResponse{
		CateringBase: q.CateringBase.StringFixed(2),
		MenuAddons:   q.MenuAddons.StringFixed(2),
		Equipment:    q.Equipment.StringFixed(2),
		Total:        q.Total.StringFixed(2),
		OverBudget:   q.OverBudget,
	}
}

type previewResponse struct {
	Quote     quoteResponse    `json:"quote"`
	Checklist []checklist.Item `json:"checklist"`
	Conflict  string           `json:"conflict,omitempty"`
}

func (h *QuotesHandler) preview(rec *event.Record) previewResponse {
	resp := previewResponse{
		Quote:     toQuoteResponse(h.engine.BuildQuote(rec)),
		Checklist: h.checklists.Generate(rec.LocationType, rec.InHouseSubType, rec.Catering.Allergies),
	}
	if resp.Checklist == nil {
		resp.Checklist = []checklist.Item{}
	}
	if msg, found := h.conflicts.Check(rec.Date, rec.Equipment); found {
		resp.Conflict = msg
	}
	return resp
}

// Preview prices an event body without persisting it. The editor calls this
// on every change to refresh the cost breakdown, the task checklist and the
// resource-conflict banner.
func (h *QuotesHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	rec, err := buildRecord(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, h.preview(rec))
}

// Shared resolves a share token and returns the quoted event with its price
// breakdown. No account is required; the token is the authorization.
func (h *QuotesHandler) Shared(w http.ResponseWriter, r *http.Request) {
	eventID, err := h.links.EventID(chi.URLParam(r, "token"))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired link"})
		return
	}

	ev, err := h.store.GetEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
			return
		}
		log.Printf("ERROR: get shared event: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"event": toEventResponse(&ev),
		"quote": toQuoteResponse(h.engine.BuildQuote(&ev)),
	})
}
