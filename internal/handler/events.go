package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/alhambra-events/api/internal/enum"
	"github.com/alhambra-events/api/internal/event"
	"github.com/alhambra-events/api/internal/history"
	"github.com/alhambra-events/api/internal/ws"
)

// EventStore defines the database methods needed by event handlers.
// Satisfied by *store.EventStore; narrow interface for testability.
type EventStore interface {
	ListEvents(ctx context.Context) ([]event.Record, error)
	GetEvent(ctx context.Context, id string) (event.Record, error)
	CreateEvent(ctx context.Context, r *event.Record) (event.Record, error)
	UpdateEvent(ctx context.Context, r *event.Record) (event.Record, error)
	DeleteEvent(ctx context.Context, id string) error
}

// Notifier fans out change briefs to department screens.
// Satisfied by *ws.Hub.
type Notifier interface {
	Notify(department string, n ws.Notification)
}

// LinkIssuer builds shareable quote links.
// Satisfied by *sharelink.Issuer.
type LinkIssuer interface {
	Link(eventID string) (string, error)
	EventID(token string) (string, error)
}

// EventsHandler handles event CRUD and lifecycle endpoints.
type EventsHandler struct {
	store    EventStore
	differ   *history.Differ
	notifier Notifier
	links    LinkIssuer
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(store EventStore, differ *history.Differ, notifier Notifier, links LinkIssuer) *EventsHandler {
	return &EventsHandler{store: store, differ: differ, notifier: notifier, links: links}
}

// RegisterRoutes registers event endpoints on the given Chi router.
func (h *EventsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/duplicate", h.Duplicate)
	r.Post("/{id}/quote", h.SendQuote)
}

// --- Request / Response types ---

type equipmentLineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type cateringRequest struct {
	PackageID       string `json:"package_id"`
	SubOptionID     string `json:"sub_option_id"`
	VeganCount      int    `json:"vegan_count"`
	GlutenFreeCount int    `json:"gluten_free_count"`
	Allergies       string `json:"allergies"`
}

type eventRequest struct {
	Status         string                 `json:"status"`
	Name           string                 `json:"name"`
	Date           string                 `json:"date"`
	Attendees      int                    `json:"attendees"`
	Budget         string                 `json:"budget"`
	LocationType   string                 `json:"location_type"`
	InHouseSubType string                 `json:"in_house_sub_type"`
	Catering       cateringRequest        `json:"catering"`
	SelectedMenu   []string               `json:"selected_menu"`
	Equipment      []equipmentLineRequest `json:"equipment"`

	// Confirmed acknowledges the pending change brief on updates; without it
	// an update that produces history entries is not committed.
	Confirmed bool `json:"confirmed"`
}

type eventResponse struct {
	ID             string                  `json:"id"`
	Status         string                  `json:"status"`
	Name           string                  `json:"name"`
	Date           string                  `json:"date"`
	Attendees      int                     `json:"attendees"`
	Budget         string                  `json:"budget"`
	LocationType   string                  `json:"location_type,omitempty"`
	InHouseSubType string                  `json:"in_house_sub_type,omitempty"`
	Catering       event.CateringSelection `json:"catering"`
	SelectedMenu   []string                `json:"selected_menu"`
	Equipment      []equipmentLineRequest  `json:"equipment"`
	History        []event.HistoryItem     `json:"history"`
}

func toEventResponse(r *event.Record) eventResponse {
	resp := eventResponse{
		ID:             r.ID,
		Status:         r.Status,
		Name:           r.Name,
		Date:           r.Date,
		Attendees:      r.Attendees,
		Budget:         r.Budget.StringFixed(2),
		LocationType:   r.LocationType,
		InHouseSubType: r.InHouseSubType,
		Catering:       r.Catering,
		SelectedMenu:   r.SelectedMenu,
		History:        r.History,
	}
	if resp.SelectedMenu == nil {
		resp.SelectedMenu = []string{}
	}
	if resp.History == nil {
		resp.History = []event.HistoryItem{}
	}
	resp.Equipment = make([]equipmentLineRequest, len(r.Equipment))
	for i, e := range r.Equipment {
		resp.Equipment[i] = equipmentLineRequest{ItemID: e.ItemID, Quantity: e.Quantity}
	}
	return resp
}

// buildRecord turns a request body into a normalized record. Menu ids are
// deduplicated preserving order; the status defaults to DRAFT.
func buildRecord(req *eventRequest) (*event.Record, error) {
	status := req.Status
	if status == "" {
		status = enum.EventStatusDraft
	}

	budget := decimal.Zero
	if req.Budget != "" {
		d, err := decimal.NewFromString(req.Budget)
		if err != nil {
			return nil, errors.New("invalid budget")
		}
		budget = d
	}

	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return nil, errors.New("invalid date, expected YYYY-MM-DD")
		}
	}

	var menu []string
	seen := make(map[string]bool, len(req.SelectedMenu))
	for _, id := range req.SelectedMenu {
		if !seen[id] {
			seen[id] = true
			menu = append(menu, id)
		}
	}

	r := &event.Record{
		Status:         status,
		Name:           req.Name,
		Date:           req.Date,
		Attendees:      req.Attendees,
		Budget:         budget,
		LocationType:   req.LocationType,
		InHouseSubType: req.InHouseSubType,
		Catering: event.CateringSelection{
			PackageID:       req.Catering.PackageID,
			SubOptionID:     req.Catering.SubOptionID,
			VeganCount:      req.Catering.VeganCount,
			GlutenFreeCount: req.Catering.GlutenFreeCount,
			Allergies:       req.Catering.Allergies,
		},
		SelectedMenu: menu,
	}
	for _, e := range req.Equipment {
		r.Equipment = append(r.Equipment, event.SelectedEquipment{ItemID: e.ItemID, Quantity: e.Quantity})
	}

	r.Normalize()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// --- Handlers ---

// List returns all events, newest first.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		log.Printf("ERROR: list events: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]eventResponse, len(events))
	for i := range events {
		resp[i] = toEventResponse(&events[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single event by id.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
			return
		}
		log.Printf("ERROR: get event: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(&ev))
}

// Create persists a new event. The id is assigned here, on first save.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	created, err := h.store.CreateEvent(r.Context(), rec)
	if err != nil {
		log.Printf("ERROR: create event: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(&created))
}

// changeNotification is the brief payload pushed to department rooms.
type changeNotification struct {
	EventID   string              `json:"event_id"`
	EventName string              `json:"event_name"`
	Changes   []event.HistoryItem `json:"changes"`
}

// notifiedDepartments receive a brief whenever a tracked field changes:
// kitchen (headcount/menu), logistics (location/equipment), sales (quote).
var notifiedDepartments = []string{
	enum.DepartmentKitchen,
	enum.DepartmentLogistics,
	enum.DepartmentSales,
}

// Update rewrites an event. Tracked-field changes are diffed against the
// stored snapshot: a non-empty diff requires confirmed=true before the
// update is committed, and on commit the entries are appended to the
// history log and broadcast to the departments. An empty diff commits
// immediately without touching history.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	prev, err := h.store.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
			return
		}
		log.Printf("ERROR: get event for update: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	next, err := buildRecord(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	next.ID = prev.ID
	next.History = prev.History
	if req.Status == "" {
		next.Status = prev.Status
	}

	changes := h.differ.Diff(&prev, next)
	if len(changes) > 0 {
		if !req.Confirmed {
			writeJSON(w, http.StatusConflict, map[string]interface{}{
				"status":  "pending_confirmation",
				"changes": changes,
			})
			return
		}
		next.AppendHistory(changes...)
	}

	updated, err := h.store.UpdateEvent(r.Context(), next)
	if err != nil {
		log.Printf("ERROR: update event: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	if len(changes) > 0 {
		h.broadcastChanges(&updated, changes)
	}
	writeJSON(w, http.StatusOK, toEventResponse(&updated))
}

func (h *EventsHandler) broadcastChanges(ev *event.Record, changes []event.HistoryItem) {
	payload, err := json.Marshal(changeNotification{
		EventID:   ev.ID,
		EventName: ev.Name,
		Changes:   changes,
	})
	if err != nil {
		log.Printf("ERROR: marshal change notification: %v", err)
		return
	}
	for _, dept := range notifiedDepartments {
		h.notifier.Notify(dept, ws.Notification{Type: "event.updated", Payload: payload})
	}
}

// Delete removes an event.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
			return
		}
		log.Printf("ERROR: delete event: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Duplicate returns an unsaved draft copied from an existing event: empty id,
// cleared date and history, DRAFT status. The caller edits and saves it as a
// new event.
func (h *EventsHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	ev, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
			return
		}
		log.Printf("ERROR: get event for duplicate: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(ev.Duplicate()))
}

// SendQuote moves an event to QUOTE_SENT and returns the shareable quote
// link. Re-sending after edits is allowed from any non-terminal status.
func (h *EventsHandler) SendQuote(w http.ResponseWriter, r *http.Request) {
	ev, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "event not found"})
			return
		}
		log.Printf("ERROR: get event for quote: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	if ev.Status == enum.EventStatusCompleted || ev.Status == enum.EventStatusCancelled {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "event is closed"})
		return
	}

	ev.Status = enum.EventStatusQuoteSent
	updated, err := h.store.UpdateEvent(r.Context(), &ev)
	if err != nil {
		log.Printf("ERROR: update event status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	link, err := h.links.Link(updated.ID)
	if err != nil {
		log.Printf("ERROR: issue share link: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"event":      toEventResponse(&updated),
		"share_link": link,
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
