package event

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/alhambra-events/api/internal/catalog"
	"github.com/alhambra-events/api/internal/enum"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidLocation = errors.New("invalid location_type")
	ErrInvalidSubType  = errors.New("invalid in_house_sub_type")
	ErrNegativeCount   = errors.New("count must be >= 0")
	ErrNegativeBudget  = errors.New("budget must be >= 0")
)

// CateringSelection is the chosen package plus dietary adjustments.
type CateringSelection struct {
	PackageID       string `json:"package_id"`
	SubOptionID     string `json:"sub_option_id,omitempty"`
	VeganCount      int    `json:"vegan_count"`
	GlutenFreeCount int    `json:"gluten_free_count"`
	Allergies       string `json:"allergies"`
}

// SelectedEquipment is one rented line: at most one entry per item id,
// quantity always > 0 after normalization.
type SelectedEquipment struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// HistoryItem is a single append-only audit log entry.
type HistoryItem struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// Record is the central mutable entity: an event being quoted and produced.
// ID is empty until first persisted. Date is a calendar date (YYYY-MM-DD).
type Record struct {
	ID             string              `json:"id"`
	Status         string              `json:"status"`
	Name           string              `json:"name"`
	Date           string              `json:"date"`
	Attendees      int                 `json:"attendees"`
	Budget         decimal.Decimal     `json:"budget"`
	LocationType   string              `json:"location_type,omitempty"`
	InHouseSubType string              `json:"in_house_sub_type,omitempty"`
	Catering       CateringSelection   `json:"catering"`
	SelectedMenu   []string            `json:"selected_menu"`
	Equipment      []SelectedEquipment `json:"equipment"`
	History        []HistoryItem       `json:"history"`
}

// Validate checks field-level invariants before a record is priced or stored.
func (r *Record) Validate() error {
	if r.Name == "" {
		return ErrNameRequired
	}
	if !enum.IsValidEventStatus(r.Status) {
		return ErrInvalidStatus
	}
	if r.LocationType != "" && !enum.IsValidLocationType(r.LocationType) {
		return ErrInvalidLocation
	}
	if r.InHouseSubType != "" && !enum.IsValidInHouseSubType(r.InHouseSubType) {
		return ErrInvalidSubType
	}
	if r.Attendees < 0 || r.Catering.VeganCount < 0 || r.Catering.GlutenFreeCount < 0 {
		return ErrNegativeCount
	}
	if r.Budget.IsNegative() {
		return ErrNegativeBudget
	}
	return nil
}

// Normalize enforces the derived-field invariants on the equipment list:
// duplicate item ids are merged, zero and negative quantities are dropped,
// and the tableware entry (if present) is rewritten to the attendee count.
// It is run after every mutation to attendees or equipment rather than kept
// in sync reactively, and is idempotent: Normalize(Normalize(r)) == Normalize(r).
func (r *Record) Normalize() {
	if len(r.Equipment) == 0 {
		r.Equipment = nil
		return
	}

	merged := make([]SelectedEquipment, 0, len(r.Equipment))
	index := make(map[string]int, len(r.Equipment))
	for _, e := range r.Equipment {
		if i, ok := index[e.ItemID]; ok {
			merged[i].Quantity += e.Quantity
			continue
		}
		index[e.ItemID] = len(merged)
		merged = append(merged, e)
	}

	if i, ok := index[catalog.TablewareID]; ok {
		merged[i].Quantity = r.Attendees
	}

	kept := merged[:0]
	for _, e := range merged {
		if e.Quantity > 0 {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		r.Equipment = nil
		return
	}
	r.Equipment = kept
}

// SetEquipment sets the quantity for one item, removing the entry when the
// quantity drops to zero, then re-normalizes.
func (r *Record) SetEquipment(itemID string, quantity int) {
	for i, e := range r.Equipment {
		if e.ItemID == itemID {
			if quantity <= 0 {
				r.Equipment = append(r.Equipment[:i], r.Equipment[i+1:]...)
			} else {
				r.Equipment[i].Quantity = quantity
			}
			r.Normalize()
			return
		}
	}
	if quantity > 0 {
		r.Equipment = append(r.Equipment, SelectedEquipment{ItemID: itemID, Quantity: quantity})
	}
	r.Normalize()
}

// HasEquipment reports whether an entry for the given item id exists.
func (r *Record) HasEquipment(itemID string) bool {
	for _, e := range r.Equipment {
		if e.ItemID == itemID {
			return true
		}
	}
	return false
}

// Duplicate returns a new draft copied from r: empty id, cleared date and
// history, status reset to DRAFT, name suffixed so the copy is recognizable.
func (r *Record) Duplicate() *Record {
	dup := *r
	dup.ID = ""
	dup.Name = r.Name + " (copy)"
	dup.Date = ""
	dup.Status = enum.EventStatusDraft
	dup.History = nil
	dup.SelectedMenu = append([]string(nil), r.SelectedMenu...)
	dup.Equipment = append([]SelectedEquipment(nil), r.Equipment...)
	return &dup
}

// AppendHistory appends entries to the audit log. History is append-only;
// existing entries are never rewritten.
func (r *Record) AppendHistory(entries ...HistoryItem) {
	r.History = append(r.History, entries...)
}
