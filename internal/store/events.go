package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/alhambra-events/api/internal/event"
)

// EventStore persists event records in Postgres. The table uses flat
// snake_case columns for scalar fields and JSONB documents for the nested
// catering/menu/equipment/history shapes, mapped 1:1 to event.Record.
type EventStore struct {
	pool *pgxpool.Pool
}

// New creates an EventStore over a connection pool.
func New(pool *pgxpool.Pool) *EventStore {
	return &EventStore{pool: pool}
}

const eventColumns = `id, status, name, date, attendees, budget,
	location_type, in_house_sub_type, catering, selected_menu, equipment, history`

// ListEvents returns all events, newest first.
func (s *EventStore) ListEvents(ctx context.Context) ([]event.Record, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var records []event.Record
	for rows.Next() {
		r, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetEvent returns one event by id. Returns pgx.ErrNoRows when absent.
func (s *EventStore) GetEvent(ctx context.Context, id string) (event.Record, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	return scanEvent(row)
}

// CreateEvent inserts a record, assigning a fresh id. The input id is ignored;
// the stored record is returned with its id populated.
func (s *EventStore) CreateEvent(ctx context.Context, r *event.Record) (event.Record, error) {
	stored := *r
	stored.ID = uuid.NewString()

	args, err := encodeEvent(&stored)
	if err != nil {
		return event.Record{}, err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO events (id, status, name, date, attendees, budget,
			location_type, in_house_sub_type, catering, selected_menu, equipment, history,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
	`, args...)
	if err != nil {
		return event.Record{}, fmt.Errorf("insert event: %w", err)
	}
	return stored, nil
}

// UpdateEvent rewrites a record in place, keyed by its id.
// Returns pgx.ErrNoRows when the id does not exist.
func (s *EventStore) UpdateEvent(ctx context.Context, r *event.Record) (event.Record, error) {
	args, err := encodeEvent(r)
	if err != nil {
		return event.Record{}, err
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE events SET status = $2, name = $3, date = $4, attendees = $5, budget = $6,
			location_type = $7, in_house_sub_type = $8, catering = $9,
			selected_menu = $10, equipment = $11, history = $12, updated_at = now()
		WHERE id = $1
	`, args...)
	if err != nil {
		return event.Record{}, fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.Record{}, pgx.ErrNoRows
	}
	return *r, nil
}

// DeleteEvent removes a record. Returns pgx.ErrNoRows when the id is unknown.
func (s *EventStore) DeleteEvent(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// --- Row mapping ---

func encodeEvent(r *event.Record) ([]interface{}, error) {
	catering, err := json.Marshal(r.Catering)
	if err != nil {
		return nil, fmt.Errorf("encode catering: %w", err)
	}
	menu, err := json.Marshal(emptyIfNilStrings(r.SelectedMenu))
	if err != nil {
		return nil, fmt.Errorf("encode selected_menu: %w", err)
	}
	equipment, err := json.Marshal(emptyIfNilEquipment(r.Equipment))
	if err != nil {
		return nil, fmt.Errorf("encode equipment: %w", err)
	}
	hist, err := json.Marshal(emptyIfNilHistory(r.History))
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}

	return []interface{}{
		r.ID,
		r.Status,
		r.Name,
		r.Date,
		r.Attendees,
		decimalToNumeric(r.Budget),
		nullText(r.LocationType),
		nullText(r.InHouseSubType),
		catering,
		menu,
		equipment,
		hist,
	}, nil
}

func scanEvent(row pgx.Row) (event.Record, error) {
	var (
		r              event.Record
		budget         pgtype.Numeric
		locationType   pgtype.Text
		inHouseSubType pgtype.Text
		catering       []byte
		menu           []byte
		equipment      []byte
		hist           []byte
	)

	err := row.Scan(&r.ID, &r.Status, &r.Name, &r.Date, &r.Attendees, &budget,
		&locationType, &inHouseSubType, &catering, &menu, &equipment, &hist)
	if err != nil {
		return event.Record{}, err
	}

	r.Budget = numericToDecimal(budget)
	r.LocationType = locationType.String
	r.InHouseSubType = inHouseSubType.String

	if err := json.Unmarshal(catering, &r.Catering); err != nil {
		return event.Record{}, fmt.Errorf("decode catering: %w", err)
	}
	if err := json.Unmarshal(menu, &r.SelectedMenu); err != nil {
		return event.Record{}, fmt.Errorf("decode selected_menu: %w", err)
	}
	if err := json.Unmarshal(equipment, &r.Equipment); err != nil {
		return event.Record{}, fmt.Errorf("decode equipment: %w", err)
	}
	if err := json.Unmarshal(hist, &r.History); err != nil {
		return event.Record{}, fmt.Errorf("decode history: %w", err)
	}
	return r, nil
}

func nullText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}

func emptyIfNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func emptyIfNilEquipment(v []event.SelectedEquipment) []event.SelectedEquipment {
	if v == nil {
		return []event.SelectedEquipment{}
	}
	return v
}

func emptyIfNilHistory(v []event.HistoryItem) []event.HistoryItem {
	if v == nil {
		return []event.HistoryItem{}
	}
	return v
}

// Schema is the events table DDL, applied by cmd/seed for local setups.
const Schema = `
CREATE TABLE IF NOT EXISTS events (
	id                UUID PRIMARY KEY,
	status            TEXT NOT NULL,
	name              TEXT NOT NULL,
	date              TEXT NOT NULL DEFAULT '',
	attendees         INT NOT NULL DEFAULT 0,
	budget            NUMERIC(12,2) NOT NULL DEFAULT 0,
	location_type     TEXT,
	in_house_sub_type TEXT,
	catering          JSONB NOT NULL DEFAULT '{}',
	selected_menu     JSONB NOT NULL DEFAULT '[]',
	equipment         JSONB NOT NULL DEFAULT '[]',
	history           JSONB NOT NULL DEFAULT '[]',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
