package store

import (
	"context"
	"fmt"

	"wedding-planner/internal/guestlist"
)

// CSVStore adapts Store to the guestlist persistence port and serves
// the export queries. Obtain one with Store.CSV.
type CSVStore struct {
	s *Store
}

// CSV returns the guest CSV import/export adapter.
func (s *Store) CSV() *CSVStore {
	return &CSVStore{s: s}
}

// ListEvents returns all wedding events for attendance-column matching.
func (c *CSVStore) ListEvents(ctx context.Context) ([]guestlist.Event, error) {
	rows, err := c.s.pool.Query(ctx,
		`SELECT id, name FROM wedding_events ORDER BY "order", id`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []guestlist.Event{}
	for rows.Next() {
		var e guestlist.Event
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListGuestsForDedup returns the name and email of every stored guest.
func (c *CSVStore) ListGuestsForDedup(ctx context.Context) ([]guestlist.DedupKey, error) {
	rows, err := c.s.pool.Query(ctx, `
		SELECT first_name, COALESCE(last_name, ''), COALESCE(email, '')
		FROM guests`)
	if err != nil {
		return nil, fmt.Errorf("list guests for dedup: %w", err)
	}
	defer rows.Close()

	keys := []guestlist.DedupKey{}
	for rows.Next() {
		var k guestlist.DedupKey
		if err := rows.Scan(&k.FirstName, &k.LastName, &k.Email); err != nil {
			return nil, fmt.Errorf("scan dedup key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// CreateGuest inserts an imported guest and returns its ID.
func (c *CSVStore) CreateGuest(ctx context.Context, g guestlist.Guest) (int64, error) {
	query := `
		INSERT INTO guests (first_name, last_name, email, phone, "group",
			meal_preference, dietary_restrictions, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := c.s.pool.QueryRow(ctx, query,
		g.FirstName, nullIfEmpty(g.LastName), nullIfEmpty(g.Email),
		nullIfEmpty(g.Phone), nullIfEmpty(g.Group), nullIfEmpty(g.MealPreference),
		nullIfEmpty(g.DietaryRestrictions), nullIfEmpty(g.Notes)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert guest: %w", err)
	}
	return id, nil
}

// CreateAttendance links an imported guest to an event with the default
// pending RSVP.
func (c *CSVStore) CreateAttendance(ctx context.Context, guestID, eventID int64) error {
	query := `
		INSERT INTO guest_events (guest_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (guest_id, event_id) DO NOTHING`

	if _, err := c.s.pool.Exec(ctx, query, guestID, eventID); err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// ListGuestsForExport returns all guests with NULLs flattened to empty
// strings, ready for CSV serialization.
func (c *CSVStore) ListGuestsForExport(ctx context.Context) ([]guestlist.ExportGuest, error) {
	rows, err := c.s.pool.Query(ctx, `
		SELECT id, first_name, COALESCE(last_name, ''), COALESCE(email, ''),
			COALESCE(phone, ''), COALESCE("group", ''),
			COALESCE(meal_preference, ''), COALESCE(dietary_restrictions, ''),
			COALESCE(notes, '')
		FROM guests`)
	if err != nil {
		return nil, fmt.Errorf("list guests for export: %w", err)
	}
	defer rows.Close()

	guests := []guestlist.ExportGuest{}
	for rows.Next() {
		var g guestlist.ExportGuest
		if err := rows.Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone,
			&g.Group, &g.MealPreference, &g.DietaryRestrictions, &g.Notes); err != nil {
			return nil, fmt.Errorf("scan export guest: %w", err)
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

// ListAttendanceForExport returns every attendance link joined with its
// event name.
func (c *CSVStore) ListAttendanceForExport(ctx context.Context) ([]guestlist.Attendance, error) {
	rows, err := c.s.pool.Query(ctx, `
		SELECT ge.guest_id, e.name, ge.rsvp_status
		FROM guest_events ge
		JOIN wedding_events e ON e.id = ge.event_id
		ORDER BY e."order", e.id`)
	if err != nil {
		return nil, fmt.Errorf("list attendance for export: %w", err)
	}
	defer rows.Close()

	attendance := []guestlist.Attendance{}
	for rows.Next() {
		var a guestlist.Attendance
		if err := rows.Scan(&a.GuestID, &a.EventName, &a.Status); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		attendance = append(attendance, a)
	}
	return attendance, rows.Err()
}
