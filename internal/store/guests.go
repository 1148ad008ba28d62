package store

import (
	"context"
	"fmt"
)

// GuestParams carries the writable guest fields for create and update.
// Empty optional strings are stored as NULL.
type GuestParams struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	Group               string
	MealPreference      string
	DietaryRestrictions string
	PlusOne             bool
	PlusOneName         string
	TableID             *int64
	Notes               string
	EventIDs            []int64
}

const guestColumns = `g.id, g.first_name, g.last_name, g.email, g.phone,
	g."group", g.meal_preference, g.dietary_restrictions, g.plus_one,
	g.plus_one_name, g.table_id, g.notes, t.name AS table_name`

// ListGuests returns all guests with their seating table name, ordered
// by last then first name.
func (s *Store) ListGuests(ctx context.Context) ([]Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests g
		LEFT JOIN tables t ON t.id = g.table_id
		ORDER BY g.last_name NULLS LAST, g.first_name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	guests := []Guest{}
	for rows.Next() {
		var g Guest
		if err := rows.Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone,
			&g.Group, &g.MealPreference, &g.DietaryRestrictions, &g.PlusOne,
			&g.PlusOneName, &g.TableID, &g.Notes, &g.TableName); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

// ListGuestEvents returns every guest/event attendance link with the
// event name attached, for building per-guest RSVP views client side.
func (s *Store) ListGuestEvents(ctx context.Context) ([]GuestEvent, error) {
	query := `
		SELECT ge.id, ge.guest_id, ge.event_id, ge.rsvp_status, ge.meal_choice, e.name
		FROM guest_events ge
		JOIN wedding_events e ON e.id = ge.event_id
		ORDER BY ge.guest_id, e."order"`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list guest events: %w", err)
	}
	defer rows.Close()

	links := []GuestEvent{}
	for rows.Next() {
		var ge GuestEvent
		if err := rows.Scan(&ge.ID, &ge.GuestID, &ge.EventID, &ge.RSVPStatus,
			&ge.MealChoice, &ge.EventName); err != nil {
			return nil, fmt.Errorf("scan guest event: %w", err)
		}
		links = append(links, ge)
	}
	return links, rows.Err()
}

// GetGuest returns a single guest by ID.
func (s *Store) GetGuest(ctx context.Context, id int64) (Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests g
		LEFT JOIN tables t ON t.id = g.table_id
		WHERE g.id = $1`

	var g Guest
	err := s.pool.QueryRow(ctx, query, id).Scan(&g.ID, &g.FirstName, &g.LastName,
		&g.Email, &g.Phone, &g.Group, &g.MealPreference, &g.DietaryRestrictions,
		&g.PlusOne, &g.PlusOneName, &g.TableID, &g.Notes, &g.TableName)
	if err != nil {
		return Guest{}, fmt.Errorf("get guest %d: %w", id, err)
	}
	return g, nil
}

// CreateGuest inserts a guest and links them to the given events with a
// pending RSVP. Returns the stored guest.
func (s *Store) CreateGuest(ctx context.Context, p GuestParams) (Guest, error) {
	query := `
		INSERT INTO guests (first_name, last_name, email, phone, "group",
			meal_preference, dietary_restrictions, plus_one, plus_one_name,
			table_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query,
		p.FirstName, nullIfEmpty(p.LastName), nullIfEmpty(p.Email),
		nullIfEmpty(p.Phone), nullIfEmpty(p.Group), nullIfEmpty(p.MealPreference),
		nullIfEmpty(p.DietaryRestrictions), p.PlusOne, nullIfEmpty(p.PlusOneName),
		p.TableID, nullIfEmpty(p.Notes)).Scan(&id)
	if err != nil {
		return Guest{}, fmt.Errorf("create guest: %w", err)
	}

	for _, eventID := range p.EventIDs {
		if err := s.linkGuestEvent(ctx, id, eventID); err != nil {
			return Guest{}, err
		}
	}

	return s.GetGuest(ctx, id)
}

// UpdateGuest updates a guest's fields and replaces their event links
// with the given set. Existing RSVP statuses for kept events are lost;
// re-linking resets them to pending.
func (s *Store) UpdateGuest(ctx context.Context, id int64, p GuestParams) (Guest, error) {
	query := `
		UPDATE guests
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
			"group" = $5, meal_preference = $6, dietary_restrictions = $7,
			plus_one = $8, plus_one_name = $9, table_id = $10, notes = $11
		WHERE id = $12`

	tag, err := s.pool.Exec(ctx, query,
		p.FirstName, nullIfEmpty(p.LastName), nullIfEmpty(p.Email),
		nullIfEmpty(p.Phone), nullIfEmpty(p.Group), nullIfEmpty(p.MealPreference),
		nullIfEmpty(p.DietaryRestrictions), p.PlusOne, nullIfEmpty(p.PlusOneName),
		p.TableID, nullIfEmpty(p.Notes), id)
	if err != nil {
		return Guest{}, fmt.Errorf("update guest %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return Guest{}, ErrNotFound
	}

	if p.EventIDs != nil {
		if _, err := s.pool.Exec(ctx,
			`DELETE FROM guest_events WHERE guest_id = $1`, id); err != nil {
			return Guest{}, fmt.Errorf("clear guest events: %w", err)
		}
		for _, eventID := range p.EventIDs {
			if err := s.linkGuestEvent(ctx, id, eventID); err != nil {
				return Guest{}, err
			}
		}
	}

	return s.GetGuest(ctx, id)
}

// DeleteGuest removes a guest; attendance rows cascade.
func (s *Store) DeleteGuest(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete guest %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRSVP sets the RSVP status and meal choice for one guest/event
// pair, creating the link if it does not exist yet.
func (s *Store) UpdateRSVP(ctx context.Context, guestID, eventID int64, status, mealChoice string) error {
	query := `
		INSERT INTO guest_events (guest_id, event_id, rsvp_status, meal_choice)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guest_id, event_id)
		DO UPDATE SET rsvp_status = EXCLUDED.rsvp_status, meal_choice = EXCLUDED.meal_choice`

	if _, err := s.pool.Exec(ctx, query, guestID, eventID, status, nullIfEmpty(mealChoice)); err != nil {
		return fmt.Errorf("update rsvp: %w", err)
	}
	return nil
}

func (s *Store) linkGuestEvent(ctx context.Context, guestID, eventID int64) error {
	query := `
		INSERT INTO guest_events (guest_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (guest_id, event_id) DO NOTHING`

	if _, err := s.pool.Exec(ctx, query, guestID, eventID); err != nil {
		return fmt.Errorf("link guest %d to event %d: %w", guestID, eventID, err)
	}
	return nil
}
