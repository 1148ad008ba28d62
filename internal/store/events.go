package store

import (
	"context"
	"fmt"
)

// EventParams carries the writable wedding event fields.
type EventParams struct {
	Name        string
	Date        string
	StartTime   string
	EndTime     string
	Venue       string
	Description string
	Order       int
}

// ListEvents returns all wedding events with guest counts: total linked
// guests and those with a confirmed RSVP.
func (s *Store) ListEvents(ctx context.Context) ([]WeddingEvent, error) {
	query := `
		SELECT e.id, e.name, e.date, e.start_time, e.end_time, e.venue,
			e.description, e."order",
			COUNT(ge.id),
			COUNT(ge.id) FILTER (WHERE ge.rsvp_status = 'confirmed')
		FROM wedding_events e
		LEFT JOIN guest_events ge ON ge.event_id = e.id
		GROUP BY e.id
		ORDER BY e."order", e.id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []WeddingEvent{}
	for rows.Next() {
		var e WeddingEvent
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.StartTime, &e.EndTime,
			&e.Venue, &e.Description, &e.Order, &e.TotalGuests, &e.ConfirmedGuests); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CreateEvent inserts a wedding event and returns it.
func (s *Store) CreateEvent(ctx context.Context, p EventParams) (WeddingEvent, error) {
	query := `
		INSERT INTO wedding_events (name, date, start_time, end_time, venue, description, "order")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query, p.Name, p.Date, nullIfEmpty(p.StartTime),
		nullIfEmpty(p.EndTime), nullIfEmpty(p.Venue), nullIfEmpty(p.Description),
		p.Order).Scan(&id)
	if err != nil {
		return WeddingEvent{}, fmt.Errorf("create event: %w", err)
	}
	return s.getEvent(ctx, id)
}

// UpdateEvent updates a wedding event and returns it.
func (s *Store) UpdateEvent(ctx context.Context, id int64, p EventParams) (WeddingEvent, error) {
	query := `
		UPDATE wedding_events
		SET name = $1, date = $2, start_time = $3, end_time = $4, venue = $5,
			description = $6, "order" = $7
		WHERE id = $8`

	tag, err := s.pool.Exec(ctx, query, p.Name, p.Date, nullIfEmpty(p.StartTime),
		nullIfEmpty(p.EndTime), nullIfEmpty(p.Venue), nullIfEmpty(p.Description),
		p.Order, id)
	if err != nil {
		return WeddingEvent{}, fmt.Errorf("update event %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return WeddingEvent{}, ErrNotFound
	}
	return s.getEvent(ctx, id)
}

// DeleteEvent removes a wedding event; attendance and itinerary rows
// cascade.
func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM wedding_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) getEvent(ctx context.Context, id int64) (WeddingEvent, error) {
	query := `
		SELECT e.id, e.name, e.date, e.start_time, e.end_time, e.venue,
			e.description, e."order",
			COUNT(ge.id),
			COUNT(ge.id) FILTER (WHERE ge.rsvp_status = 'confirmed')
		FROM wedding_events e
		LEFT JOIN guest_events ge ON ge.event_id = e.id
		WHERE e.id = $1
		GROUP BY e.id`

	var e WeddingEvent
	err := s.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Date,
		&e.StartTime, &e.EndTime, &e.Venue, &e.Description, &e.Order,
		&e.TotalGuests, &e.ConfirmedGuests)
	if err != nil {
		return WeddingEvent{}, fmt.Errorf("get event %d: %w", id, err)
	}
	return e, nil
}
