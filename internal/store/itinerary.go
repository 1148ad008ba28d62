package store

import (
	"context"
	"fmt"
)

// ItineraryParams carries the writable run-sheet entry fields.
type ItineraryParams struct {
	EventID  int64
	Time     string
	Title    string
	Location string
	People   string
	Notes    string
	Order    int
}

// ListItinerary returns all run-sheet entries across events, ordered by
// event then position, with event name and date attached.
func (s *Store) ListItinerary(ctx context.Context) ([]ItineraryItem, error) {
	query := `
		SELECT i.id, i.event_id, i.time, i.title, i.location, i.people,
			i.notes, i."order", e.name, e.date
		FROM itinerary_items i
		JOIN wedding_events e ON e.id = i.event_id
		ORDER BY e."order", i."order", i.time`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list itinerary: %w", err)
	}
	defer rows.Close()

	items := []ItineraryItem{}
	for rows.Next() {
		var i ItineraryItem
		if err := rows.Scan(&i.ID, &i.EventID, &i.Time, &i.Title, &i.Location,
			&i.People, &i.Notes, &i.Order, &i.EventName, &i.EventDate); err != nil {
			return nil, fmt.Errorf("scan itinerary item: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// CreateItineraryItem inserts a run-sheet entry and returns it.
func (s *Store) CreateItineraryItem(ctx context.Context, p ItineraryParams) (ItineraryItem, error) {
	query := `
		INSERT INTO itinerary_items (event_id, time, title, location, people, notes, "order")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query, p.EventID, p.Time, p.Title,
		nullIfEmpty(p.Location), nullIfEmpty(p.People), nullIfEmpty(p.Notes),
		p.Order).Scan(&id)
	if err != nil {
		return ItineraryItem{}, fmt.Errorf("create itinerary item: %w", err)
	}
	return ItineraryItem{
		ID:       id,
		EventID:  p.EventID,
		Time:     p.Time,
		Title:    p.Title,
		Location: nullIfEmpty(p.Location),
		People:   nullIfEmpty(p.People),
		Notes:    nullIfEmpty(p.Notes),
		Order:    p.Order,
	}, nil
}

// UpdateItineraryItem updates a run-sheet entry.
func (s *Store) UpdateItineraryItem(ctx context.Context, id int64, p ItineraryParams) error {
	query := `
		UPDATE itinerary_items
		SET event_id = $1, time = $2, title = $3, location = $4, people = $5,
			notes = $6, "order" = $7
		WHERE id = $8`

	tag, err := s.pool.Exec(ctx, query, p.EventID, p.Time, p.Title,
		nullIfEmpty(p.Location), nullIfEmpty(p.People), nullIfEmpty(p.Notes),
		p.Order, id)
	if err != nil {
		return fmt.Errorf("update itinerary item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItineraryItem removes a run-sheet entry.
func (s *Store) DeleteItineraryItem(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM itinerary_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete itinerary item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
