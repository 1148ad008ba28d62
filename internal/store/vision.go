package store

import (
	"context"
	"fmt"
)

// VisionItemParams carries the writable vision-board card fields.
type VisionItemParams struct {
	Section  string
	ImageURL string
	Title    string
	Notes    string
	Order    int
}

// ListVisionItems returns all vision-board cards grouped by section.
func (s *Store) ListVisionItems(ctx context.Context) ([]VisionItem, error) {
	query := `
		SELECT id, section, image_url, title, notes, "order"
		FROM vision_items
		ORDER BY section, "order", id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vision items: %w", err)
	}
	defer rows.Close()

	items := []VisionItem{}
	for rows.Next() {
		var v VisionItem
		if err := rows.Scan(&v.ID, &v.Section, &v.ImageURL, &v.Title, &v.Notes, &v.Order); err != nil {
			return nil, fmt.Errorf("scan vision item: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

// CreateVisionItem inserts a vision-board card and returns it.
func (s *Store) CreateVisionItem(ctx context.Context, p VisionItemParams) (VisionItem, error) {
	query := `
		INSERT INTO vision_items (section, image_url, title, notes, "order")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query, p.Section, nullIfEmpty(p.ImageURL),
		nullIfEmpty(p.Title), nullIfEmpty(p.Notes), p.Order).Scan(&id)
	if err != nil {
		return VisionItem{}, fmt.Errorf("create vision item: %w", err)
	}
	return VisionItem{
		ID:       id,
		Section:  p.Section,
		ImageURL: nullIfEmpty(p.ImageURL),
		Title:    nullIfEmpty(p.Title),
		Notes:    nullIfEmpty(p.Notes),
		Order:    p.Order,
	}, nil
}

// UpdateVisionItem updates a vision-board card.
func (s *Store) UpdateVisionItem(ctx context.Context, id int64, p VisionItemParams) error {
	query := `
		UPDATE vision_items
		SET section = $1, image_url = $2, title = $3, notes = $4, "order" = $5
		WHERE id = $6`

	tag, err := s.pool.Exec(ctx, query, p.Section, nullIfEmpty(p.ImageURL),
		nullIfEmpty(p.Title), nullIfEmpty(p.Notes), p.Order, id)
	if err != nil {
		return fmt.Errorf("update vision item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVisionItem removes a vision-board card.
func (s *Store) DeleteVisionItem(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM vision_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vision item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
