package store

import (
	"context"
	"fmt"
)

// TableParams carries the writable seating table fields.
type TableParams struct {
	Name      string
	Capacity  int
	PositionX float64
	PositionY float64
}

// ListTables returns all seating tables with a count of assigned guests.
func (s *Store) ListTables(ctx context.Context) ([]SeatingTable, error) {
	query := `
		SELECT t.id, t.name, t.capacity, t.position_x, t.position_y, COUNT(g.id)
		FROM tables t
		LEFT JOIN guests g ON g.table_id = t.id
		GROUP BY t.id
		ORDER BY t.id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	tables := []SeatingTable{}
	for rows.Next() {
		var t SeatingTable
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity, &t.PositionX,
			&t.PositionY, &t.SeatedCount); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// CreateTable inserts a seating table and returns it.
func (s *Store) CreateTable(ctx context.Context, p TableParams) (SeatingTable, error) {
	query := `
		INSERT INTO tables (name, capacity, position_x, position_y)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	if err := s.pool.QueryRow(ctx, query, p.Name, p.Capacity, p.PositionX, p.PositionY).Scan(&id); err != nil {
		return SeatingTable{}, fmt.Errorf("create table: %w", err)
	}
	return SeatingTable{
		ID:        id,
		Name:      p.Name,
		Capacity:  p.Capacity,
		PositionX: p.PositionX,
		PositionY: p.PositionY,
	}, nil
}

// UpdateTable updates a seating table's name, capacity and position.
func (s *Store) UpdateTable(ctx context.Context, id int64, p TableParams) error {
	query := `
		UPDATE tables
		SET name = $1, capacity = $2, position_x = $3, position_y = $4
		WHERE id = $5`

	tag, err := s.pool.Exec(ctx, query, p.Name, p.Capacity, p.PositionX, p.PositionY, id)
	if err != nil {
		return fmt.Errorf("update table %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTable removes a seating table; assigned guests are unseated via
// the FK's SET NULL.
func (s *Store) DeleteTable(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete table %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignGuestToTable seats a guest at a table; a nil tableID unseats
// them.
func (s *Store) AssignGuestToTable(ctx context.Context, guestID int64, tableID *int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE guests SET table_id = $1 WHERE id = $2`, tableID, guestID)
	if err != nil {
		return fmt.Errorf("assign guest %d to table: %w", guestID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
