package store

import (
	"context"
	"fmt"
)

// BudgetCategoryParams carries the writable category fields.
type BudgetCategoryParams struct {
	EventID       *int64
	Name          string
	PlannedAmount float64
	Order         int
}

// BudgetItemParams carries the writable line-item fields.
type BudgetItemParams struct {
	CategoryID int64
	Name       string
	Vendor     string
	Planned    float64
	Actual     float64
	Paid       float64
	DueDate    string
	Notes      string
}

// ListBudgetCategories returns all categories with their item totals
// aggregated.
func (s *Store) ListBudgetCategories(ctx context.Context) ([]BudgetCategory, error) {
	query := `
		SELECT c.id, c.event_id, c.name, c.planned_amount, c."order",
			COALESCE(SUM(i.planned), 0),
			COALESCE(SUM(i.actual), 0),
			COALESCE(SUM(i.paid), 0)
		FROM budget_categories c
		LEFT JOIN budget_items i ON i.category_id = c.id
		GROUP BY c.id
		ORDER BY c."order", c.id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list budget categories: %w", err)
	}
	defer rows.Close()

	categories := []BudgetCategory{}
	for rows.Next() {
		var c BudgetCategory
		if err := rows.Scan(&c.ID, &c.EventID, &c.Name, &c.PlannedAmount, &c.Order,
			&c.TotalPlanned, &c.TotalActual, &c.TotalPaid); err != nil {
			return nil, fmt.Errorf("scan budget category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ListBudgetItems returns all line items, grouped by category order.
func (s *Store) ListBudgetItems(ctx context.Context) ([]BudgetItem, error) {
	query := `
		SELECT id, category_id, name, vendor, planned, actual, paid, due_date, notes
		FROM budget_items
		ORDER BY category_id, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	defer rows.Close()

	items := []BudgetItem{}
	for rows.Next() {
		var i BudgetItem
		if err := rows.Scan(&i.ID, &i.CategoryID, &i.Name, &i.Vendor, &i.Planned,
			&i.Actual, &i.Paid, &i.DueDate, &i.Notes); err != nil {
			return nil, fmt.Errorf("scan budget item: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// CreateBudgetCategory inserts a category and returns it with zeroed
// totals.
func (s *Store) CreateBudgetCategory(ctx context.Context, p BudgetCategoryParams) (BudgetCategory, error) {
	query := `
		INSERT INTO budget_categories (event_id, name, planned_amount, "order")
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	if err := s.pool.QueryRow(ctx, query, p.EventID, p.Name, p.PlannedAmount, p.Order).Scan(&id); err != nil {
		return BudgetCategory{}, fmt.Errorf("create budget category: %w", err)
	}
	return BudgetCategory{
		ID:            id,
		EventID:       p.EventID,
		Name:          p.Name,
		PlannedAmount: p.PlannedAmount,
		Order:         p.Order,
	}, nil
}

// UpdateBudgetCategory updates a category's name and planned amount.
func (s *Store) UpdateBudgetCategory(ctx context.Context, id int64, p BudgetCategoryParams) error {
	query := `
		UPDATE budget_categories
		SET event_id = $1, name = $2, planned_amount = $3, "order" = $4
		WHERE id = $5`

	tag, err := s.pool.Exec(ctx, query, p.EventID, p.Name, p.PlannedAmount, p.Order, id)
	if err != nil {
		return fmt.Errorf("update budget category %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBudgetCategory removes a category; its items cascade.
func (s *Store) DeleteBudgetCategory(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM budget_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget category %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateBudgetItem inserts a line item and returns it.
func (s *Store) CreateBudgetItem(ctx context.Context, p BudgetItemParams) (BudgetItem, error) {
	query := `
		INSERT INTO budget_items (category_id, name, vendor, planned, actual, paid, due_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query, p.CategoryID, p.Name, nullIfEmpty(p.Vendor),
		p.Planned, p.Actual, p.Paid, nullIfEmpty(p.DueDate), nullIfEmpty(p.Notes)).Scan(&id)
	if err != nil {
		return BudgetItem{}, fmt.Errorf("create budget item: %w", err)
	}
	return BudgetItem{
		ID:         id,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Vendor:     nullIfEmpty(p.Vendor),
		Planned:    p.Planned,
		Actual:     p.Actual,
		Paid:       p.Paid,
		DueDate:    nullIfEmpty(p.DueDate),
		Notes:      nullIfEmpty(p.Notes),
	}, nil
}

// UpdateBudgetItem updates a line item.
func (s *Store) UpdateBudgetItem(ctx context.Context, id int64, p BudgetItemParams) error {
	query := `
		UPDATE budget_items
		SET name = $1, vendor = $2, planned = $3, actual = $4, paid = $5,
			due_date = $6, notes = $7
		WHERE id = $8`

	tag, err := s.pool.Exec(ctx, query, p.Name, nullIfEmpty(p.Vendor), p.Planned,
		p.Actual, p.Paid, nullIfEmpty(p.DueDate), nullIfEmpty(p.Notes), id)
	if err != nil {
		return fmt.Errorf("update budget item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBudgetItem removes a line item.
func (s *Store) DeleteBudgetItem(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM budget_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
