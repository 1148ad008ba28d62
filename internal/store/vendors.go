package store

import (
	"context"
	"fmt"
)

// VendorParams carries the writable vendor fields.
type VendorParams struct {
	Category    string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Website     string
	ContractURL string
	TotalCost   float64
	Paid        float64
	Notes       string
}

// ListVendors returns all vendors grouped by category.
func (s *Store) ListVendors(ctx context.Context) ([]Vendor, error) {
	query := `
		SELECT id, category, name, contact_name, email, phone, website,
			contract_url, total_cost, paid, notes
		FROM vendors
		ORDER BY category, name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	vendors := []Vendor{}
	for rows.Next() {
		var v Vendor
		if err := rows.Scan(&v.ID, &v.Category, &v.Name, &v.ContactName, &v.Email,
			&v.Phone, &v.Website, &v.ContractURL, &v.TotalCost, &v.Paid, &v.Notes); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

// CreateVendor inserts a vendor and returns it.
func (s *Store) CreateVendor(ctx context.Context, p VendorParams) (Vendor, error) {
	query := `
		INSERT INTO vendors (category, name, contact_name, email, phone,
			website, contract_url, total_cost, paid, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query, p.Category, p.Name,
		nullIfEmpty(p.ContactName), nullIfEmpty(p.Email), nullIfEmpty(p.Phone),
		nullIfEmpty(p.Website), nullIfEmpty(p.ContractURL), p.TotalCost, p.Paid,
		nullIfEmpty(p.Notes)).Scan(&id)
	if err != nil {
		return Vendor{}, fmt.Errorf("create vendor: %w", err)
	}
	return Vendor{
		ID:          id,
		Category:    p.Category,
		Name:        p.Name,
		ContactName: nullIfEmpty(p.ContactName),
		Email:       nullIfEmpty(p.Email),
		Phone:       nullIfEmpty(p.Phone),
		Website:     nullIfEmpty(p.Website),
		ContractURL: nullIfEmpty(p.ContractURL),
		TotalCost:   p.TotalCost,
		Paid:        p.Paid,
		Notes:       nullIfEmpty(p.Notes),
	}, nil
}

// UpdateVendor updates a vendor.
func (s *Store) UpdateVendor(ctx context.Context, id int64, p VendorParams) error {
	query := `
		UPDATE vendors
		SET category = $1, name = $2, contact_name = $3, email = $4, phone = $5,
			website = $6, contract_url = $7, total_cost = $8, paid = $9, notes = $10
		WHERE id = $11`

	tag, err := s.pool.Exec(ctx, query, p.Category, p.Name,
		nullIfEmpty(p.ContactName), nullIfEmpty(p.Email), nullIfEmpty(p.Phone),
		nullIfEmpty(p.Website), nullIfEmpty(p.ContractURL), p.TotalCost, p.Paid,
		nullIfEmpty(p.Notes), id)
	if err != nil {
		return fmt.Errorf("update vendor %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVendor removes a vendor.
func (s *Store) DeleteVendor(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
