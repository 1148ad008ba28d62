package store

import (
	"context"
	"fmt"
)

// PartyMemberParams carries the writable wedding-party member fields.
type PartyMemberParams struct {
	Name             string
	Role             string
	Side             string
	Email            string
	Phone            string
	Responsibilities string
	AttireDetails    string
	Notes            string
}

// ListPartyMembers returns the wedding party grouped by side.
func (s *Store) ListPartyMembers(ctx context.Context) ([]PartyMember, error) {
	query := `
		SELECT id, name, role, side, email, phone, responsibilities,
			attire_details, notes
		FROM wedding_party
		ORDER BY side NULLS LAST, role, name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list party members: %w", err)
	}
	defer rows.Close()

	members := []PartyMember{}
	for rows.Next() {
		var m PartyMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Side, &m.Email, &m.Phone,
			&m.Responsibilities, &m.AttireDetails, &m.Notes); err != nil {
			return nil, fmt.Errorf("scan party member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// CreatePartyMember inserts a wedding-party member and returns it.
func (s *Store) CreatePartyMember(ctx context.Context, p PartyMemberParams) (PartyMember, error) {
	query := `
		INSERT INTO wedding_party (name, role, side, email, phone,
			responsibilities, attire_details, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query, p.Name, p.Role, nullIfEmpty(p.Side),
		nullIfEmpty(p.Email), nullIfEmpty(p.Phone), nullIfEmpty(p.Responsibilities),
		nullIfEmpty(p.AttireDetails), nullIfEmpty(p.Notes)).Scan(&id)
	if err != nil {
		return PartyMember{}, fmt.Errorf("create party member: %w", err)
	}
	return PartyMember{
		ID:               id,
		Name:             p.Name,
		Role:             p.Role,
		Side:             nullIfEmpty(p.Side),
		Email:            nullIfEmpty(p.Email),
		Phone:            nullIfEmpty(p.Phone),
		Responsibilities: nullIfEmpty(p.Responsibilities),
		AttireDetails:    nullIfEmpty(p.AttireDetails),
		Notes:            nullIfEmpty(p.Notes),
	}, nil
}

// UpdatePartyMember updates a wedding-party member.
func (s *Store) UpdatePartyMember(ctx context.Context, id int64, p PartyMemberParams) error {
	query := `
		UPDATE wedding_party
		SET name = $1, role = $2, side = $3, email = $4, phone = $5,
			responsibilities = $6, attire_details = $7, notes = $8
		WHERE id = $9`

	tag, err := s.pool.Exec(ctx, query, p.Name, p.Role, nullIfEmpty(p.Side),
		nullIfEmpty(p.Email), nullIfEmpty(p.Phone), nullIfEmpty(p.Responsibilities),
		nullIfEmpty(p.AttireDetails), nullIfEmpty(p.Notes), id)
	if err != nil {
		return fmt.Errorf("update party member %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePartyMember removes a wedding-party member.
func (s *Store) DeletePartyMember(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM wedding_party WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party member %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
