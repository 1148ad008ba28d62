package guestlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MaxReportedErrors caps how many row errors travel back to the caller.
// The true total is always reported alongside so large bad files do not
// produce unbounded responses.
const MaxReportedErrors = 10

// ErrNoData signals a structurally empty upload: no lines, or a header
// with no data rows.
var ErrNoData = errors.New("no data found in file")

// Importer drives the import pipeline end to end against a Store.
type Importer struct {
	store Store
}

func NewImporter(store Store) *Importer {
	return &Importer{store: store}
}

// Import processes one uploaded CSV file sequentially, in file order.
// Row-level failures (missing first name, store errors) are recorded and
// skipped; only structural failures return an error. Rows persisted
// before a context cancellation stay persisted.
func (im *Importer) Import(ctx context.Context, csvText string) (*Result, error) {
	rows := ParseCSV(csvText)
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	events, err := im.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	eventIDByKey := make(map[string]int64, len(events))
	for _, ev := range events {
		eventIDByKey[NormalizeKey(ev.Name)] = ev.ID
	}

	// Decided once from the header's keys and applied uniformly to every
	// row. Rows cannot introduce event columns the header lacks.
	hasEventColumns := false
	for key := range rows[0] {
		if _, ok := eventIDByKey[key]; ok {
			hasEventColumns = true
			break
		}
	}

	seed, err := im.store.ListGuestsForDedup(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	known := NewKnownSet(seed)

	result := &Result{Success: true, Errors: []string{}}
	var rowErrors []string

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// The header counts as row 1, so the first data row reports as 2.
		lineNum := i + 2

		if strings.TrimSpace(row["first_name"]) == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: Missing first_name", lineNum))
			continue
		}

		guest := Guest{
			FirstName:           strings.TrimSpace(row["first_name"]),
			LastName:            row["last_name"],
			Email:               row["email"],
			Phone:               row["phone"],
			Group:               row["group"],
			MealPreference:      row["meal_preference"],
			DietaryRestrictions: row["dietary_restrictions"],
			Notes:               row["notes"],
		}

		if known.Contains(guest) {
			result.Skipped++
			continue
		}

		if err := im.importRow(ctx, guest, row, events, hasEventColumns); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %s", lineNum, err.Error()))
			continue
		}

		known.Add(guest)
		result.Imported++
	}

	result.TotalErrors = len(rowErrors)
	if len(rowErrors) > MaxReportedErrors {
		rowErrors = rowErrors[:MaxReportedErrors]
	}
	if rowErrors != nil {
		result.Errors = rowErrors
	}
	return result, nil
}

// importRow persists one guest and its attendance rows. There is no
// transaction: a failure after the guest insert leaves the guest
// persisted and the row reported as an error.
func (im *Importer) importRow(ctx context.Context, guest Guest, row Row, events []Event, hasEventColumns bool) error {
	guestID, err := im.store.CreateGuest(ctx, guest)
	if err != nil {
		return err
	}

	for _, ev := range events {
		if hasEventColumns {
			// Only events whose column holds a truthy marker.
			if !IsTruthy(row[NormalizeKey(ev.Name)]) {
				continue
			}
		}
		// No event columns in the file: invite to every event.
		if err := im.store.CreateAttendance(ctx, guestID, ev.ID); err != nil {
			return err
		}
	}
	return nil
}
