package guestlist

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestExportCSVHeader(t *testing.T) {
	csv := ExportCSV(nil, []Attendance{
		{GuestID: 1, EventName: "Mehendi", Status: "pending"},
		{GuestID: 1, EventName: "Wedding Day", Status: "confirmed"},
	})

	lines := strings.Split(csv, "\n")
	want := "first_name,last_name,email,phone,group,meal_preference,dietary_restrictions,notes,rsvp_mehendi,rsvp_wedding_day"
	if lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
}

func TestExportCSVRows(t *testing.T) {
	guests := []ExportGuest{
		{ID: 1, Guest: Guest{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"}},
		{ID: 2, Guest: Guest{FirstName: "Adam", LastName: "Baker"}},
	}
	attendance := []Attendance{
		{GuestID: 1, EventName: "Reception", Status: "confirmed"},
		{GuestID: 2, EventName: "Reception", Status: "declined"},
		{GuestID: 1, EventName: "Ceremony", Status: "pending"},
	}

	lines := strings.Split(ExportCSV(guests, attendance), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	// Sorted by (last, first): Baker before Doe. Event columns keep
	// first-seen order: Reception, then Ceremony.
	if lines[1] != "Adam,Baker,,,,,,,declined," {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Jane,Doe,jane@x.com,,,,,,confirmed,pending" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestExportCSVSortOrder(t *testing.T) {
	guests := []ExportGuest{
		{ID: 1, Guest: Guest{FirstName: "Zoe", LastName: "Doe"}},
		{ID: 2, Guest: Guest{FirstName: "Amy", LastName: "Doe"}},
		{ID: 3, Guest: Guest{FirstName: "Bob", LastName: "Adams"}},
	}

	lines := strings.Split(ExportCSV(guests, nil), "\n")
	order := []string{"Bob,Adams", "Amy,Doe", "Zoe,Doe"}
	for i, prefix := range order {
		if !strings.HasPrefix(lines[i+1], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i+1, lines[i+1], prefix)
		}
	}
}

// A notes field holding a comma and an embedded quote must survive an
// export/parse cycle byte-exact.
func TestExportQuotedFieldRoundTrip(t *testing.T) {
	notes := `bring the "good" cake, no candles`
	guests := []ExportGuest{
		{ID: 1, Guest: Guest{FirstName: "Jane", LastName: "Doe", Notes: notes}},
	}

	rows := ParseCSV(ExportCSV(guests, nil))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if got := rows[0]["notes"]; got != notes {
		t.Errorf("notes = %q, want %q", got, notes)
	}
}

// Re-importing an export against the same guest set must skip every row.
func TestExportImportRoundTrip(t *testing.T) {
	guests := []ExportGuest{
		{ID: 1, Guest: Guest{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"}},
		{ID: 2, Guest: Guest{FirstName: "John", LastName: "Smith"}},
	}
	events := []Event{{ID: 1, Name: "Ceremony"}, {ID: 2, Name: "Reception"}}
	attendance := []Attendance{
		{GuestID: 1, EventName: "Ceremony", Status: "confirmed"},
		{GuestID: 2, EventName: "Reception", Status: "pending"},
	}

	var existing []DedupKey
	for _, g := range guests {
		existing = append(existing, DedupKey{
			FirstName: g.FirstName, LastName: g.LastName, Email: g.Email,
		})
	}
	store := newFakeStore(events, existing)

	result, err := NewImporter(store).Import(context.Background(), ExportCSV(guests, attendance))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if result.Imported != 0 || result.Skipped != len(guests) {
		t.Errorf("imported=%d skipped=%d, want 0/%d", result.Imported, result.Skipped, len(guests))
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	if got := ExportFilename(now); got != "wedding-guests-2026-08-28.csv" {
		t.Errorf("ExportFilename() = %q", got)
	}
}
