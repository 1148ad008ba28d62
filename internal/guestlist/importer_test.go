package guestlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeStore is an in-memory Store for exercising the importer without a
// database.
type fakeStore struct {
	events     []Event
	existing   []DedupKey
	guests     []Guest
	attendance map[int64][]int64 // guest ID -> event IDs
	nextID     int64

	failCreateGuestFor string // first name that makes CreateGuest fail
	failAttendance     bool
}

func newFakeStore(events []Event, existing []DedupKey) *fakeStore {
	return &fakeStore{
		events:     events,
		existing:   existing,
		attendance: make(map[int64][]int64),
	}
}

func (f *fakeStore) ListEvents(ctx context.Context) ([]Event, error) {
	return f.events, nil
}

func (f *fakeStore) ListGuestsForDedup(ctx context.Context) ([]DedupKey, error) {
	return f.existing, nil
}

func (f *fakeStore) CreateGuest(ctx context.Context, g Guest) (int64, error) {
	if f.failCreateGuestFor != "" && g.FirstName == f.failCreateGuestFor {
		return 0, errors.New("constraint violation")
	}
	f.nextID++
	f.guests = append(f.guests, g)
	return f.nextID, nil
}

func (f *fakeStore) CreateAttendance(ctx context.Context, guestID, eventID int64) error {
	if f.failAttendance {
		return errors.New("attendance insert failed")
	}
	f.attendance[guestID] = append(f.attendance[guestID], eventID)
	return nil
}

func TestImportSingleRow(t *testing.T) {
	store := newFakeStore(nil, nil)
	im := NewImporter(store)

	result, err := im.Import(context.Background(), "first_name,last_name\nJane,Doe")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if !result.Success || result.Imported != 1 || result.Skipped != 0 || result.TotalErrors != 0 {
		t.Errorf("result = %+v, want imported=1 skipped=0 errors=0", result)
	}
	if len(store.guests) != 1 || store.guests[0].FirstName != "Jane" {
		t.Errorf("persisted guests = %+v", store.guests)
	}
}

func TestImportNoData(t *testing.T) {
	im := NewImporter(newFakeStore(nil, nil))

	for _, input := range []string{"", "first_name,last_name", "first_name\n\n  \n"} {
		if _, err := im.Import(context.Background(), input); !errors.Is(err, ErrNoData) {
			t.Errorf("Import(%q) error = %v, want ErrNoData", input, err)
		}
	}
}

func TestImportMissingFirstName(t *testing.T) {
	store := newFakeStore(nil, nil)
	im := NewImporter(store)

	result, err := im.Import(context.Background(), "first_name,last_name\n,Doe\nJane,Doe")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.Imported != 1 || result.Skipped != 0 {
		t.Errorf("imported=%d skipped=%d, want 1/0", result.Imported, result.Skipped)
	}
	if result.TotalErrors != 1 || len(result.Errors) != 1 {
		t.Fatalf("errors = %v (total %d), want exactly one", result.Errors, result.TotalErrors)
	}
	if result.Errors[0] != "Row 2: Missing first_name" {
		t.Errorf("error = %q, want %q", result.Errors[0], "Row 2: Missing first_name")
	}
}

func TestImportDeduplication(t *testing.T) {
	tests := []struct {
		name         string
		csv          string
		existing     []DedupKey
		wantImported int
		wantSkipped  int
	}{
		{
			name:         "duplicate name within file case-insensitive",
			csv:          "first_name,last_name\nJane,Doe\nJANE,DOE",
			wantImported: 1,
			wantSkipped:  1,
		},
		{
			name:         "duplicate email with different names",
			csv:          "first_name,last_name,email\nJane,Doe,jane@x.com\nJanet,Dough,JANE@X.COM",
			wantImported: 1,
			wantSkipped:  1,
		},
		{
			name:         "duplicate against persisted guests",
			csv:          "first_name,last_name\nJane,Doe",
			existing:     []DedupKey{{FirstName: "jane", LastName: "doe"}},
			wantImported: 0,
			wantSkipped:  1,
		},
		{
			name:         "three row scenario",
			csv:          "first_name,last_name,email\nJane,Doe,jane@x.com\nJohn,Smith,john@x.com\nJane,Doe,jane@x.com",
			wantImported: 2,
			wantSkipped:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(nil, tt.existing)
			result, err := NewImporter(store).Import(context.Background(), tt.csv)
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}
			if result.Imported != tt.wantImported || result.Skipped != tt.wantSkipped {
				t.Errorf("imported=%d skipped=%d, want %d/%d",
					result.Imported, result.Skipped, tt.wantImported, tt.wantSkipped)
			}
			if result.TotalErrors != 0 {
				t.Errorf("unexpected errors: %v", result.Errors)
			}
		})
	}
}

func TestImportIdempotence(t *testing.T) {
	store := newFakeStore(nil, nil)
	csv := "first_name,last_name\nJane,Doe\nJohn,Smith\nAlice,Wu"

	first, err := NewImporter(store).Import(context.Background(), csv)
	if err != nil {
		t.Fatalf("first Import() error = %v", err)
	}
	if first.Imported != 3 || first.Skipped != 0 {
		t.Fatalf("first run imported=%d skipped=%d, want 3/0", first.Imported, first.Skipped)
	}

	// Second run sees the first run's guests as persisted.
	for _, g := range store.guests {
		store.existing = append(store.existing, DedupKey{
			FirstName: g.FirstName, LastName: g.LastName, Email: g.Email,
		})
	}

	second, err := NewImporter(store).Import(context.Background(), csv)
	if err != nil {
		t.Fatalf("second Import() error = %v", err)
	}
	if second.Imported != 0 || second.Skipped != 3 {
		t.Errorf("second run imported=%d skipped=%d, want 0/3", second.Imported, second.Skipped)
	}
}

func TestImportEventColumns(t *testing.T) {
	events := []Event{{ID: 1, Name: "Mehendi"}, {ID: 2, Name: "Reception"}}

	t.Run("matching columns create attendance only where truthy", func(t *testing.T) {
		store := newFakeStore(events, nil)
		csv := "first_name,mehendi,reception\nJane,yes,\nJohn,,x\nAlice,no,no"

		result, err := NewImporter(store).Import(context.Background(), csv)
		if err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		if result.Imported != 3 {
			t.Fatalf("imported = %d, want 3", result.Imported)
		}

		if got := store.attendance[1]; len(got) != 1 || got[0] != 1 {
			t.Errorf("Jane attendance = %v, want [1]", got)
		}
		if got := store.attendance[2]; len(got) != 1 || got[0] != 2 {
			t.Errorf("John attendance = %v, want [2]", got)
		}
		if got := store.attendance[3]; len(got) != 0 {
			t.Errorf("Alice attendance = %v, want none", got)
		}
	})

	t.Run("no event columns invites everyone to everything", func(t *testing.T) {
		store := newFakeStore(events, nil)
		csv := "first_name,last_name\nJane,Doe"

		if _, err := NewImporter(store).Import(context.Background(), csv); err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		if got := store.attendance[1]; len(got) != 2 {
			t.Errorf("attendance = %v, want both events", got)
		}
	})

	t.Run("event names with spaces match underscored columns", func(t *testing.T) {
		store := newFakeStore([]Event{{ID: 7, Name: "Sangeet Night"}}, nil)
		csv := "first_name,sangeet_night\nJane,1"

		if _, err := NewImporter(store).Import(context.Background(), csv); err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		if got := store.attendance[1]; len(got) != 1 || got[0] != 7 {
			t.Errorf("attendance = %v, want [7]", got)
		}
	})
}

func TestImportStoreErrors(t *testing.T) {
	store := newFakeStore(nil, nil)
	store.failCreateGuestFor = "John"

	csv := "first_name,last_name\nJane,Doe\nJohn,Smith\nAlice,Wu"
	result, err := NewImporter(store).Import(context.Background(), csv)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.Imported != 2 || result.Skipped != 0 {
		t.Errorf("imported=%d skipped=%d, want 2/0", result.Imported, result.Skipped)
	}
	if result.TotalErrors != 1 || !strings.Contains(result.Errors[0], "Row 3") {
		t.Errorf("errors = %v, want one error for row 3", result.Errors)
	}
}

func TestImportErrorCap(t *testing.T) {
	store := newFakeStore(nil, nil)

	var b strings.Builder
	b.WriteString("first_name,last_name\n")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, ",missing%d\n", i)
	}

	result, err := NewImporter(store).Import(context.Background(), b.String())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if result.TotalErrors != 15 {
		t.Errorf("TotalErrors = %d, want 15", result.TotalErrors)
	}
	if len(result.Errors) != MaxReportedErrors {
		t.Errorf("len(Errors) = %d, want %d", len(result.Errors), MaxReportedErrors)
	}
}

func TestImportCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewImporter(newFakeStore(nil, nil)).Import(ctx, "first_name\nJane")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Import() error = %v, want context.Canceled", err)
	}
}
