// Package guestlist implements the guest CSV import/export pipeline:
// parsing, header normalization, duplicate detection, attendance
// assignment and CSV serialization. It has no HTTP or SQL dependencies;
// persistence is consumed through the Store port.
package guestlist

import "context"

// Guest carries the importable guest fields. An empty string means the
// field is absent and is stored as NULL.
type Guest struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	Group               string
	MealPreference      string
	DietaryRestrictions string
	Notes               string
}

// Event is one celebration occasion. The importer treats the event list
// as a read-only reference table for matching attendance columns.
type Event struct {
	ID   int64
	Name string
}

// DedupKey is the subset of guest fields used for duplicate detection.
type DedupKey struct {
	FirstName string
	LastName  string
	Email     string
}

// Attendance links a guest to an event with an RSVP status.
type Attendance struct {
	GuestID   int64
	EventName string
	Status    string
}

// Result aggregates the outcome of one import run. Errors holds at most
// the first 10 row errors; TotalErrors is the true count.
type Result struct {
	Success     bool     `json:"success"`
	Imported    int      `json:"imported"`
	Skipped     int      `json:"skipped"`
	Errors      []string `json:"errors"`
	TotalErrors int      `json:"totalErrors"`
}

// Store is the persistence port the importer drives. Implemented by the
// SQL store in production and by an in-memory fake in tests.
type Store interface {
	ListEvents(ctx context.Context) ([]Event, error)
	ListGuestsForDedup(ctx context.Context) ([]DedupKey, error)
	CreateGuest(ctx context.Context, g Guest) (int64, error)
	CreateAttendance(ctx context.Context, guestID, eventID int64) error
}
