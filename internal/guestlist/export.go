package guestlist

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// ExportGuest pairs a persisted guest with its identity so attendance
// rows can be matched back to it.
type ExportGuest struct {
	ID int64
	Guest
}

// exportHeader is the fixed column prefix; rsvp columns follow it.
var exportHeader = []string{
	"first_name", "last_name", "email", "phone",
	"group", "meal_preference", "dietary_restrictions", "notes",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// rsvpColumn derives the export column name for an event display name.
func rsvpColumn(eventName string) string {
	return "rsvp_" + whitespaceRun.ReplaceAllString(strings.ToLower(eventName), "_")
}

// ExportCSV renders the guest list with one rsvp column per event seen
// in the attendance list (first-seen order). Guests sort by (last name,
// first name) in byte order; this only affects display. Re-importing the
// output against the same event set skips every row as a duplicate.
func ExportCSV(guests []ExportGuest, attendance []Attendance) string {
	sorted := make([]ExportGuest, len(guests))
	copy(sorted, guests)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LastName != sorted[j].LastName {
			return sorted[i].LastName < sorted[j].LastName
		}
		return sorted[i].FirstName < sorted[j].FirstName
	})

	var eventNames []string
	seen := make(map[string]bool)
	for _, a := range attendance {
		if !seen[a.EventName] {
			seen[a.EventName] = true
			eventNames = append(eventNames, a.EventName)
		}
	}

	type guestEvent struct {
		guestID int64
		event   string
	}
	statusFor := make(map[guestEvent]string, len(attendance))
	for _, a := range attendance {
		statusFor[guestEvent{a.GuestID, a.EventName}] = a.Status
	}

	header := make([]string, 0, len(exportHeader)+len(eventNames))
	header = append(header, exportHeader...)
	for _, name := range eventNames {
		header = append(header, rsvpColumn(name))
	}

	lines := make([]string, 0, len(sorted)+1)
	lines = append(lines, strings.Join(header, ","))

	for _, g := range sorted {
		fields := []string{
			escapeField(g.FirstName),
			escapeField(g.LastName),
			escapeField(g.Email),
			escapeField(g.Phone),
			escapeField(g.Group),
			escapeField(g.MealPreference),
			escapeField(g.DietaryRestrictions),
			escapeField(g.Notes),
		}
		for _, name := range eventNames {
			fields = append(fields, escapeField(statusFor[guestEvent{g.ID, name}]))
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

// ExportFilename returns the suggested attachment name for an export.
func ExportFilename(now time.Time) string {
	return "wedding-guests-" + now.UTC().Format("2006-01-02") + ".csv"
}
