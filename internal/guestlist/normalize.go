package guestlist

import (
	"regexp"
	"strings"
)

var separatorRun = regexp.MustCompile(`[\s_-]+`)

// columnSynonyms maps human-entered header variants (after NormalizeKey)
// to canonical field keys. Extending the import vocabulary only touches
// this table, never the orchestration logic.
var columnSynonyms = map[string]string{
	"firstname": "first_name",
	"first":     "first_name",
	"fname":     "first_name",

	"lastname": "last_name",
	"last":     "last_name",
	"lname":    "last_name",
	"surname":  "last_name",

	"email_address": "email",
	"emailaddress":  "email",

	"phone_number": "phone",
	"phonenumber":  "phone",
	"mobile":       "phone",
	"cell":         "phone",
	"telephone":    "phone",

	"category":    "group",
	"guest_group": "group",

	"meal":            "meal_preference",
	"meal_pref":       "meal_preference",
	"food":            "meal_preference",
	"food_preference": "meal_preference",

	"dietary":      "dietary_restrictions",
	"diet":         "dietary_restrictions",
	"allergies":    "dietary_restrictions",
	"restrictions": "dietary_restrictions",

	"note":     "notes",
	"comment":  "notes",
	"comments": "notes",
}

// NormalizeKey lower-cases, trims and collapses runs of whitespace,
// underscores and hyphens into a single underscore. The same rule
// normalizes both header cells and event display names so that an
// event column like "Sangeet Night" matches the event "sangeet-night".
func NormalizeKey(s string) string {
	return separatorRun.ReplaceAllString(strings.TrimSpace(strings.ToLower(s)), "_")
}

// NormalizeColumn maps a raw header string to its canonical field key.
// Unrecognized headers pass through NormalizeKey unchanged; that is how
// event-name columns survive into the row map.
func NormalizeColumn(col string) string {
	normalized := NormalizeKey(col)
	if canonical, ok := columnSynonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

// IsTruthy reports whether a free-text cell marks attendance. Only the
// literal markers below count; anything else, including empty, is false.
func IsTruthy(value string) bool {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "yes", "true", "1", "y", "x":
		return true
	}
	return false
}
