package guestlist

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Mehendi", "mehendi"},
		{"trim", "  Reception  ", "reception"},
		{"spaces collapse", "Sangeet  Night", "sangeet_night"},
		{"hyphens collapse", "sangeet-night", "sangeet_night"},
		{"mixed separators", "Sangeet -_ Night", "sangeet_night"},
		{"already canonical", "first_name", "first_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.input); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"First Name", "first_name"},
		{"firstname", "first_name"},
		{"fname", "first_name"},
		{"Surname", "last_name"},
		{"LAST", "last_name"},
		{"Email Address", "email"},
		{"emailaddress", "email"},
		{"Phone Number", "phone"},
		{"Mobile", "phone"},
		{"cell", "phone"},
		{"Telephone", "phone"},
		{"Category", "group"},
		{"guest group", "group"},
		{"Meal", "meal_preference"},
		{"food preference", "meal_preference"},
		{"Dietary", "dietary_restrictions"},
		{"Allergies", "dietary_restrictions"},
		{"Comments", "notes"},
		{"note", "notes"},
		// Unrecognized headers pass through normalized.
		{"Mehendi", "mehendi"},
		{"Wedding Day", "wedding_day"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeColumn(tt.input); got != tt.want {
				t.Errorf("NormalizeColumn(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsTruthy(t *testing.T) {
	truthy := []string{"yes", "YES", "Yes", "true", "TRUE", "1", "y", "Y", "x", "X", "  yes  "}
	falsy := []string{"", "no", "NO", "false", "0", "2", "maybe", "attending", " "}

	for _, v := range truthy {
		if !IsTruthy(v) {
			t.Errorf("IsTruthy(%q) = false, want true", v)
		}
	}
	for _, v := range falsy {
		if IsTruthy(v) {
			t.Errorf("IsTruthy(%q) = true, want false", v)
		}
	}
}
