package booking

import (
	"testing"
)

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2025-04-15", "2025-04-15T00:00:00"},
		{"day month year", "15/04/2025", "2025-04-15T00:00:00"},
		{"ambiguous parses as day first", "04/05/2025", "2025-05-04T00:00:00"},
		{"unparseable passes through", "not-a-date", "not-a-date"},
		{"empty passes through", "", ""},
		{"whitespace tolerated", " 2025-04-15 ", "2025-04-15T00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceDate(tt.input); got != tt.want {
				t.Errorf("CoerceDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   float64
		want  float64
	}{
		{"plain float", "12.5", 0, 12.5},
		{"integer", "42", 0, 42},
		{"garbage falls back", "abc", 0, 0},
		{"missing falls back", "", 7, 7},
		{"blank falls back", "   ", 7, 7},
		{"thousands separator", "1,250.5", 0, 1250.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceNumeric(tt.input, tt.def); got != tt.want {
				t.Errorf("CoerceNumeric(%q, %v) = %v, want %v", tt.input, tt.def, got, tt.want)
			}
		})
	}
}

func TestCoerceBool(t *testing.T) {
	if !CoerceBool("Yes", false) {
		t.Error("expected Yes to be true")
	}
	if CoerceBool("No", true) {
		t.Error("expected No to be false")
	}
	if !CoerceBool("maybe", true) {
		t.Error("expected unrecognized value to fall back to default")
	}
}
