package trip_test

import (
	"strings"
	"testing"

	"github.com/flemzord/wattsup/internal/trip"
)

func TestInDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"russian ev term", "сколько стоит электромобиль?", true},
		{"brand uppercase", "TESLA Model 3", true},
		{"charge vocabulary", "где зарядка поблизости", true},
		{"keyword inside unrelated word", "total chaos today", true}, // "cha" substring
		{"greeting only", "привет", false},
		{"empty", "", false},
		{"unrelated", "какая погода сегодня", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := trip.InDomain(tt.text); got != tt.want {
				t.Errorf("InDomain(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestInDomain_CaseInsensitive(t *testing.T) {
	t.Parallel()

	lower := "nissan leaf"
	upper := strings.ToUpper(lower)
	if !trip.InDomain(lower) || !trip.InDomain(upper) {
		t.Errorf("InDomain should accept %q in any case", lower)
	}
}
