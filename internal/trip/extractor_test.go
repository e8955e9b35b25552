package trip_test

import (
	"maps"
	"strings"
	"testing"

	"github.com/flemzord/wattsup/internal/trip"
)

func TestExtract_FullTripMessage(t *testing.T) {
	t.Parallel()

	facts := trip.Extract("Tesla Model 3, едем из Минска в Москву, 80%", trip.NewFacts())

	if got := facts[trip.FieldModel]; got != "Tesla Model 3" {
		t.Errorf("model = %q, want %q", got, "Tesla Model 3")
	}
	if got := facts[trip.FieldCharge]; got != "80" {
		t.Errorf("charge = %q, want %q", got, "80")
	}
	if got := facts[trip.FieldStart]; !strings.Contains(got, "Минска") {
		t.Errorf("start = %q, want substring %q", got, "Минска")
	}
	if got := facts[trip.FieldDestination]; !strings.Contains(got, "Москву") {
		t.Errorf("destination = %q, want substring %q", got, "Москву")
	}
	if facts.Has(trip.FieldRoute) {
		t.Errorf("route = %q, want unset", facts[trip.FieldRoute])
	}
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()

	text := "Nissan Leaf, старт Минск, заряд 55%"
	once := trip.Extract(text, trip.NewFacts())
	twice := trip.Extract(text, once)

	if !maps.Equal(once, twice) {
		t.Errorf("second extraction changed facts: %v → %v", once, twice)
	}
}

func TestExtract_FirstMentionWins(t *testing.T) {
	t.Parallel()

	first := trip.Extract("заряд 80%", trip.NewFacts())
	second := trip.Extract("теперь уже 30%", first)

	if got := second[trip.FieldCharge]; got != "80" {
		t.Errorf("charge = %q, want %q (first mention wins)", got, "80")
	}
}

func TestExtract_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	existing := trip.NewFacts()
	_ = trip.Extract("tesla, 50%", existing)

	if len(existing) != 0 {
		t.Errorf("input facts mutated: %v", existing)
	}
}

func TestExtract_StartDestinationOverlap(t *testing.T) {
	t.Parallel()

	// The start pattern's capture runs to the end of the clause, so it may
	// cover the span the destination pattern also matches. Both fields must
	// still be populated independently.
	facts := trip.Extract("еду из минска в москву", trip.NewFacts())

	start := facts[trip.FieldStart]
	dest := facts[trip.FieldDestination]
	if !strings.Contains(start, "Минска") {
		t.Errorf("start = %q, want substring %q", start, "Минска")
	}
	if !strings.Contains(dest, "Москву") {
		t.Errorf("destination = %q, want substring %q", dest, "Москву")
	}
}

func TestExtract_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		field trip.Field
		want  string
	}{
		{"brand only", "еду на tesla", trip.FieldModel, "Tesla"},
		{"brand with designator", "xiaomi su7 хорош", trip.FieldModel, "Xiaomi Su7"},
		{"bare model keyword", "model y подойдёт?", trip.FieldModel, "Model Y"},
		{"charge without space", "осталось 45%", trip.FieldCharge, "45"},
		{"charge with space", "осталось 45 %", trip.FieldCharge, "45"},
		{"out of range charge kept", "заряжено на 250%", trip.FieldCharge, "250"},
		{"start via preposition", "выезжаю из бреста", trip.FieldStart, "Бреста"},
		{"start via keyword", "старт гомель", trip.FieldStart, "Гомель"},
		{"route russian", "поедем по трассе", trip.FieldRoute, "по трассе"},
		{"route english", "which route is best", trip.FieldRoute, "по трассе"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			facts := trip.Extract(tt.text, trip.NewFacts())
			if got := facts[tt.field]; got != tt.want {
				t.Errorf("Extract(%q)[%s] = %q, want %q", tt.text, tt.field, got, tt.want)
			}
		})
	}
}

func TestFacts_Render(t *testing.T) {
	t.Parallel()

	facts := trip.Facts{
		trip.FieldCharge: "80",
		trip.FieldModel:  "Tesla Model 3",
		trip.FieldStart:  "Минск",
	}

	want := "model: Tesla Model 3\ncharge: 80\nstart: Минск"
	if got := facts.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestFacts_RenderEmpty(t *testing.T) {
	t.Parallel()

	if got := trip.NewFacts().Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
