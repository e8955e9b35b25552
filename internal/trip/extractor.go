package trip

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extraction patterns. They run against the lower-cased message text, each
// field independently. The prepositions are matched as substrings, not
// tokens, so "в" inside another word can still trigger the destination
// pattern — a deliberate looseness. Likewise the
// start and destination patterns may capture overlapping spans of the same
// sentence; first-wins-per-field applies regardless.
var (
	modelPattern  = regexp.MustCompile(`(?:tesla|nissan|leaf|byd|zeekr|xiaomi)(?:\s?model)?(?:\s?[a-z0-9]+)?|model\s?[a-z0-9]+`)
	chargePattern = regexp.MustCompile(`(\d{1,3})\s?%`)
	startPattern  = regexp.MustCompile(`(?:из|старт)\s*([\p{L}\p{N}_\s()-]+)`)
	destPattern   = regexp.MustCompile(`(?:в|до|destination)\s*([\p{L}\p{N}_\s()-]+)`)
)

// routeValue is the fixed value stored when the text mentions a highway.
const routeValue = "по трассе"

// rule binds a fact field to its extraction function. The table is ordered,
// and each rule only fires when the field is still unset: once a value is
// recorded it is immutable for the life of the conversation. That first-wins
// behavior is what makes repeated extraction over the same text idempotent.
type rule struct {
	field   Field
	extract func(lower string) (string, bool)
}

var rules = []rule{
	{FieldModel, extractModel},
	{FieldCharge, extractCharge},
	{FieldStart, extractStart},
	{FieldDestination, extractDestination},
	{FieldRoute, extractRoute},
}

// Extract runs every rule against text and merges newly found fields into a
// copy of existing. Fields already present in existing are never touched.
func Extract(text string, existing Facts) Facts {
	lower := strings.ToLower(text)
	result := existing.Clone()

	for _, r := range rules {
		if result.Has(r.field) {
			continue
		}
		if value, ok := r.extract(lower); ok {
			result[r.field] = value
		}
	}

	return result
}

func extractModel(lower string) (string, bool) {
	m := modelPattern.FindString(lower)
	if m == "" {
		return "", false
	}
	return titleCase(strings.TrimSpace(m)), true
}

func extractCharge(lower string) (string, bool) {
	m := chargePattern.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}
	// Out-of-range values (e.g. 250%) are stored as-is; the model is
	// expected to ask a clarifying question.
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	return strconv.Itoa(n), true
}

func extractStart(lower string) (string, bool) {
	return extractPlace(startPattern, lower)
}

func extractDestination(lower string) (string, bool) {
	return extractPlace(destPattern, lower)
}

func extractPlace(re *regexp.Regexp, lower string) (string, bool) {
	m := re.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}
	place := strings.TrimSpace(m[1])
	if place == "" {
		return "", false
	}
	return titleCase(place), true
}

func extractRoute(lower string) (string, bool) {
	if strings.Contains(lower, "трасс") || strings.Contains(lower, "route") {
		return routeValue, true
	}
	return "", false
}

// titleCase upper-cases the first letter of every word, Unicode-aware.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
