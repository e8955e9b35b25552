package trip

import "strings"

// evKeywords is the fixed in-domain vocabulary: EV brands, models, and
// charging/range terms in Russian and English. Matching is substring based,
// not tokenized, so a keyword inside an unrelated word still counts.
var evKeywords = []string{
	"электро", "электрокар", "электромобиль",
	"заряд", "батар", "квт", "км",
	"tesla", "nissan", "leaf", "model",
	"byd", "zeekr", "xiaomi", "ev",
	"запас хода", "cha", "ccs",
}

// InDomain reports whether the text is about electric vehicles or trips.
// Case-insensitive; true iff at least one keyword is a substring of the
// lower-cased text.
func InDomain(text string) bool {
	text = strings.ToLower(text)
	for _, kw := range evKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
