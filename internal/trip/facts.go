// Package trip implements the trip-fact extraction pipeline: a topic filter
// deciding whether free text is about electric vehicles, and a heuristic
// extractor that pulls structured trip facts out of chat messages.
package trip

import (
	"fmt"
	"sort"
	"strings"
)

// Field names a single extractable trip fact.
type Field string

// The five trip-fact fields.
const (
	FieldModel       Field = "model"
	FieldCharge      Field = "charge"
	FieldStart       Field = "start"
	FieldDestination Field = "destination"
	FieldRoute       Field = "route"
)

// fieldOrder fixes the rendering order of fact dumps.
var fieldOrder = []Field{FieldModel, FieldCharge, FieldStart, FieldDestination, FieldRoute}

// Facts is the accumulated trip knowledge for one user. Each field, once
// set, is never overwritten for the life of the conversation: first mention
// wins. The charge field holds the decimal value as text.
type Facts map[Field]string

// NewFacts returns an empty fact set.
func NewFacts() Facts {
	return make(Facts)
}

// Has reports whether the field has been extracted already.
func (f Facts) Has(field Field) bool {
	_, ok := f[field]
	return ok
}

// Clone returns an independent copy of the fact set.
func (f Facts) Clone() Facts {
	cp := make(Facts, len(f))
	for k, v := range f {
		cp[k] = v
	}
	return cp
}

// Render formats the facts as "field: value" lines in a fixed order,
// suitable for appending to a model prompt. Returns "" when empty.
func (f Facts) Render() string {
	if len(f) == 0 {
		return ""
	}

	var b strings.Builder
	for _, field := range fieldOrder {
		if v, ok := f[field]; ok {
			fmt.Fprintf(&b, "%s: %s\n", field, v)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Fields returns the set field names, sorted. Intended for logging.
func (f Facts) Fields() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}
