package profile

import (
	_ "embed"
	"strings"
	"unicode/utf8"
)

// MinSuggestQuery is the shortest query that produces suggestions.
const MinSuggestQuery = 3

var (
	//go:embed catalog/conditions.txt
	conditionsFile string

	//go:embed catalog/allergies.txt
	allergiesFile string
)

// Reference lists offered while typing a condition or an allergy.
var (
	Conditions = NewCatalog(strings.Split(conditionsFile, "\n"))
	Allergies  = NewCatalog(strings.Split(allergiesFile, "\n"))
)

// Catalog is a fixed list of suggestion entries.
type Catalog struct {
	entries []string
	lower   []string
}

// NewCatalog drops blank and repeated entries, keeping first-seen order.
func NewCatalog(entries []string) *Catalog {
	c := &Catalog{}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		c.entries = append(c.entries, e)
		c.lower = append(c.lower, strings.ToLower(e))
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Suggest returns the entries containing query, ignoring case.
// Queries shorter than MinSuggestQuery characters return nothing.
func (c *Catalog) Suggest(query string) []string {
	if utf8.RuneCountInString(query) < MinSuggestQuery {
		return nil
	}
	q := strings.ToLower(query)
	var out []string
	for i, l := range c.lower {
		if strings.Contains(l, q) {
			out = append(out, c.entries[i])
		}
	}
	return out
}
