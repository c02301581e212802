// SPDX-License-Identifier: Apache-2.0

package intake

import (
	"fmt"
	"regexp"
	"strings"
)

// foldTable maps the accented vowels occurring in the form's label catalogs
// to their unaccented equivalents. This is deliberately not a general
// transliteration; only the vowels a catalog declares are folded.
var foldTable = map[rune]string{
	'à': "a", 'â': "a",
	'é': "e", 'è': "e", 'ê': "e",
	'î': "i", 'ï': "i",
	'ô': "o",
	'û': "u",
}

// FieldKey derives a record field name from a human-readable label:
// lower-case, spaces to underscores, and the accented vowels listed in fold
// replaced by their unaccented equivalents.
func FieldKey(label, fold string) string {
	key := strings.ToLower(label)
	key = strings.ReplaceAll(key, " ", "_")
	for _, r := range fold {
		if plain, ok := foldTable[r]; ok {
			key = strings.ReplaceAll(key, string(r), plain)
		}
	}
	return key
}

// Catalog is a fixed ordered list of category labels driving repeated
// per-label boolean extraction. Catalogs are explicit immutable values
// handed to the section extractor constructors, never ambient state, so
// tests and deployments can substitute their own label lists.
type Catalog struct {
	// Name identifies the catalog and, when Aggregate is set, has no other
	// role than diagnostics.
	Name string
	// Labels in form order. Each is a pattern fragment of literal form text.
	Labels []string
	// Fold lists the accented vowels folded during field-key derivation.
	Fold string
	// KeyPrefix is prepended to every derived field key, keeping catalogs
	// with overlapping labels (e.g. "autre") from colliding.
	KeyPrefix string
	// Context is a pattern fragment required before the label, e.g.
	// `Type.*?` to anchor lesion types to the "Type" row of the form.
	Context string
	// Aggregate, when non-empty, names an extra field holding the
	// semicolon-joined labels whose checkbox matched, in catalog order.
	Aggregate string
}

// Key derives the boolean field name for one catalog label.
func (c Catalog) Key(label string) string {
	return c.KeyPrefix + FieldKey(label, c.Fold)
}

// Keys returns the derived field name for every label, in catalog order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c.Labels))
	for i, label := range c.Labels {
		keys[i] = c.Key(label)
	}
	return keys
}

// Validate reports the first label that does not compile as a presence
// pattern. Called when catalogs are loaded from configuration; in-code
// defaults are covered by tests.
func (c Catalog) Validate() error {
	for _, label := range c.Labels {
		if _, err := regexp.Compile(`(?i)` + c.Context + label + `.*?` + checkedMarker); err != nil {
			return fmt.Errorf("catalog %s: label %q: %w", c.Name, label, err)
		}
	}
	return nil
}

// CatalogExtractor produces one boolean field per catalog label, plus the
// optional joined aggregate field.
type CatalogExtractor struct {
	catalog  Catalog
	matchers []*PresenceMatcher
}

// NewCatalogExtractor compiles the catalog's presence matchers once.
// It panics on an invalid label; run Catalog.Validate first for labels that
// come from configuration.
func NewCatalogExtractor(c Catalog) *CatalogExtractor {
	matchers := make([]*PresenceMatcher, len(c.Labels))
	for i, label := range c.Labels {
		matchers[i] = LabeledPresence(c.Context + label)
	}
	return &CatalogExtractor{catalog: c, matchers: matchers}
}

func (e *CatalogExtractor) Name() string {
	return e.catalog.Name
}

// Extract returns one boolean per label and, when declared, the aggregate
// field joining the matched labels verbatim in catalog order.
func (e *CatalogExtractor) Extract(text string) Fields {
	out := make(Fields, len(e.matchers)+1)
	var matched []string
	for i, label := range e.catalog.Labels {
		ok := e.matchers[i].Match(text)
		out[e.catalog.Key(label)] = ok
		if ok {
			matched = append(matched, label)
		}
	}
	if e.catalog.Aggregate != "" {
		out[e.catalog.Aggregate] = strings.Join(matched, ";")
	}
	return out
}
