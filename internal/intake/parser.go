// SPDX-License-Identifier: Apache-2.0

package intake

// Parser runs the full section extractor set against one document and
// merges the outputs into a single flat Record.
type Parser struct {
	sections []SectionExtractor
}

// NewParser creates a Parser over the given sections. Sections run in
// declaration order and merge last-write-wins; producing the same field
// name from two sections is a configuration defect caught by tests, not
// defended against here.
func NewParser(sections ...SectionExtractor) *Parser {
	return &Parser{sections: sections}
}

// Parse extracts every declared field from the document text. The returned
// Record always carries the full fixed field superset: text matching none
// of the expected templates yields a record of nothing but defaults.
func (p *Parser) Parse(text string) Record {
	rec := make(Record)
	for _, s := range p.sections {
		for name, value := range s.Extract(text) {
			rec[name] = value
		}
	}
	return rec
}

// Sections returns the names of the registered section extractors in order.
func (p *Parser) Sections() []string {
	names := make([]string, len(p.sections))
	for i, s := range p.sections {
		names[i] = s.Name()
	}
	return names
}
