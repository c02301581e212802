// SPDX-License-Identifier: Apache-2.0

// Package intake extracts structured clinical-surveillance variables from
// the raw text of filled intake forms. Extraction is total: a field that is
// missing, misspelled, or laid out differently never fails a parse, it
// resolves to the field's declared default (false, empty string, or absent).
//
// A known limitation of the source form template is that an unticked
// checkbox and a missing section are indistinguishable, so boolean fields
// conflate "explicitly No" with "never mentioned"; both read as false.
package intake

// Document is one clinical intake form's raw text, keyed by an opaque
// source identifier (a file name in the reference workflow).
type Document struct {
	ID   string
	Text string
}

// Fields is one section extractor's output: field name to extracted value.
// Values are bool, string, or nil for absent.
type Fields map[string]any

// Record is the full set of extracted field values for one Document,
// including the reserved source identifier once aggregated.
type Record map[string]any

// SourceFileField is the reserved record key carrying the document
// identifier. No section extractor may produce it.
const SourceFileField = "source_file"

// SectionExtractor derives the field values of one clinical form section
// from document text. Implementations must be pure functions of the text
// and must return a value for every field they declare.
type SectionExtractor interface {
	Name() string
	Extract(text string) Fields
}

// Bool returns the named field as a boolean, false when missing or not a bool.
func (r Record) Bool(name string) bool {
	b, _ := r[name].(bool)
	return b
}

// String returns the named field as a string, "" when missing or absent.
func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

// Absent reports whether the named field resolved to the absent value.
func (r Record) Absent(name string) bool {
	v, ok := r[name]
	return !ok || v == nil
}
