// SPDX-License-Identifier: Apache-2.0

package intake

import (
	"regexp"
	"strings"
)

// The source forms render a ticked checkbox as a literal "0" followed by the
// word "Oui". Whether the leading zero is a rendering artifact of the form
// export or a meaningful code is not established; the literal match is kept.
const checkedMarker = `0\s*Oui`

// DatePattern captures the fixed DD/Mon/YYYY date layout used throughout the
// forms. Month abbreviations may carry accents (Fév, Aoû, Déc), hence \p{L}.
// Day and month ranges are not validated; malformed dates pass through.
const DatePattern = `(\d{2}/\p{L}{3}/\d{4})`

// LinePattern captures free text up to the end of the line.
const LinePattern = `(.+?)(?:\n|$)`

// TokenPattern captures a single whitespace-delimited token.
const TokenPattern = `(\S+)`

// PresenceMatcher reports whether a labeled checkbox is ticked anywhere in
// the text: the label, followed at unbounded same-line distance by the
// checked marker. Matching is case-insensitive, including accented letters.
type PresenceMatcher struct {
	re *regexp.Regexp
}

// LabeledPresence builds a PresenceMatcher for the given label. The label is
// a pattern fragment: literal form text, optionally with gaps such as
// `VIH.*?sans ARV`. Invalid fragments panic; labels are declared in code or
// validated at catalog load.
func LabeledPresence(label string) *PresenceMatcher {
	return &PresenceMatcher{re: regexp.MustCompile(`(?i)` + label + `.*?` + checkedMarker)}
}

// Match reports whether the label's checked marker occurs in text.
// Absence and an explicit "Non" are indistinguishable; both return false.
func (m *PresenceMatcher) Match(text string) bool {
	return m.re.MatchString(text)
}

// CaptureMatcher locates a labeled value and captures it as a string.
type CaptureMatcher struct {
	re *regexp.Regexp
}

// Capture builds a CaptureMatcher from a full pattern containing exactly one
// capture group.
func Capture(pattern string) *CaptureMatcher {
	return &CaptureMatcher{re: regexp.MustCompile(`(?i)` + pattern)}
}

// LabeledCapture matches the label followed at unbounded same-line distance
// by the value pattern.
func LabeledCapture(label, valuePattern string) *CaptureMatcher {
	return Capture(label + `.*?` + valuePattern)
}

// InlineCapture matches the label immediately followed by a colon or
// whitespace delimiter and the value pattern.
func InlineCapture(label, valuePattern string) *CaptureMatcher {
	return Capture(label + `[\s:]+` + valuePattern)
}

// ColonCapture matches "label : free text" up to the end of the line.
func ColonCapture(label string) *CaptureMatcher {
	return Capture(label + `\s*:\s*` + LinePattern)
}

// Find returns the trimmed captured value and whether the pattern matched.
func (m *CaptureMatcher) Find(text string) (string, bool) {
	sub := m.re.FindStringSubmatch(text)
	if sub == nil {
		return "", false
	}
	return strings.TrimSpace(sub[1]), true
}

// Value returns the captured value, or nil when the label is not found.
// The capture is returned verbatim and unvalidated.
func (m *CaptureMatcher) Value(text string) any {
	v, ok := m.Find(text)
	if !ok {
		return nil
	}
	return v
}

// Text returns the captured value, or "" when the label is not found. Used
// for fields whose declared default is the empty string rather than absent.
func (m *CaptureMatcher) Text(text string) string {
	v, _ := m.Find(text)
	return v
}
