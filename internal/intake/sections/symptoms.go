// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// symptomFold lists the accented vowels folded in symptom field keys. The
// form's symptom labels also contain ô and ê (Symptômes grippaux, Maux de
// tête); those are kept as-is in the record layout.
const symptomFold = "éè"

// Symptoms extracts a present / still-present boolean pair per symptom in
// the given catalog, plus the free-text "other symptoms" line.
type Symptoms struct {
	labels  []string
	present map[string]*intake.PresenceMatcher
	ongoing map[string]*intake.PresenceMatcher
	other   *intake.CaptureMatcher
}

// NewSymptoms builds the extractor over an explicit symptom label list so
// tests and deployments can substitute their own catalog.
func NewSymptoms(labels []string) *Symptoms {
	e := &Symptoms{
		labels:  labels,
		present: make(map[string]*intake.PresenceMatcher, len(labels)),
		ongoing: make(map[string]*intake.PresenceMatcher, len(labels)),
		other:   intake.ColonCapture(`Autres symptômes décrits`),
	}
	for _, label := range labels {
		key := intake.FieldKey(label, symptomFold)
		e.present[key] = intake.LabeledPresence(label + `.*?Symptôme présent`)
		e.ongoing[key] = intake.LabeledPresence(label + `.*?Symptôme encore présent`)
	}
	return e
}

func (e *Symptoms) Name() string { return "symptoms" }

func (e *Symptoms) Extract(text string) intake.Fields {
	out := make(intake.Fields, 2*len(e.labels)+1)
	for _, label := range e.labels {
		key := intake.FieldKey(label, symptomFold)
		out[key+"_present"] = e.present[key].Match(text)
		out[key+"_encore_present"] = e.ongoing[key].Match(text)
	}
	out["autres_symptomes"] = e.other.Text(text)
	return out
}
