// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// FollowUpVisit extracts one follow-up visit's outcome fields. The form
// repeats the same block per visit day code (J4, J8, ...); one extractor is
// built per day and each produces its own suivi_<day>_* field subset.
// The day code is kept verbatim in field names, matching the record layout
// the surveillance exports were built on.
type FollowUpVisit struct {
	day       string
	status    *intake.CaptureMatcher
	symptoms  *intake.CaptureMatcher
	visitDate *intake.CaptureMatcher
	comments  *intake.CaptureMatcher
}

func NewFollowUpVisit(day string) *FollowUpVisit {
	return &FollowUpVisit{
		day:       day,
		status:    intake.InlineCapture(day+`.*?Statut`, `(Suivi|Perdu de vue|Décédé)`),
		symptoms:  intake.InlineCapture(day+`.*?Symptômes`, `(Guérison|Amélioration|Stable|Détérioration)`),
		visitDate: intake.LabeledCapture(day+`.*?Date de visite`, intake.DatePattern),
		comments:  intake.Capture(day + `.*?Commentaires\s*:\s*` + intake.LinePattern),
	}
}

func (e *FollowUpVisit) Name() string { return "suivi_" + e.day }

func (e *FollowUpVisit) Extract(text string) intake.Fields {
	prefix := "suivi_" + e.day + "_"
	return intake.Fields{
		prefix + "statut":       e.status.Value(text),
		prefix + "symptomes":    e.symptoms.Value(text),
		prefix + "date_visite":  e.visitDate.Value(text),
		prefix + "commentaires": e.comments.Text(text),
	}
}
