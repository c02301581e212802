// SPDX-License-Identifier: Apache-2.0

// Package sections implements one extractor per clinical section of the
// MPXV intake form. Each extractor is a pure function of document text and
// resolves every field it declares, defaulting on absence.
package sections

import (
	"fmt"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// Demographics extracts patient identity and residence fields.
type Demographics struct {
	age       *intake.CaptureMatcher
	birthDate *intake.CaptureMatcher
	sex       *intake.CaptureMatcher
	residence *intake.CaptureMatcher
	stayed    *intake.PresenceMatcher
}

func NewDemographics() *Demographics {
	return &Demographics{
		age:       intake.InlineCapture(`(?:Âge|Age)`, `(\d+)`),
		birthDate: intake.LabeledCapture(`Date de naissance`, intake.DatePattern),
		sex:       intake.Capture(`Sexe[\s:]*([HF])`),
		residence: intake.ColonCapture(`Résidence / déplacement récent`),
		stayed:    intake.LabeledPresence(`Séjour dans zone touchée`),
	}
}

func (e *Demographics) Name() string { return "demographics" }

func (e *Demographics) Extract(text string) intake.Fields {
	return intake.Fields{
		"age":                          e.age.Value(text),
		"date_naissance":               e.birthDate.Value(text),
		"sexe":                         e.sex.Value(text),
		"residence_deplacement_recent": e.residence.Value(text),
		"sejour_zone_touchee":          e.stayed.Match(text),
	}
}

// InclusionExclusion extracts the study inclusion and exclusion checkboxes.
// The form enumerates them as numbered variables per arm; the retrospective
// exclusion arm is labeled "Exclusion rétroprospective" on the form itself,
// so that spelling is matched as printed.
type InclusionExclusion struct {
	flags map[string]*intake.PresenceMatcher
}

func NewInclusionExclusion() *InclusionExclusion {
	arms := []struct {
		field string
		label string
		count int
	}{
		{"inclusion_prosp", `Inclusion prospective`, 3},
		{"inclusion_retro", `Inclusion rétrospective`, 4},
		{"exclusion_prosp", `Exclusion prospective`, 1},
		{"exclusion_retro", `Exclusion rétroprospective`, 2},
	}
	flags := make(map[string]*intake.PresenceMatcher)
	for _, arm := range arms {
		for i := 1; i <= arm.count; i++ {
			key := fmt.Sprintf("%s_%d", arm.field, i)
			flags[key] = intake.LabeledPresence(fmt.Sprintf(`%s.*?variable %d`, arm.label, i))
		}
	}
	return &InclusionExclusion{flags: flags}
}

func (e *InclusionExclusion) Name() string { return "inclusion_exclusion" }

func (e *InclusionExclusion) Extract(text string) intake.Fields {
	out := make(intake.Fields, len(e.flags))
	for key, m := range e.flags {
		out[key] = m.Match(text)
	}
	return out
}
