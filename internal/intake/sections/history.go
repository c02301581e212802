// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// DiseaseCourse extracts symptom onset and MPXV treatment fields.
type DiseaseCourse struct {
	onset          *intake.CaptureMatcher
	underTreatment *intake.PresenceMatcher
	tecovirimat    *intake.PresenceMatcher
	brincidofovir  *intake.PresenceMatcher
	otherTreatment *intake.CaptureMatcher
	treatmentStart *intake.CaptureMatcher
}

func NewDiseaseCourse() *DiseaseCourse {
	return &DiseaseCourse{
		onset:          intake.LabeledCapture(`Date des premiers symptômes`, intake.DatePattern),
		underTreatment: intake.LabeledPresence(`Patient sous traitement MPXV`),
		tecovirimat:    intake.LabeledPresence(`Type de traitement.*?Técovirimat`),
		brincidofovir:  intake.LabeledPresence(`Type de traitement.*?Brincidofovir`),
		otherTreatment: intake.ColonCapture(`Autres \(texte\)`),
		treatmentStart: intake.LabeledCapture(`Date de début de traitement`, intake.DatePattern),
	}
}

func (e *DiseaseCourse) Name() string { return "evolution_maladie" }

func (e *DiseaseCourse) Extract(text string) intake.Fields {
	return intake.Fields{
		"date_premiers_symptomes":       e.onset.Value(text),
		"patient_sous_traitement_mpxv":  e.underTreatment.Match(text),
		"type_traitement_tecovirimat":   e.tecovirimat.Match(text),
		"type_traitement_brincidofovir": e.brincidofovir.Match(text),
		"type_traitement_autres":        e.otherTreatment.Value(text),
		"date_debut_traitement":         e.treatmentStart.Value(text),
	}
}

// Exposures extracts travel and contact exposure fields.
type Exposures struct {
	travel       *intake.PresenceMatcher
	outbreakZone *intake.PresenceMatcher
	country      *intake.CaptureMatcher
	district     *intake.CaptureMatcher
	caseContact  *intake.PresenceMatcher
	other        *intake.CaptureMatcher
}

func NewExposures() *Exposures {
	return &Exposures{
		travel:       intake.LabeledPresence(`Antécédent de voyage`),
		outbreakZone: intake.LabeledPresence(`Voyage en zone d’épidémie`),
		country:      intake.ColonCapture(`Pays visité`),
		district:     intake.ColonCapture(`District/province`),
		caseContact:  intake.LabeledPresence(`Contact avec cas confirmé ou suspect`),
		other:        intake.ColonCapture(`Autres expositions significatives`),
	}
}

func (e *Exposures) Name() string { return "expositions" }

func (e *Exposures) Extract(text string) intake.Fields {
	return intake.Fields{
		"antecedent_voyage":           e.travel.Match(text),
		"voyage_zone_epidemie":        e.outbreakZone.Match(text),
		"pays_visite":                 e.country.Value(text),
		"district_province":           e.district.Value(text),
		"contact_cas_confirm_suspect": e.caseContact.Match(text),
		"autres_expositions":          e.other.Text(text),
	}
}

// Comorbidities extracts the comorbidity checkboxes, with HIV split by
// viral-load status as on the form.
type Comorbidities struct {
	hivSuppressed   *intake.PresenceMatcher
	hivUnsuppressed *intake.PresenceMatcher
	hivNoART        *intake.PresenceMatcher
	malnutrition    *intake.PresenceMatcher
	sti             *intake.PresenceMatcher
	malignancy      *intake.PresenceMatcher
	otherChronic    *intake.CaptureMatcher
}

func NewComorbidities() *Comorbidities {
	return &Comorbidities{
		hivSuppressed:   intake.LabeledPresence(`VIH.*?charge supprimée`),
		hivUnsuppressed: intake.LabeledPresence(`VIH.*?non supprimée`),
		hivNoART:        intake.LabeledPresence(`VIH.*?sans ARV`),
		malnutrition:    intake.LabeledPresence(`Malnutrition sévère`),
		sti:             intake.LabeledPresence(`IST`),
		malignancy:      intake.LabeledPresence(`Tumeur maligne`),
		otherChronic:    intake.ColonCapture(`Autres maladies chroniques`),
	}
}

func (e *Comorbidities) Name() string { return "comorbidites" }

func (e *Comorbidities) Extract(text string) intake.Fields {
	return intake.Fields{
		"vih_charge_supprimee":       e.hivSuppressed.Match(text),
		"vih_non_supprimee":          e.hivUnsuppressed.Match(text),
		"vih_sans_arv":               e.hivNoART.Match(text),
		"malnutrition_severe":        e.malnutrition.Match(text),
		"ist":                        e.sti.Match(text),
		"tumeur_maligne":             e.malignancy.Match(text),
		"autres_maladies_chroniques": e.otherChronic.Text(text),
	}
}

// Vaccination extracts the vaccination history checkboxes.
type Vaccination struct {
	smallpox  *intake.PresenceMatcher
	varicella *intake.PresenceMatcher
	mva       *intake.PresenceMatcher
	other     *intake.CaptureMatcher
}

func NewVaccination() *Vaccination {
	return &Vaccination{
		smallpox:  intake.LabeledPresence(`Vaccin variole`),
		varicella: intake.LabeledPresence(`Vaccin varicelle`),
		mva:       intake.LabeledPresence(`Vaccin MVA`),
		other:     intake.ColonCapture(`Autres vaccins`),
	}
}

func (e *Vaccination) Name() string { return "vaccination" }

func (e *Vaccination) Extract(text string) intake.Fields {
	return intake.Fields{
		"vaccin_variole":   e.smallpox.Match(text),
		"vaccin_varicelle": e.varicella.Match(text),
		"vaccin_mva":       e.mva.Match(text),
		"autres_vaccins":   e.other.Text(text),
	}
}
