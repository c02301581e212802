// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// VitalSigns extracts the measured vital signs as unparsed numeric strings;
// unit conversion and range checks are downstream concerns.
type VitalSigns struct {
	temperature     *intake.CaptureMatcher
	bloodPressure   *intake.CaptureMatcher
	respiratoryRate *intake.CaptureMatcher
	heartRate       *intake.CaptureMatcher
	weight          *intake.CaptureMatcher
	height          *intake.CaptureMatcher
}

func NewVitalSigns() *VitalSigns {
	return &VitalSigns{
		temperature:     intake.InlineCapture(`Température`, `(\d+\.?\d*)`),
		bloodPressure:   intake.InlineCapture(`Tension artérielle`, `(\d+/\d+)`),
		respiratoryRate: intake.InlineCapture(`Fréquence respiratoire`, `(\d+)`),
		heartRate:       intake.InlineCapture(`Fréquence cardiaque`, `(\d+)`),
		weight:          intake.InlineCapture(`Poids`, `(\d+\.?\d*)`),
		height:          intake.InlineCapture(`Taille`, `(\d+\.?\d*)`),
	}
}

func (e *VitalSigns) Name() string { return "signes_vitaux" }

func (e *VitalSigns) Extract(text string) intake.Fields {
	return intake.Fields{
		"temperature":            e.temperature.Value(text),
		"tension_arterielle":     e.bloodPressure.Value(text),
		"frequence_respiratoire": e.respiratoryRate.Value(text),
		"frequence_cardiaque":    e.heartRate.Value(text),
		"poids":                  e.weight.Value(text),
		"taille":                 e.height.Value(text),
	}
}

// GeneralCondition extracts the enumerated overall-condition field. The
// captured token is returned verbatim; values outside the expected set are
// not normalized.
type GeneralCondition struct {
	condition *intake.CaptureMatcher
}

func NewGeneralCondition() *GeneralCondition {
	return &GeneralCondition{
		condition: intake.InlineCapture(`État général`, `(Très malade|Modérément|Légèrement|Normal)`),
	}
}

func (e *GeneralCondition) Name() string { return "etat_general" }

func (e *GeneralCondition) Extract(text string) intake.Fields {
	return intake.Fields{
		"etat_general": e.condition.Value(text),
	}
}

// LymphNodes extracts the adenopathy exam: presence, site and nature
// catalogs, size and tenderness.
type LymphNodes struct {
	presence   *intake.CaptureMatcher
	sites      *intake.CatalogExtractor
	sizeMM     *intake.CaptureMatcher
	natures    *intake.CatalogExtractor
	tenderness *intake.CaptureMatcher
	other      *intake.CaptureMatcher
}

func NewLymphNodes(sites, natures intake.Catalog) *LymphNodes {
	return &LymphNodes{
		presence:   intake.InlineCapture(`Présence d’adénopathies`, `(Oui|Non|NA)`),
		sites:      intake.NewCatalogExtractor(sites),
		sizeMM:     intake.InlineCapture(`Taille \(mm\)`, `(\d+)`),
		natures:    intake.NewCatalogExtractor(natures),
		tenderness: intake.InlineCapture(`Sensibilité`, `(Oui|Non|NA)`),
		other:      intake.ColonCapture(`Autres constatations`),
	}
}

func (e *LymphNodes) Name() string { return "ganglions" }

func (e *LymphNodes) Extract(text string) intake.Fields {
	out := intake.Fields{
		"presence_adenopathies":          e.presence.Value(text),
		"taille_ganglions_mm":            e.sizeMM.Value(text),
		"sensibilite_ganglions":          e.tenderness.Value(text),
		"autres_constatations_ganglions": e.other.Text(text),
	}
	for name, value := range e.sites.Extract(text) {
		out[name] = value
	}
	for name, value := range e.natures.Extract(text) {
		out[name] = value
	}
	return out
}

// NeuroExam extracts the neurological exam; the abnormal-finding checkboxes
// are anchored to the "Si non" row of the form.
type NeuroExam struct {
	result        *intake.CaptureMatcher
	meningealSign *intake.PresenceMatcher
	focalDeficit  *intake.PresenceMatcher
	other         *intake.CaptureMatcher
}

func NewNeuroExam() *NeuroExam {
	return &NeuroExam{
		result:        intake.InlineCapture(`Examen neurologique`, `(Normal|Non|NA)`),
		meningealSign: intake.LabeledPresence(`Si non.*?Signes méningés`),
		focalDeficit:  intake.LabeledPresence(`Si non.*?Déficits focaux`),
		other:         intake.InlineCapture(`Autres`, intake.LinePattern),
	}
}

func (e *NeuroExam) Name() string { return "examen_neuro" }

func (e *NeuroExam) Extract(text string) intake.Fields {
	return intake.Fields{
		"examen_neuro":    e.result.Value(text),
		"signes_meninges": e.meningealSign.Match(text),
		"deficits_focaux": e.focalDeficit.Match(text),
		"autres_neuro":    e.other.Text(text),
	}
}

// EntEyes extracts the ENT and eye exam; abnormal findings are anchored to
// the "Sinon" row of the form.
type EntEyes struct {
	result         *intake.CaptureMatcher
	conjunctivitis *intake.PresenceMatcher
	cornealLesions *intake.PresenceMatcher
	otitis         *intake.PresenceMatcher
	mastoiditis    *intake.PresenceMatcher
	pharyngitis    *intake.PresenceMatcher
	other          *intake.CaptureMatcher
}

func NewEntEyes() *EntEyes {
	return &EntEyes{
		result:         intake.InlineCapture(`ORL / yeux`, `(Normal|Non)`),
		conjunctivitis: intake.LabeledPresence(`Sinon.*?conjonctivite`),
		cornealLesions: intake.LabeledPresence(`Sinon.*?lésions cornéennes`),
		otitis:         intake.LabeledPresence(`Sinon.*?otite`),
		mastoiditis:    intake.LabeledPresence(`Sinon.*?mastoïdite`),
		pharyngitis:    intake.LabeledPresence(`Sinon.*?pharyngite`),
		other:          intake.InlineCapture(`autres`, intake.LinePattern),
	}
}

func (e *EntEyes) Name() string { return "orl_yeux" }

func (e *EntEyes) Extract(text string) intake.Fields {
	return intake.Fields{
		"examen_orl_yeux":    e.result.Value(text),
		"conjonctivite":      e.conjunctivitis.Match(text),
		"lesions_corneennes": e.cornealLesions.Match(text),
		"otite":              e.otitis.Match(text),
		"mastoidite":         e.mastoiditis.Match(text),
		"pharyngite":         e.pharyngitis.Match(text),
		"autres_orl":         e.other.Text(text),
	}
}

// RegionalExam is a catalog of per-region exam-finding checkboxes plus an
// optional free-text "other" field, covering the thoracic-cardiac,
// abdominal and genito-urinary exam sections.
type RegionalExam struct {
	name     string
	findings *intake.CatalogExtractor
	otherKey string
	other    *intake.CaptureMatcher
}

// NewRegionalExam builds a regional exam extractor. otherKey may be empty
// for sections without a free-text line.
func NewRegionalExam(name string, findings intake.Catalog, otherKey string) *RegionalExam {
	e := &RegionalExam{
		name:     name,
		findings: intake.NewCatalogExtractor(findings),
		otherKey: otherKey,
	}
	if otherKey != "" {
		e.other = intake.InlineCapture(`autres`, intake.LinePattern)
	}
	return e
}

func (e *RegionalExam) Name() string { return e.name }

func (e *RegionalExam) Extract(text string) intake.Fields {
	out := e.findings.Extract(text)
	if e.otherKey != "" {
		out[e.otherKey] = e.other.Text(text)
	}
	return out
}
