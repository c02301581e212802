// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// Specimen is one value of the PCR panel dimension: the ASCII field-key
// component and the label as printed on the form.
type Specimen struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// PCRResultDetected is the trigger value gating Ct-value extraction: the
// quantitation is only read when the panel's result field equals it.
const PCRResultDetected = "Détecté"

// PCRPanel extracts one specimen type's PCR panel. The form repeats the
// same panel per specimen, so one PCRPanel is built per Specimen value and
// each produces its own pcr_<key>_* field subset.
type PCRPanel struct {
	specimen   Specimen
	testDate   *intake.CaptureMatcher
	testUsed   *intake.CaptureMatcher
	lot        *intake.CaptureMatcher
	expiration *intake.CaptureMatcher
	runPass    *intake.CaptureMatcher
	result     *intake.CaptureMatcher
	ctValue    *intake.CaptureMatcher
	repeated   *intake.PresenceMatcher
}

func NewPCRPanel(specimen Specimen) *PCRPanel {
	label := specimen.Label
	return &PCRPanel{
		specimen:   specimen,
		testDate:   intake.LabeledCapture(label+`.*?Date test`, intake.DatePattern),
		testUsed:   intake.Capture(label + `.*?Test utilisé\s*:\s*` + intake.LinePattern),
		lot:        intake.Capture(label + `.*?Lot\s*:\s*` + intake.TokenPattern),
		expiration: intake.LabeledCapture(label+`.*?Date d’expiration`, intake.DatePattern),
		runPass:    intake.InlineCapture(label+`.*?Run pass`, `(Oui|No)`),
		result:     intake.InlineCapture(label+`.*?Résultat`, `(Détecté|Non détecté|Inconclusif|Invalide)`),
		ctValue:    intake.InlineCapture(label+`.*?Ct value`, `(\d+\.\d+)`),
		repeated:   intake.LabeledPresence(label + `.*?Test répété`),
	}
}

func (e *PCRPanel) Name() string { return "pcr_" + e.specimen.Key }

func (e *PCRPanel) Extract(text string) intake.Fields {
	prefix := "pcr_" + e.specimen.Key + "_"

	result := e.result.Value(text)

	// Ct value is gated on the result token: anything other than Détecté
	// leaves it absent even when a matching number appears in the text.
	ct := any(nil)
	if result == PCRResultDetected {
		ct = e.ctValue.Value(text)
	}

	return intake.Fields{
		prefix + "date":         e.testDate.Value(text),
		prefix + "test_utilise": e.testUsed.Value(text),
		prefix + "lot":          e.lot.Value(text),
		prefix + "expiration":   e.expiration.Value(text),
		prefix + "run_pass":     e.runPass.Value(text),
		prefix + "resultat":     result,
		prefix + "ct_value":     ct,
		prefix + "repete":       e.repeated.Match(text),
	}
}

// SampleCollection extracts the specimen collection log: tube counts,
// collection and cold-chain timestamps and the collector's initials.
type SampleCollection struct {
	collectionDate *intake.CaptureMatcher
	collectionTime *intake.CaptureMatcher
	tubes          map[string]*intake.CaptureMatcher
	coolerTime     *intake.CaptureMatcher
	labShipDate    *intake.CaptureMatcher
	labShipTime    *intake.CaptureMatcher
	collectorInit  *intake.CaptureMatcher
}

func NewSampleCollection() *SampleCollection {
	return &SampleCollection{
		// The collection-date label appears with inconsistent accents and
		// spacing across form vintages, hence the single-character gaps.
		collectionDate: intake.LabeledCapture(`Date.?pr.l.vement`, intake.DatePattern),
		collectionTime: intake.Capture(`à\s*\(?heure\)?[: ]+(\d{2}:\d{2})`),
		tubes: map[string]*intake.CaptureMatcher{
			"sst_6ml":  intake.LabeledCapture(`SST 6ml`, `x(\d+)`),
			"sst_2ml":  intake.LabeledCapture(`SST 2ml`, `x(\d+)`),
			"edta_6ml": intake.LabeledCapture(`EDTA 6ml`, `x(\d+)`),
			"edta_2ml": intake.LabeledCapture(`EDTA 2ml`, `x(\d+)`),
		},
		coolerTime:    intake.InlineCapture(`Heure de mise en glacière`, `(\d{2}:\d{2})`),
		labShipDate:   intake.Capture(`Envoi au labo : date[\s& ]+` + intake.DatePattern),
		labShipTime:   intake.InlineCapture(`heure`, `(\d{2}:\d{2})`),
		collectorInit: intake.InlineCapture(`Initiales collecteur`, intake.TokenPattern),
	}
}

func (e *SampleCollection) Name() string { return "sample_collection" }

func (e *SampleCollection) Extract(text string) intake.Fields {
	out := intake.Fields{
		"date_prelevement":     e.collectionDate.Value(text),
		"heure_prelevement":    e.collectionTime.Value(text),
		"heure_glaciere":       e.coolerTime.Value(text),
		"envoi_labo_date":      e.labShipDate.Value(text),
		"envoi_labo_heure":     e.labShipTime.Value(text),
		"initiales_collecteur": e.collectorInit.Value(text),
	}
	for name, m := range e.tubes {
		out[name] = m.Value(text)
	}
	return out
}

// LabProcessing extracts one sample tube type's processing log. Built once
// per tube type (SST, EDTA), each producing a <type>_-prefixed subset.
type LabProcessing struct {
	tubeType       string
	collectionDate *intake.CaptureMatcher
}

func NewLabProcessing(tubeType string) *LabProcessing {
	return &LabProcessing{
		tubeType:       tubeType,
		collectionDate: intake.LabeledCapture(tubeType+`.*?Date prélèvement`, intake.DatePattern),
	}
}

func (e *LabProcessing) Name() string { return "lab_processing_" + intake.FieldKey(e.tubeType, "") }

func (e *LabProcessing) Extract(text string) intake.Fields {
	prefix := intake.FieldKey(e.tubeType, "") + "_"
	return intake.Fields{
		prefix + "date_prelevement": e.collectionDate.Value(text),
	}
}
