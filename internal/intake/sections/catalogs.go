// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// Catalogs groups every label list and repeated dimension the section
// extractors are built from. DefaultCatalogs matches the current form
// template; deployments may override parts of it from configuration.
type Catalogs struct {
	Symptoms       []string
	LesionTypes    intake.Catalog
	LesionSites    intake.Catalog
	NodeSites      intake.Catalog
	NodeNatures    intake.Catalog
	ThoracicSigns  intake.Catalog
	AbdominalSigns intake.Catalog
	GenitalSigns   intake.Catalog
	Specimens      []Specimen
	TubeTypes      []string
	FollowUpDays   []string
}

// DefaultCatalogs returns the label catalogs of the current MPXV intake
// form template.
func DefaultCatalogs() Catalogs {
	return Catalogs{
		Symptoms: []string{
			"Asymptomatique", "Fièvre", "Lésions cutanées", "Symptômes grippaux",
			"Maux de tête", "Rougeur des yeux", "Écoulement oculaire",
			"Maux de gorge", "Toux", "Douleur thoracique", "Douleur abdominale",
			"Diarrhée", "Nausée", "Vomissements", "Miction douloureuse",
		},
		LesionTypes: intake.Catalog{
			Name: "lesion_types",
			Labels: []string{
				"macules", "papules", "vésicules", "pustules", "ulcérations",
				"croûtes", "cicatrices", "lésions hémorragiques", "surinfection", "autre",
			},
			Fold:      "éû",
			KeyPrefix: "type_",
			Context:   `Type.*?`,
			Aggregate: "types_lesions",
		},
		LesionSites: intake.Catalog{
			Name: "lesion_sites",
			Labels: []string{
				"tête/visage/cou", "bras", "jambes", "tronc", "bouche", "paumes",
				"plantes", "conjonctive", "organes génitaux externes", "périnée",
				"canal vaginal", "rectum", "autres",
			},
			Fold:      "éê",
			KeyPrefix: "localisation_",
			Context:   `Localisation.*?`,
			Aggregate: "localisations",
		},
		NodeSites: intake.Catalog{
			Name:      "node_sites",
			Labels:    []string{"cervical", "axillaire", "inguinal", "autre"},
			KeyPrefix: "ganglion_",
			Context:   `Localisation.*?`,
			Aggregate: "localisations_ganglions",
		},
		NodeNatures: intake.Catalog{
			Name:      "node_natures",
			Labels:    []string{"discret", "enchevêtré", "tendre", "caoutchouteux"},
			Fold:      "éê",
			KeyPrefix: "nature_",
			Context:   `Nature.*?`,
			Aggregate: "nature_ganglions",
		},
		ThoracicSigns: intake.Catalog{
			Name: "thoracique_card",
			Labels: []string{
				"tachypnée", "dyspnée", "sibilants", "râles", "murmures",
				"tachycardie", "bradycardie", "pouls faible",
			},
			Fold: "é",
		},
		AbdominalSigns: intake.Catalog{
			Name: "abdominal",
			Labels: []string{
				"distension", "sensibilité", "hépatomégalie", "splénomégalie", "ascite",
			},
			Fold: "é",
		},
		GenitalSigns: intake.Catalog{
			Name: "genital",
			Labels: []string{
				"sensibilité sus-pubienne", "adénopathies inguinales",
				"vessie distendue", "lésions pénis", "lésions périnéales",
			},
			Fold: "é",
		},
		Specimens: []Specimen{
			{Key: "lesionnaire", Label: `écouvillon lésionnaire`},
			{Key: "oropharynge", Label: `oropharyngé`},
		},
		TubeTypes:    []string{"SST", "EDTA"},
		FollowUpDays: []string{"J4", "J8", "J14", "J28", "J56"},
	}
}

// Validate checks every catalog label compiles as a presence pattern.
func (c Catalogs) Validate() error {
	for _, cat := range []intake.Catalog{
		c.LesionTypes, c.LesionSites, c.NodeSites, c.NodeNatures,
		c.ThoracicSigns, c.AbdominalSigns, c.GenitalSigns,
	} {
		if err := cat.Validate(); err != nil {
			return err
		}
	}
	symptoms := intake.Catalog{Name: "symptoms", Labels: c.Symptoms, Fold: symptomFold}
	if err := symptoms.Validate(); err != nil {
		return err
	}

	dimensions := intake.Catalog{Name: "dimensions", Labels: append([]string{}, c.TubeTypes...)}
	dimensions.Labels = append(dimensions.Labels, c.FollowUpDays...)
	for _, specimen := range c.Specimens {
		dimensions.Labels = append(dimensions.Labels, specimen.Label)
	}
	return dimensions.Validate()
}

// Build assembles the full section extractor set in form order,
// enumerating the parameterized dimensions (PCR specimen types, lab tube
// types, follow-up day codes) once per value.
func Build(c Catalogs) []intake.SectionExtractor {
	extractors := []intake.SectionExtractor{
		NewDemographics(),
		NewInclusionExclusion(),
		NewSymptoms(c.Symptoms),
		NewDiseaseCourse(),
		NewExposures(),
		NewComorbidities(),
		NewVaccination(),
		NewVitalSigns(),
		NewGeneralCondition(),
		NewLesions(c.LesionTypes, c.LesionSites),
		NewLymphNodes(c.NodeSites, c.NodeNatures),
		NewNeuroExam(),
		NewEntEyes(),
		NewRegionalExam("thoracique_card", c.ThoracicSigns, ""),
		NewRegionalExam("abdominal", c.AbdominalSigns, "autres_abdominal"),
		NewRegionalExam("genital", c.GenitalSigns, "autres_genital"),
	}
	for _, specimen := range c.Specimens {
		extractors = append(extractors, NewPCRPanel(specimen))
	}
	extractors = append(extractors, NewSampleCollection())
	for _, tube := range c.TubeTypes {
		extractors = append(extractors, NewLabProcessing(tube))
	}
	for _, day := range c.FollowUpDays {
		extractors = append(extractors, NewFollowUpVisit(day))
	}
	return extractors
}

// Default is Build over DefaultCatalogs.
func Default() []intake.SectionExtractor {
	return Build(DefaultCatalogs())
}
