// SPDX-License-Identifier: Apache-2.0

package sections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake/sections"
)

func TestDemographics(t *testing.T) {
	e := sections.NewDemographics()

	tests := []struct {
		name           string
		text           string
		validateOutput func(t *testing.T, fields intake.Fields)
	}{
		{
			name: "filled demographics block",
			text: "Âge: 34\nDate de naissance : 12/Jan/1990\nSexe: F\n" +
				"Résidence / déplacement récent : Goma\nSéjour dans zone touchée 0 Oui",
			validateOutput: func(t *testing.T, fields intake.Fields) {
				assert.Equal(t, "34", fields["age"])
				assert.Equal(t, "12/Jan/1990", fields["date_naissance"])
				assert.Equal(t, "F", fields["sexe"])
				assert.Equal(t, "Goma", fields["residence_deplacement_recent"])
				assert.Equal(t, true, fields["sejour_zone_touchee"])
			},
		},
		{
			name: "unaccented Age variant",
			text: "Age : 60",
			validateOutput: func(t *testing.T, fields intake.Fields) {
				assert.Equal(t, "60", fields["age"])
			},
		},
		{
			name: "empty text defaults every field",
			text: "",
			validateOutput: func(t *testing.T, fields intake.Fields) {
				assert.Nil(t, fields["age"])
				assert.Nil(t, fields["date_naissance"])
				assert.Nil(t, fields["sexe"])
				assert.Nil(t, fields["residence_deplacement_recent"])
				assert.Equal(t, false, fields["sejour_zone_touchee"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateOutput(t, e.Extract(tt.text))
		})
	}
}

func TestInclusionExclusion(t *testing.T) {
	e := sections.NewInclusionExclusion()

	fields := e.Extract("Inclusion prospective — variable 2   0 Oui\n" +
		"Exclusion rétroprospective, variable 1   0 Oui")
	assert.Equal(t, false, fields["inclusion_prosp_1"])
	assert.Equal(t, true, fields["inclusion_prosp_2"])
	assert.Equal(t, false, fields["inclusion_prosp_3"])
	assert.Equal(t, true, fields["exclusion_retro_1"])
	assert.Equal(t, false, fields["exclusion_retro_2"])

	// 3 + 4 + 1 + 2 numbered flags
	assert.Len(t, fields, 10)
}

func TestSymptoms(t *testing.T) {
	e := sections.NewSymptoms([]string{"Fièvre", "Toux"})

	tests := []struct {
		name string
		text string
		want intake.Fields
	}{
		{
			name: "present and still present",
			text: "Fièvre  Symptôme présent 0 Oui\nFièvre  Symptôme encore présent 0 Oui",
			want: intake.Fields{
				"fievre_present":        true,
				"fievre_encore_present": true,
				"toux_present":          false,
				"toux_encore_present":   false,
				"autres_symptomes":      "",
			},
		},
		{
			name: "free text line captured with empty-string default semantics",
			text: "Autres symptômes décrits : frissons nocturnes",
			want: intake.Fields{
				"fievre_present":        false,
				"fievre_encore_present": false,
				"toux_present":          false,
				"toux_encore_present":   false,
				"autres_symptomes":      "frissons nocturnes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text))
		})
	}
}

func TestVitalSigns(t *testing.T) {
	e := sections.NewVitalSigns()

	fields := e.Extract("Température : 38.5\nTension artérielle : 120/80\n" +
		"Fréquence respiratoire : 18\nFréquence cardiaque : 92\nPoids : 70.5\nTaille : 172")
	assert.Equal(t, "38.5", fields["temperature"])
	assert.Equal(t, "120/80", fields["tension_arterielle"])
	assert.Equal(t, "18", fields["frequence_respiratoire"])
	assert.Equal(t, "92", fields["frequence_cardiaque"])
	assert.Equal(t, "70.5", fields["poids"])
	assert.Equal(t, "172", fields["taille"])
}

func TestLesions(t *testing.T) {
	catalogs := sections.DefaultCatalogs()
	e := sections.NewLesions(catalogs.LesionTypes, catalogs.LesionSites)

	text := "Type de lésion : macules 0 Oui\nType de lésion : croûtes 0 Oui\n" +
		"Localisation : bras 0 Oui\nLocalisation : tronc 0 Oui\n" +
		"Localisation majoritaire : bras\nDescription de la lésion prélevée : pustule ombiliquée"

	fields := e.Extract(text)
	assert.Equal(t, true, fields["type_macules"])
	assert.Equal(t, true, fields["type_croutes"])
	assert.Equal(t, false, fields["type_papules"])
	assert.Equal(t, "macules;croûtes", fields["types_lesions"], "aggregate in catalog order with raw labels")
	assert.Equal(t, "bras;tronc", fields["localisations"])
	assert.Equal(t, "bras", fields["localisation_majoritaire"])
	assert.Equal(t, "pustule ombiliquée", fields["description_lesion_prelevee"])
}

func TestLymphNodes(t *testing.T) {
	catalogs := sections.DefaultCatalogs()
	e := sections.NewLymphNodes(catalogs.NodeSites, catalogs.NodeNatures)

	text := "Présence d’adénopathies : Oui\nLocalisation : cervical 0 Oui\n" +
		"Taille (mm) : 15\nNature : tendre 0 Oui\nSensibilité : Non"

	fields := e.Extract(text)
	assert.Equal(t, "Oui", fields["presence_adenopathies"])
	assert.Equal(t, true, fields["ganglion_cervical"])
	assert.Equal(t, false, fields["ganglion_inguinal"])
	assert.Equal(t, "cervical", fields["localisations_ganglions"])
	assert.Equal(t, "15", fields["taille_ganglions_mm"])
	assert.Equal(t, "tendre", fields["nature_ganglions"])
	assert.Equal(t, "Non", fields["sensibilite_ganglions"])
	assert.Equal(t, "", fields["autres_constatations_ganglions"])
}

func TestPCRPanel_ConditionalCtValue(t *testing.T) {
	specimen := sections.Specimen{Key: "lesionnaire", Label: `écouvillon lésionnaire`}
	e := sections.NewPCRPanel(specimen)

	tests := []struct {
		name           string
		text           string
		validateOutput func(t *testing.T, fields intake.Fields)
	}{
		{
			name: "detected result releases the Ct value",
			text: "écouvillon lésionnaire — Résultat : Détecté — Ct value : 23.50",
			validateOutput: func(t *testing.T, fields intake.Fields) {
				assert.Equal(t, "Détecté", fields["pcr_lesionnaire_resultat"])
				assert.Equal(t, "23.50", fields["pcr_lesionnaire_ct_value"])
			},
		},
		{
			name: "non-detected result keeps the Ct value absent even when a number is nearby",
			text: "écouvillon lésionnaire — Résultat : Non détecté — Ct value : 23.50",
			validateOutput: func(t *testing.T, fields intake.Fields) {
				assert.Equal(t, "Non détecté", fields["pcr_lesionnaire_resultat"])
				assert.Nil(t, fields["pcr_lesionnaire_ct_value"])
			},
		},
		{
			name: "absent result keeps the Ct value absent",
			text: "écouvillon lésionnaire — Ct value : 23.50",
			validateOutput: func(t *testing.T, fields intake.Fields) {
				assert.Nil(t, fields["pcr_lesionnaire_resultat"])
				assert.Nil(t, fields["pcr_lesionnaire_ct_value"])
			},
		},
		{
			name: "full panel",
			text: "écouvillon lésionnaire Date test 01/Jan/2025 Test utilisé : GeneXpert MPXV\n" +
				"écouvillon lésionnaire Lot : LOT-42 Date d’expiration 31/Déc/2025 Run pass : Oui\n" +
				"écouvillon lésionnaire Résultat : Détecté Ct value : 19.75 Test répété 0 Oui",
			validateOutput: func(t *testing.T, fields intake.Fields) {
				assert.Equal(t, "01/Jan/2025", fields["pcr_lesionnaire_date"])
				assert.Equal(t, "GeneXpert MPXV", fields["pcr_lesionnaire_test_utilise"])
				assert.Equal(t, "LOT-42", fields["pcr_lesionnaire_lot"])
				assert.Equal(t, "31/Déc/2025", fields["pcr_lesionnaire_expiration"])
				assert.Equal(t, "Oui", fields["pcr_lesionnaire_run_pass"])
				assert.Equal(t, "19.75", fields["pcr_lesionnaire_ct_value"])
				assert.Equal(t, true, fields["pcr_lesionnaire_repete"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateOutput(t, e.Extract(tt.text))
		})
	}
}

func TestPCRPanel_SpecimenIndependence(t *testing.T) {
	lesion := sections.NewPCRPanel(sections.Specimen{Key: "lesionnaire", Label: `écouvillon lésionnaire`})
	throat := sections.NewPCRPanel(sections.Specimen{Key: "oropharynge", Label: `oropharyngé`})

	text := "écouvillon lésionnaire Résultat : Détecté Ct value : 23.50\n" +
		"oropharyngé Résultat : Non détecté"

	lesionFields := lesion.Extract(text)
	throatFields := throat.Extract(text)

	assert.Equal(t, "Détecté", lesionFields["pcr_lesionnaire_resultat"])
	assert.Equal(t, "23.50", lesionFields["pcr_lesionnaire_ct_value"])
	assert.Equal(t, "Non détecté", throatFields["pcr_oropharynge_resultat"])
	assert.Nil(t, throatFields["pcr_oropharynge_ct_value"])
}

func TestFollowUpVisit(t *testing.T) {
	e := sections.NewFollowUpVisit("J14")

	text := "Visite J14 — Statut : Suivi — Symptômes : Amélioration\n" +
		"J14 Date de visite 15/Jan/2025\nJ14 Commentaires : lésions en voie de cicatrisation"

	fields := e.Extract(text)
	assert.Equal(t, "Suivi", fields["suivi_J14_statut"])
	assert.Equal(t, "Amélioration", fields["suivi_J14_symptomes"])
	assert.Equal(t, "15/Jan/2025", fields["suivi_J14_date_visite"])
	assert.Equal(t, "lésions en voie de cicatrisation", fields["suivi_J14_commentaires"])

	empty := e.Extract("")
	assert.Nil(t, empty["suivi_J14_statut"])
	assert.Equal(t, "", empty["suivi_J14_commentaires"])
}

func TestSampleCollection(t *testing.T) {
	e := sections.NewSampleCollection()

	text := "Date prélèvement 02/Jan/2025 à (heure): 10:30\n" +
		"SST 6ml x2  SST 2ml x1  EDTA 6ml x1  EDTA 2ml x3\n" +
		"Heure de mise en glacière : 11:05\nInitiales collecteur : AK"

	fields := e.Extract(text)
	assert.Equal(t, "02/Jan/2025", fields["date_prelevement"])
	assert.Equal(t, "10:30", fields["heure_prelevement"])
	assert.Equal(t, "2", fields["sst_6ml"])
	assert.Equal(t, "1", fields["sst_2ml"])
	assert.Equal(t, "1", fields["edta_6ml"])
	assert.Equal(t, "3", fields["edta_2ml"])
	assert.Equal(t, "11:05", fields["heure_glaciere"])
	assert.Equal(t, "AK", fields["initiales_collecteur"])
}

func TestLabProcessing(t *testing.T) {
	sst := sections.NewLabProcessing("SST")
	edta := sections.NewLabProcessing("EDTA")

	text := "SST — Date prélèvement 02/Jan/2025\nEDTA — Date prélèvement 03/Jan/2025"

	assert.Equal(t, intake.Fields{"sst_date_prelevement": "02/Jan/2025"}, sst.Extract(text))
	assert.Equal(t, intake.Fields{"edta_date_prelevement": "03/Jan/2025"}, edta.Extract(text))
}

func TestBuild_NoFieldCollisions(t *testing.T) {
	parser := intake.NewParser(sections.Default()...)
	rec := parser.Parse("")

	// The reserved source key must not be producible by any extractor.
	_, reserved := rec[intake.SourceFileField]
	assert.False(t, reserved)

	// Every extractor's output must be disjoint from the others'.
	seen := map[string]string{}
	for _, e := range sections.Default() {
		for name := range e.Extract("") {
			if prev, dup := seen[name]; dup {
				t.Fatalf("field %q produced by both %s and %s", name, prev, e.Name())
			}
			seen[name] = e.Name()
		}
	}
	require.Equal(t, len(seen), len(rec))
}

func TestCatalogsValidate(t *testing.T) {
	require.NoError(t, sections.DefaultCatalogs().Validate())

	broken := sections.DefaultCatalogs()
	broken.LesionTypes.Labels = append(broken.LesionTypes.Labels, `([`)
	require.Error(t, broken.Validate())
}
