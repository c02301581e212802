// SPDX-License-Identifier: Apache-2.0

package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldKey(t *testing.T) {
	tests := []struct {
		name  string
		label string
		fold  string
		want  string
	}{
		{"lowercase and underscores", "Maux de gorge", "éè", "maux_de_gorge"},
		{"declared vowels fold", "Lésions cutanées", "éè", "lesions_cutanees"},
		{"leading accented capital folds", "Écoulement oculaire", "éè", "ecoulement_oculaire"},
		{"undeclared vowels stay accented", "Maux de tête", "éè", "maux_de_tête"},
		{"empty fold set keeps accents", "Fièvre", "", "fièvre"},
		{"circumflex folds when declared", "croûtes", "éû", "croutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FieldKey(tt.label, tt.fold))
		})
	}
}

func TestCatalogExtractor(t *testing.T) {
	catalog := Catalog{
		Name:      "signs",
		Labels:    []string{"alpha", "beta", "gamma"},
		Aggregate: "signs_joined",
	}
	e := NewCatalogExtractor(catalog)

	tests := []struct {
		name       string
		text       string
		wantBools  map[string]bool
		wantJoined string
	}{
		{
			name:       "subset of labels checked",
			text:       "gamma 0 Oui\nalpha 0 Oui\nbeta 0 Non",
			wantBools:  map[string]bool{"alpha": true, "beta": false, "gamma": true},
			wantJoined: "alpha;gamma",
		},
		{
			name:       "aggregate follows catalog order, not document order",
			text:       "beta 0 Oui\nalpha 0 Oui",
			wantBools:  map[string]bool{"alpha": true, "beta": true, "gamma": false},
			wantJoined: "alpha;beta",
		},
		{
			name:       "nothing checked",
			text:       "alpha beta gamma",
			wantBools:  map[string]bool{"alpha": false, "beta": false, "gamma": false},
			wantJoined: "",
		},
		{
			name:       "empty text",
			text:       "",
			wantBools:  map[string]bool{"alpha": false, "beta": false, "gamma": false},
			wantJoined: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := e.Extract(tt.text)
			for label, want := range tt.wantBools {
				assert.Equal(t, want, fields[label], "label %q", label)
			}
			assert.Equal(t, tt.wantJoined, fields["signs_joined"])
		})
	}
}

func TestCatalogKeyPrefix(t *testing.T) {
	catalog := Catalog{
		Name:      "lesion_types",
		Labels:    []string{"vésicules", "autre"},
		Fold:      "é",
		KeyPrefix: "type_",
		Context:   `Type.*?`,
		Aggregate: "types_lesions",
	}
	e := NewCatalogExtractor(catalog)

	fields := e.Extract("Type de lésion : vésicules 0 Oui")
	assert.Equal(t, true, fields["type_vesicules"])
	assert.Equal(t, false, fields["type_autre"])
	assert.Equal(t, "vésicules", fields["types_lesions"], "aggregate joins the raw labels")

	// context anchoring: the label alone does not match without the Type row
	fields = e.Extract("vésicules 0 Oui")
	assert.Equal(t, false, fields["type_vesicules"])
}

func TestCatalogValidate(t *testing.T) {
	good := Catalog{Name: "ok", Labels: []string{"alpha", `bet.*?a`}}
	require.NoError(t, good.Validate())

	bad := Catalog{Name: "bad", Labels: []string{`([`}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}
