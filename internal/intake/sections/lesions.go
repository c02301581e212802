// SPDX-License-Identifier: Apache-2.0

package sections

import (
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// Lesions extracts the skin-lesion exam: lesion type and body-site
// catalogs (each with a per-label boolean plus the joined aggregate), the
// dominant site and the sampled-lesion description.
type Lesions struct {
	types       *intake.CatalogExtractor
	sites       *intake.CatalogExtractor
	mainSite    *intake.CaptureMatcher
	description *intake.CaptureMatcher
}

func NewLesions(types, sites intake.Catalog) *Lesions {
	return &Lesions{
		types:       intake.NewCatalogExtractor(types),
		sites:       intake.NewCatalogExtractor(sites),
		mainSite:    intake.ColonCapture(`Localisation majoritaire`),
		description: intake.ColonCapture(`Description de la lésion prélevée`),
	}
}

func (e *Lesions) Name() string { return "lesions" }

func (e *Lesions) Extract(text string) intake.Fields {
	out := e.types.Extract(text)
	for name, value := range e.sites.Extract(text) {
		out[name] = value
	}
	out["localisation_majoritaire"] = e.mainSite.Text(text)
	out["description_lesion_prelevee"] = e.description.Text(text)
	return out
}
