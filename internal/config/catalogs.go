// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake/sections"
)

// catalogOverrides is the YAML shape of a catalog override file. Only the
// label lists are overridable; prefixes, fold sets and anchoring context
// stay bound to the record layout.
type catalogOverrides struct {
	Symptoms       []string            `yaml:"symptoms"`
	LesionTypes    []string            `yaml:"lesion_types"`
	LesionSites    []string            `yaml:"lesion_sites"`
	NodeSites      []string            `yaml:"node_sites"`
	NodeNatures    []string            `yaml:"node_natures"`
	ThoracicSigns  []string            `yaml:"thoracic_signs"`
	AbdominalSigns []string            `yaml:"abdominal_signs"`
	GenitalSigns   []string            `yaml:"genital_signs"`
	Specimens      []sections.Specimen `yaml:"specimens"`
	TubeTypes      []string            `yaml:"tube_types"`
	FollowUpDays   []string            `yaml:"follow_up_days"`
}

// LoadCatalogs returns the default catalogs with any overrides from the
// given YAML file applied. An empty path returns the defaults unchanged.
// Overridden labels are validated as presence patterns before use.
func LoadCatalogs(path string) (sections.Catalogs, error) {
	catalogs := sections.DefaultCatalogs()
	if path == "" {
		return catalogs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return catalogs, fmt.Errorf("read catalog file: %w", err)
	}
	var overrides catalogOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return catalogs, fmt.Errorf("parse catalog file: %w", err)
	}

	if len(overrides.Symptoms) > 0 {
		catalogs.Symptoms = overrides.Symptoms
	}
	if len(overrides.LesionTypes) > 0 {
		catalogs.LesionTypes.Labels = overrides.LesionTypes
	}
	if len(overrides.LesionSites) > 0 {
		catalogs.LesionSites.Labels = overrides.LesionSites
	}
	if len(overrides.NodeSites) > 0 {
		catalogs.NodeSites.Labels = overrides.NodeSites
	}
	if len(overrides.NodeNatures) > 0 {
		catalogs.NodeNatures.Labels = overrides.NodeNatures
	}
	if len(overrides.ThoracicSigns) > 0 {
		catalogs.ThoracicSigns.Labels = overrides.ThoracicSigns
	}
	if len(overrides.AbdominalSigns) > 0 {
		catalogs.AbdominalSigns.Labels = overrides.AbdominalSigns
	}
	if len(overrides.GenitalSigns) > 0 {
		catalogs.GenitalSigns.Labels = overrides.GenitalSigns
	}
	if len(overrides.Specimens) > 0 {
		catalogs.Specimens = overrides.Specimens
	}
	if len(overrides.TubeTypes) > 0 {
		catalogs.TubeTypes = overrides.TubeTypes
	}
	if len(overrides.FollowUpDays) > 0 {
		catalogs.FollowUpDays = overrides.FollowUpDays
	}

	if err := catalogs.Validate(); err != nil {
		return catalogs, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return catalogs, nil
}
