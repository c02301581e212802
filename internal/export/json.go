// SPDX-License-Identifier: Apache-2.0

package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// recordSetSchema is the JSON contract of an exported record set: an array
// of objects whose values are boolean, string or null, each tagged with its
// source_file identifier.
var recordSetSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []string{intake.SourceFileField},
		"properties": map[string]any{
			intake.SourceFileField: map[string]any{"type": "string"},
		},
		"additionalProperties": map[string]any{
			"type": []string{"boolean", "string", "null"},
		},
	},
}

// MarshalJSON renders the record set as indented UTF-8 JSON with null for
// absent values, and verifies the payload against the export contract
// before returning it.
func (s *Service) MarshalJSON(records []intake.Record) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	if err := validateAgainstSchema(recordSetSchema, data); err != nil {
		return nil, err
	}
	s.logger.Info("export.json.ok", "rows", len(records), "bytes", len(data))
	return data, nil
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
