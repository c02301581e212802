// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake/sections"
)

// MetadataParseIntakeDocument describes the parse_intake_document tool.
var MetadataParseIntakeDocument = &mcp.Tool{
	Name: "parse_intake_document",
	Description: "Parse the raw text of one clinical intake form and return the full " +
		"extracted surveillance record: demographics, symptoms, exposures, comorbidities, " +
		"exam findings, PCR panels and follow-up visits. Extraction is total: fields the " +
		"document does not contain resolve to false, the empty string, or null. " +
		"Field values are returned verbatim and unvalidated; dates keep the form's " +
		"DD/Mon/YYYY layout.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw text of the intake form to parse",
			},
			"source_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional identifier for the document (file name, URL, etc.) recorded under source_file.",
			},
		},
	},
}

// InputParseIntakeDocument is the input for the ParseIntakeDocument tool.
type InputParseIntakeDocument struct {
	Content  string `json:"content"`
	SourceID string `json:"source_id"`
}

// OutputParseIntakeDocument is the output for the ParseIntakeDocument tool.
type OutputParseIntakeDocument struct {
	// Record maps every declared field name to its extracted value.
	Record intake.Record `json:"record"`
	// FieldCount is the size of the record's field superset.
	FieldCount int `json:"field_count"`
	// Sections lists the section extractors that ran, in order.
	Sections []string `json:"sections"`
}

// defaultParser builds a Parser over the full default section extractor
// catalog, including one PCR panel per specimen type and one follow-up
// block per visit day.
func defaultParser() *intake.Parser {
	return intake.NewParser(sections.Default()...)
}

// ParseIntakeDocument runs the extraction engine over the provided document
// text and returns the aggregated record.
func ParseIntakeDocument(_ context.Context, _ *mcp.CallToolRequest, input InputParseIntakeDocument) (*mcp.CallToolResult, OutputParseIntakeDocument, error) {
	if input.Content == "" {
		return nil, OutputParseIntakeDocument{}, fmt.Errorf("content is required")
	}

	sourceID := input.SourceID
	if sourceID == "" {
		sourceID = "unknown"
	}

	parser := defaultParser()
	rec := parser.Parse(input.Content)
	rec[intake.SourceFileField] = sourceID

	return nil, OutputParseIntakeDocument{
		Record:     rec,
		FieldCount: len(rec),
		Sections:   parser.Sections(),
	}, nil
}
