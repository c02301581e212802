// SPDX-License-Identifier: Apache-2.0

// Package validate checks aggregated records against the extraction
// contract: every field is boolean, string or null, and the reserved
// source identifier is present. Violations indicate a defect in extractor
// configuration, not in input documents, so they are reported rather than
// fatal.
package validate

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

const recordSchema = `
#Record: {
	source_file: string
	[!="source_file"]: bool | string | null
}
`

// RecordValidator validates records against the #Record contract.
type RecordValidator struct {
	ctx    *cue.Context
	schema cue.Value
}

func NewRecordValidator() (*RecordValidator, error) {
	ctx := cuecontext.New()
	compiled := ctx.CompileString(recordSchema)
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	schema := compiled.LookupPath(cue.ParsePath("#Record"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("lookup record schema: %w", err)
	}
	return &RecordValidator{ctx: ctx, schema: schema}, nil
}

// Validate reports the first contract violation in rec, or nil.
func (v *RecordValidator) Validate(rec intake.Record) error {
	data := v.ctx.Encode(map[string]any(rec))
	if err := data.Err(); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	unified := v.schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("record %q: %w", rec.String(intake.SourceFileField), err)
	}
	return nil
}

// ValidateAll validates every record and returns one error per violating
// record.
func (v *RecordValidator) ValidateAll(records []intake.Record) []error {
	var errs []error
	for _, rec := range records {
		if err := v.Validate(rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
