// SPDX-License-Identifier: Apache-2.0

package intake

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Aggregator applies a Parser across a collection of documents. Documents
// are independent, so parsing fans out over a bounded worker pool; output
// order is restored to match input order after collection.
type Aggregator struct {
	parser  *Parser
	workers int
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithWorkers bounds the parse worker pool.
func WithWorkers(n int) AggregatorOption {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// NewAggregator creates an Aggregator over the given parser.
func NewAggregator(parser *Parser, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{parser: parser, workers: 4}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Aggregate parses every document and returns one Record per document, in
// input order, each tagged with its document ID under SourceFileField.
// A document whose text matches nothing still yields a (defaulted) record;
// the only error is context cancellation.
func (a *Aggregator) Aggregate(ctx context.Context, docs []Document) ([]Record, error) {
	out := make([]Record, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := a.parser.Parse(doc.Text)
			rec[SourceFileField] = doc.ID
			out[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// AggregateMap is Aggregate over a {document id: text} mapping. Record
// order follows Go's map iteration order and is therefore not stable;
// callers that need a stable order should build the []Document themselves.
func (a *Aggregator) AggregateMap(ctx context.Context, docs map[string]string) ([]Record, error) {
	ordered := make([]Document, 0, len(docs))
	for id, text := range docs {
		ordered = append(ordered, Document{ID: id, Text: text})
	}
	return a.Aggregate(ctx, ordered)
}
