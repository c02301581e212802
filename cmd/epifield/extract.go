// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/config"
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/export"
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/ingest"
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake/sections"
	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/validate"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <dir>",
		Short: "Parse every intake form under a directory and export the record set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), args[0])
		},
	}
}

func runExtract(ctx context.Context, root string) error {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel).With("run_id", uuid.New().String())

	catalogs, err := config.LoadCatalogs(cfg.CatalogFile)
	if err != nil {
		return err
	}

	docs, stats, err := ingest.NewLoader(logger).LoadDirectory(root, cfg.IncludeExts)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		logger.Warn("extract.no_documents", "root", root)
	}

	parser := intake.NewParser(sections.Build(catalogs)...)
	aggregator := intake.NewAggregator(parser, intake.WithWorkers(cfg.Workers))
	records, err := aggregator.Aggregate(ctx, docs)
	if err != nil {
		return err
	}

	validator, err := validate.NewRecordValidator()
	if err != nil {
		return err
	}
	for _, verr := range validator.ValidateAll(records) {
		logger.Warn("extract.contract_violation", "error", verr)
	}

	svc := export.NewService(logger)
	if err := writeCSV(svc, records, filepath.Join(cfg.OutDir, "extraction.csv")); err != nil {
		return err
	}
	data, err := svc.MarshalJSON(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(cfg.OutDir, "extraction.json"), data, 0o644); err != nil {
		return fmt.Errorf("write json export: %w", err)
	}
	book, err := svc.BuildXLSX(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(cfg.OutDir, "extraction.xlsx"), book, 0o644); err != nil {
		return fmt.Errorf("write xlsx export: %w", err)
	}

	logger.Info("extract.ok", "documents", stats.Loaded, "records", len(records))
	return nil
}

func writeCSV(svc *export.Service, records []intake.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv export: %w", err)
	}
	if err := svc.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
