package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/repository"
	"github.com/noah-isme/roomfinder-api/internal/service"
	"github.com/noah-isme/roomfinder-api/pkg/config"
	"github.com/noah-isme/roomfinder-api/pkg/logger"
	"github.com/noah-isme/roomfinder-api/pkg/storage"
)

type summary struct {
	Campuses map[string]int `json:"campuses"`
	Meta     interface{}    `json:"meta"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var (
		input   string
		output  string
		csvOut  string
		pdfOut  string
		verbose bool
	)
	flag.StringVar(&input, "in", cfg.Dataset.Path, "Timetable JSON to compact")
	flag.StringVar(&output, "out", "classes.compact.json", "Compact table file name, relative to COMPACT_OUTPUT_DIR")
	flag.StringVar(&csvOut, "csv", "", "Also write the busy table as CSV to this file name")
	flag.StringVar(&pdfOut, "pdf", "", "Also write the busy table as PDF to this file name")
	flag.BoolVar(&verbose, "v", false, "Log skipped entries")
	flag.Parse()

	if verbose {
		cfg.Log.Level = "debug"
	}
	cfg.Log.Format = "console"
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(context.Background(), logr, cfg.Compactor.OutputDir, input, output, csvOut, pdfOut); err != nil {
		logr.Error("compaction failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logr *zap.Logger, outputDir, input, output, csvOut, pdfOut string) error {
	dataset, err := repository.NewFileDatasetRepository(input, logr).Load(ctx)
	if err != nil {
		return err
	}

	compactor := service.NewCompactorService(logr, nil)
	table, err := compactor.Compact(ctx, dataset)
	if err != nil {
		return err
	}
	payload, err := compactor.Encode(table)
	if err != nil {
		return err
	}

	store, err := storage.NewLocalStorage(outputDir)
	if err != nil {
		return err
	}
	path, err := store.Save(output, payload)
	if err != nil {
		return err
	}
	logr.Info("compact table written", zap.String("path", path), zap.Int("campuses", len(table.Campuses)))

	exporter := service.NewExportService(store, logr, nil, nil)
	if csvOut != "" {
		if _, err := exporter.Export(ctx, table, service.ExportFormatCSV, csvOut); err != nil {
			return err
		}
	}
	if pdfOut != "" {
		if _, err := exporter.Export(ctx, table, service.ExportFormatPDF, pdfOut); err != nil {
			return err
		}
	}

	out, err := json.MarshalIndent(summary{Campuses: table.RoomCounts(), Meta: table.Meta}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
