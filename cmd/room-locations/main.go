package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/noah-isme/roomfinder-api/internal/repository"
	"github.com/noah-isme/roomfinder-api/pkg/config"
	"github.com/noah-isme/roomfinder-api/pkg/logger"
	"github.com/noah-isme/roomfinder-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var workbook, output string
	flag.StringVar(&workbook, "in", cfg.Locations.WorkbookPath, "Room location workbook (.xlsx)")
	flag.StringVar(&output, "out", cfg.Locations.LookupPath, "Room lookup JSON to write")
	flag.Parse()

	cfg.Log.Format = "console"
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	count, err := run(workbook, output)
	if err != nil {
		logr.Error("room lookup import failed", zap.Error(err))
		os.Exit(1)
	}
	logr.Info("room lookup written", zap.String("path", output), zap.Int("rooms", count))
	fmt.Printf("%d rooms written to %s\n", count, output)
}

func run(workbook, output string) (int, error) {
	locations, err := repository.ReadRoomWorkbook(workbook)
	if err != nil {
		return 0, err
	}
	lookup := repository.BuildRoomLookup(locations)
	payload, err := repository.EncodeRoomLookup(lookup)
	if err != nil {
		return 0, err
	}
	store, err := storage.NewLocalStorage(".")
	if err != nil {
		return 0, err
	}
	if _, err := store.Save(output, payload); err != nil {
		return 0, err
	}
	return len(lookup), nil
}
