package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/xuri/excelize/v2"

	"github.com/atlasops/wsrflow/internal/config"
	"github.com/atlasops/wsrflow/internal/db"
	"github.com/atlasops/wsrflow/internal/directory"
	"github.com/atlasops/wsrflow/internal/mapping"
	"github.com/atlasops/wsrflow/internal/normalize"
	"github.com/atlasops/wsrflow/internal/pipeline"
	"github.com/atlasops/wsrflow/internal/pivot"
	"github.com/atlasops/wsrflow/internal/repository"
	"github.com/atlasops/wsrflow/internal/upload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// A sink whose client cannot initialize is disabled for the whole
	// run; the other sink still proceeds.
	var (
		uploader *upload.Uploader
		runRepo  repository.RunRepository
	)
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Printf("[main] relational sink disabled: %v", err)
	} else {
		defer conn.Close()
		if err := db.RunMigrations(cfg.Database); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		uploader = upload.New(repository.NewEntryRepository(conn.Pool), upload.WithBatchSize(cfg.BatchSize))
		runRepo = repository.NewRunRepository(conn.Pool)
	}

	var (
		exporter *pivot.Exporter
		workbook *excelize.File
	)
	workbook, err = excelize.OpenFile(cfg.WorkbookPath)
	if err != nil {
		log.Printf("[main] pivot sink disabled: cannot open workbook %s: %v", cfg.WorkbookPath, err)
	} else {
		defer func() { _ = workbook.Close() }()
		resolver, err := mapping.LoadFromWorkbook(workbook, cfg.MappingSheet)
		if err != nil {
			log.Printf("[main] pivot sink disabled: %v", err)
		} else {
			writer, err := pivot.NewWorkbookWriter(workbook)
			if err != nil {
				log.Printf("[main] pivot sink disabled: %v", err)
			} else {
				exporter = pivot.New(resolver, writer)
			}
		}
	}

	dir := directory.Default()
	log.Printf("[main] store directory maps %d stores", dir.Len())

	service := pipeline.New(normalize.New(dir), uploader, exporter, runRepo)
	run, runErr := service.Run(ctx, cfg.ReportsDir)

	if exporter != nil && run.TabsWritten > 0 {
		if err := workbook.Save(); err != nil {
			log.Printf("[main] failed to save workbook: %v", err)
		} else {
			log.Printf("[main] saved workbook %s", cfg.WorkbookPath)
		}
	}

	if runErr != nil {
		switch {
		case errors.Is(runErr, pipeline.ErrNoReports), errors.Is(runErr, pipeline.ErrNoRecords):
			log.Printf("[main] nothing to process: %v", runErr)
		default:
			log.Printf("[main] run failed: %v", runErr)
		}
		os.Exit(1)
	}
}
