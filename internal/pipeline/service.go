// Package pipeline orchestrates one ingestion run: discover report files,
// extract and normalize them one at a time, then fan the combined records
// out to the bulk and pivot sinks.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/atlasops/wsrflow/internal/archive"
	"github.com/atlasops/wsrflow/internal/domain"
	"github.com/atlasops/wsrflow/internal/normalize"
	"github.com/atlasops/wsrflow/internal/pivot"
	"github.com/atlasops/wsrflow/internal/report"
	"github.com/atlasops/wsrflow/internal/repository"
	"github.com/atlasops/wsrflow/internal/upload"
)

var (
	// ErrNoReports is returned when the reports directory holds no report
	// files at all.
	ErrNoReports = errors.New("no report files found")

	// ErrNoRecords is returned when files were present but none yielded a
	// single record. This is a terminal condition for the run, distinct
	// from individual file failures.
	ErrNoRecords = errors.New("no records extracted from any file")
)

type extractFunc func(path string) (domain.ReportHeader, []domain.RawLineItem, error)

// Service wires the pipeline stages together. Either sink may be nil,
// meaning it was disabled at startup; the other still runs.
type Service struct {
	normalizer *normalize.Normalizer
	uploader   *upload.Uploader
	exporter   *pivot.Exporter
	runRepo    repository.RunRepository

	extract extractFunc
	now     func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithExtractor overrides the per-file extraction function. Tests use this
// to feed synthetic reports.
func WithExtractor(fn extractFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.extract = fn
		}
	}
}

// WithClock overrides the run timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates the pipeline service. runRepo may be nil when the relational
// store is unavailable; bookkeeping is then skipped along with the bulk
// sink.
func New(
	normalizer *normalize.Normalizer,
	uploader *upload.Uploader,
	exporter *pivot.Exporter,
	runRepo repository.RunRepository,
	opts ...Option,
) *Service {
	service := &Service{
		normalizer: normalizer,
		uploader:   uploader,
		exporter:   exporter,
		runRepo:    runRepo,
		extract:    report.ExtractFile,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Run executes one end-to-end ingestion over the reports directory.
func (s *Service) Run(ctx context.Context, reportsDir string) (domain.IngestRun, error) {
	run := domain.NewIngestRun(s.now())

	if _, err := archive.ExtractAll(reportsDir); err != nil {
		return run, fmt.Errorf("failed to scan %s: %w", reportsDir, err)
	}

	files, err := discoverReports(reportsDir)
	if err != nil {
		return run, err
	}
	if len(files) == 0 {
		return run, fmt.Errorf("%w in %s", ErrNoReports, reportsDir)
	}
	log.Printf("[pipeline] run %s: found %d report file(s)", run.ID, len(files))

	var records []domain.NormalizedRecord
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return run, err
		}
		run.FilesSeen++

		header, items, err := s.extract(path)
		if err != nil {
			run.FilesFailed++
			log.Printf("[pipeline] %s rejected: %v", filepath.Base(path), err)
			continue
		}

		normalized := s.normalizer.Normalize(header, items)
		records = append(records, normalized...)
		log.Printf("[pipeline] %s: store %d week %s, %d record(s)",
			filepath.Base(path), header.StoreID, header.WeekEnding.Format(domain.DateLayout), len(normalized))
	}

	run.RecordsExtracted = len(records)
	if len(records) == 0 {
		return run, ErrNoRecords
	}

	if s.runRepo != nil {
		if err := s.runRepo.Create(ctx, run); err != nil {
			log.Printf("[pipeline] failed to record run start: %v", err)
		}
	}

	if s.uploader != nil {
		summary, err := s.uploader.Upload(ctx, run.ID, records)
		if err != nil {
			return run, err
		}
		run.RecordsUploaded = summary.RecordsUploaded
	} else {
		log.Printf("[pipeline] bulk sink disabled, skipping upload")
	}

	if s.exporter != nil {
		summary, err := s.exporter.Export(ctx, records)
		if err != nil {
			return run, err
		}
		run.TabsWritten = summary.TabsWritten
		run.SkippedUnmapped = summary.SkippedUnmapped
	} else {
		log.Printf("[pipeline] pivot sink disabled, skipping export")
	}

	finished := s.now()
	run.FinishedAt = &finished
	if s.runRepo != nil {
		if err := s.runRepo.Finish(ctx, run); err != nil {
			log.Printf("[pipeline] failed to record run finish: %v", err)
		}
	}

	log.Printf("[pipeline] run %s done: files=%d failed=%d extracted=%d uploaded=%d tabs=%d skipped=%d",
		run.ID, run.FilesSeen, run.FilesFailed, run.RecordsExtracted, run.RecordsUploaded, run.TabsWritten, run.SkippedUnmapped)
	return run, nil
}

// discoverReports lists report files in source order, skipping Excel lock
// files.
func discoverReports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~$") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".xls" && ext != ".xlsx" {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}
