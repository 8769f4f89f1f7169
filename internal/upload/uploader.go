// Package upload sends normalized records to the relational store in
// fixed-size batches. Batches favor partial progress over all-or-nothing
// consistency: the sink is an append-only fact table, so committed batches
// stay committed when a later one fails.
package upload

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/atlasops/wsrflow/internal/domain"
	"github.com/atlasops/wsrflow/internal/repository"
)

// DefaultBatchSize is how many records one insert operation carries.
const DefaultBatchSize = 1000

// Uploader batches records into the entry repository.
type Uploader struct {
	repo      repository.EntryRepository
	batchSize int
}

// Option customizes an Uploader.
type Option func(*Uploader)

// WithBatchSize overrides the batch size for the bulk path.
func WithBatchSize(size int) Option {
	return func(u *Uploader) {
		if size > 0 {
			u.batchSize = size
		}
	}
}

// New creates an uploader over the entry repository.
func New(repo repository.EntryRepository, opts ...Option) *Uploader {
	uploader := &Uploader{repo: repo, batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(uploader)
	}
	if uploader.batchSize <= 0 {
		uploader.batchSize = DefaultBatchSize
	}
	return uploader
}

// Summary reports what one upload attempted and what landed.
type Summary struct {
	RecordsAttempted int
	RecordsUploaded  int
	BatchesAttempted int
	FailedOffsets    []int
}

// Upload inserts records in input order, one repository call per batch. A
// failed batch is logged with its offset and the count committed before
// it; later batches still run. Only context cancellation aborts the loop.
func (u *Uploader) Upload(ctx context.Context, runID uuid.UUID, records []domain.NormalizedRecord) (Summary, error) {
	summary := Summary{RecordsAttempted: len(records)}
	if len(records) == 0 {
		return summary, nil
	}

	for offset := 0; offset < len(records); offset += u.batchSize {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		end := offset + u.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[offset:end]
		summary.BatchesAttempted++

		inserted, err := u.repo.InsertMany(ctx, runID, batch)
		if err != nil {
			summary.FailedOffsets = append(summary.FailedOffsets, offset)
			log.Printf("[upload] batch at offset %d failed after %d records committed: %v", offset, summary.RecordsUploaded, err)
			continue
		}

		summary.RecordsUploaded += inserted
		log.Printf("[upload] uploaded batch: %d/%d records", summary.RecordsUploaded, len(records))
	}

	return summary, nil
}
