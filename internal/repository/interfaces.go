// Package repository persists normalized records and run bookkeeping in
// the relational store.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/atlasops/wsrflow/internal/domain"
)

// EntryRepository defines the interface for bulk line-item persistence.
// One InsertMany call is one insert operation; callers own the batching.
type EntryRepository interface {
	InsertMany(ctx context.Context, runID uuid.UUID, records []domain.NormalizedRecord) (int, error)
}

// RunRepository tracks per-run bookkeeping rows.
type RunRepository interface {
	Create(ctx context.Context, run domain.IngestRun) error
	Finish(ctx context.Context, run domain.IngestRun) error
}
