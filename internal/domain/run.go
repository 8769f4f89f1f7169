package domain

import (
	"time"

	"github.com/google/uuid"
)

// IngestRun records one end-to-end pipeline execution for bookkeeping.
type IngestRun struct {
	ID               uuid.UUID
	StartedAt        time.Time
	FinishedAt       *time.Time
	FilesSeen        int
	FilesFailed      int
	RecordsExtracted int
	RecordsUploaded  int
	TabsWritten      int
	SkippedUnmapped  int
}

// NewIngestRun starts a run with a fresh identity.
func NewIngestRun(now time.Time) IngestRun {
	return IngestRun{ID: uuid.New(), StartedAt: now}
}
