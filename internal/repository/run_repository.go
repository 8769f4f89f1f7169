package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasops/wsrflow/internal/domain"
)

type runRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository wires a repository backed by pgxpool.
func NewRunRepository(pool *pgxpool.Pool) RunRepository {
	return &runRepository{pool: pool}
}

func (r *runRepository) Create(ctx context.Context, run domain.IngestRun) error {
	if r.pool == nil {
		return fmt.Errorf("run repository not initialized")
	}

	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO wsr_runs (id, started_at)
		 VALUES ($1, $2)`,
		run.ID,
		run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create run row: %w", err)
	}

	return nil
}

func (r *runRepository) Finish(ctx context.Context, run domain.IngestRun) error {
	if r.pool == nil {
		return fmt.Errorf("run repository not initialized")
	}

	_, err := r.pool.Exec(
		ctx,
		`UPDATE wsr_runs
		 SET finished_at = $2,
		     files_seen = $3,
		     files_failed = $4,
		     records_extracted = $5,
		     records_uploaded = $6,
		     tabs_written = $7,
		     skipped_unmapped = $8
		 WHERE id = $1`,
		run.ID,
		run.FinishedAt,
		run.FilesSeen,
		run.FilesFailed,
		run.RecordsExtracted,
		run.RecordsUploaded,
		run.TabsWritten,
		run.SkippedUnmapped,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run row: %w", err)
	}

	return nil
}
