package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atlasops/wsrflow/internal/domain"
)

type entryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository wires a repository backed by pgxpool.
func NewEntryRepository(pool *pgxpool.Pool) EntryRepository {
	return &entryRepository{pool: pool}
}

var entryColumns = []string{
	"run_id",
	"store_number",
	"store_name",
	"legal_entity",
	"class_code",
	"week_ending",
	"sales_item",
	"amount",
	"description",
	"created_at",
}

// InsertMany writes one batch of records with a single COPY. The copy is
// atomic: either every record in the batch lands or none do.
func (r *entryRepository) InsertMany(ctx context.Context, runID uuid.UUID, records []domain.NormalizedRecord) (int, error) {
	if r.pool == nil {
		return 0, fmt.Errorf("entry repository not initialized")
	}
	if len(records) == 0 {
		return 0, nil
	}

	inserted, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"wsr_entries"},
		entryColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			record := records[i]
			return []any{
				runID,
				record.StoreID,
				record.StoreName,
				record.LegalEntity,
				record.ClassCode,
				record.WeekEnding,
				record.SalesItem,
				record.Amount,
				record.Description,
				record.CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy wsr entries: %w", err)
	}

	return int(inserted), nil
}
