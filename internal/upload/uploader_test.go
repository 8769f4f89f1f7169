package upload

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/atlasops/wsrflow/internal/domain"
	"github.com/atlasops/wsrflow/internal/repository"
)

type stubEntryRepo struct {
	batches  [][]domain.NormalizedRecord
	failAt   map[int]error // keyed by call index
	received []uuid.UUID
}

func (s *stubEntryRepo) InsertMany(ctx context.Context, runID uuid.UUID, records []domain.NormalizedRecord) (int, error) {
	call := len(s.batches)
	s.batches = append(s.batches, records)
	s.received = append(s.received, runID)
	if err, ok := s.failAt[call]; ok {
		return 0, err
	}
	return len(records), nil
}

var _ repository.EntryRepository = (*stubEntryRepo)(nil)

func makeRecords(n int) []domain.NormalizedRecord {
	records := make([]domain.NormalizedRecord, n)
	for i := range records {
		records[i] = domain.NormalizedRecord{StoreID: i}
	}
	return records
}

func TestUploadBatchSizes(t *testing.T) {
	repo := &stubEntryRepo{}
	uploader := New(repo, WithBatchSize(1000))

	summary, err := uploader.Upload(context.Background(), uuid.New(), makeRecords(2500))
	if err != nil {
		t.Fatalf("upload returned error: %v", err)
	}

	if summary.BatchesAttempted != 3 {
		t.Fatalf("expected 3 insert operations, got %d", summary.BatchesAttempted)
	}
	sizes := []int{len(repo.batches[0]), len(repo.batches[1]), len(repo.batches[2])}
	if sizes[0] != 1000 || sizes[1] != 1000 || sizes[2] != 500 {
		t.Fatalf("unexpected batch sizes %v", sizes)
	}
	if summary.RecordsUploaded != 2500 {
		t.Fatalf("expected 2500 records uploaded, got %d", summary.RecordsUploaded)
	}

	// Input order is preserved across batch boundaries.
	if repo.batches[1][0].StoreID != 1000 || repo.batches[2][0].StoreID != 2000 {
		t.Fatalf("batches do not preserve input order")
	}
}

func TestUploadContinuesPastFailedBatch(t *testing.T) {
	repo := &stubEntryRepo{failAt: map[int]error{1: errors.New("connection reset")}}
	uploader := New(repo, WithBatchSize(10))

	summary, err := uploader.Upload(context.Background(), uuid.New(), makeRecords(30))
	if err != nil {
		t.Fatalf("upload returned error: %v", err)
	}

	if summary.BatchesAttempted != 3 {
		t.Fatalf("a failed batch must not abort later batches, attempted %d", summary.BatchesAttempted)
	}
	if summary.RecordsUploaded != 20 {
		t.Fatalf("expected 20 committed records, got %d", summary.RecordsUploaded)
	}
	if len(summary.FailedOffsets) != 1 || summary.FailedOffsets[0] != 10 {
		t.Fatalf("expected failure reported at offset 10, got %v", summary.FailedOffsets)
	}
}

func TestUploadEmptyInput(t *testing.T) {
	repo := &stubEntryRepo{}
	summary, err := New(repo).Upload(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("upload returned error: %v", err)
	}
	if summary.BatchesAttempted != 0 || len(repo.batches) != 0 {
		t.Fatalf("no batches expected for empty input")
	}
}

func TestUploadStopsOnCancelledContext(t *testing.T) {
	repo := &stubEntryRepo{}
	uploader := New(repo, WithBatchSize(5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uploader.Upload(ctx, uuid.New(), makeRecords(10))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(repo.batches) != 0 {
		t.Fatalf("no batches should run after cancellation")
	}
}
