// Package normalize joins extractor output with the store directory to
// produce the sink-agnostic records the rest of the pipeline consumes.
package normalize

import (
	"log"
	"time"

	"github.com/atlasops/wsrflow/internal/directory"
	"github.com/atlasops/wsrflow/internal/domain"
)

// Normalizer turns raw line items into normalized records. It holds no
// mutable state; the directory snapshot it closes over is read-only.
type Normalizer struct {
	directory *directory.Directory
	now       func() time.Time
}

// New builds a normalizer over a directory snapshot.
func New(dir *directory.Directory) *Normalizer {
	return &Normalizer{directory: dir, now: time.Now}
}

// WithClock overrides the ingestion timestamp source. Tests use this to
// pin createdAt.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Normalize produces exactly one record per raw line item. No filtering
// happens here: every item that survived extraction flows through, with
// fallback metadata substituted for stores the directory does not map.
func (n *Normalizer) Normalize(header domain.ReportHeader, items []domain.RawLineItem) []domain.NormalizedRecord {
	entry, mapped := n.directory.Resolve(header.StoreID)
	if !mapped {
		log.Printf("[normalize] store %d not in directory, using fallback metadata", header.StoreID)
	}

	now := n.now()
	records := make([]domain.NormalizedRecord, 0, len(items))
	for _, item := range items {
		records = append(records, domain.NewNormalizedRecord(header, entry, item, now))
	}
	return records
}
