// Package pivot writes the accounting-ready export: one tab per (legal
// entity, week ending) group, with labels resolved to external accounts
// and amounts sign-adjusted. The bulk path never sees these adjustments;
// both sinks project the same immutable records independently.
package pivot

import (
	"context"
	"log"
	"sort"

	"github.com/atlasops/wsrflow/internal/domain"
	"github.com/atlasops/wsrflow/internal/mapping"
)

// Header is the fixed first row of every export tab.
var Header = []string{"Account", "Amount", "Journal Date", "Description", "Name", "Class"}

// TabWriter is the boundary to the spreadsheet service. Writing a tab is
// idempotent by name: an existing tab is cleared and rewritten in place, a
// new one is created at the leftmost position.
type TabWriter interface {
	WriteTab(name string, rows []domain.PivotRow) error
}

// Exporter groups records and writes one tab per group.
type Exporter struct {
	resolver *mapping.Resolver
	writer   TabWriter
}

// New creates an exporter over a resolver snapshot and a tab writer.
func New(resolver *mapping.Resolver, writer TabWriter) *Exporter {
	return &Exporter{resolver: resolver, writer: writer}
}

// Summary reports what one export wrote and skipped.
type Summary struct {
	TabsWritten     int
	RowsWritten     int
	SkippedUnmapped int
	FailedTabs      []string
}

// Export partitions records by (legal entity, week ending) and writes each
// group's tab. Records whose label does not resolve are excluded from the
// tab and tallied; a failed tab write is logged with the tab name and does
// not abort the remaining groups.
func (e *Exporter) Export(ctx context.Context, records []domain.NormalizedRecord) (Summary, error) {
	summary := Summary{}
	groups := domain.GroupByEntityWeek(records)
	if len(groups) == 0 {
		return summary, nil
	}

	keys := make([]domain.GroupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].TabName() < keys[j].TabName() })

	log.Printf("[pivot] %d entity/week groups to export", len(keys))

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		rows, skipped := e.projectGroup(groups[key])
		summary.SkippedUnmapped += skipped
		if skipped > 0 {
			log.Printf("[pivot] tab %q: skipped %d unmapped account(s)", key.TabName(), skipped)
		}

		if err := e.writer.WriteTab(key.TabName(), rows); err != nil {
			summary.FailedTabs = append(summary.FailedTabs, key.TabName())
			log.Printf("[pivot] failed to write tab %q: %v", key.TabName(), err)
			continue
		}
		summary.TabsWritten++
		summary.RowsWritten += len(rows)
		log.Printf("[pivot] wrote %d rows to tab %q", len(rows), key.TabName())
	}

	return summary, nil
}

// projectGroup resolves and sign-adjusts one group's records, in record
// order. Unresolved labels are counted, not written.
func (e *Exporter) projectGroup(records []domain.NormalizedRecord) ([]domain.PivotRow, int) {
	rows := make([]domain.PivotRow, 0, len(records))
	skipped := 0
	for _, record := range records {
		entry, ok := e.resolver.Resolve(record.SalesItem)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, domain.PivotRow{
			Account:     entry.ExternalAccount,
			Amount:      domain.AdjustAmount(entry.Sign, record.Amount),
			JournalDate: record.WeekEnding.Format(domain.DateLayout),
			Description: record.Description,
			Name:        "",
			Class:       record.ClassCode,
		})
	}
	return rows, skipped
}
