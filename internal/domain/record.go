package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 layout used for week ending dates everywhere
// a date crosses a boundary (sink schema, tab names, descriptions).
const DateLayout = "2006-01-02"

// SignConvention dictates whether an account's natural balance is recorded
// negative (Debit) or positive (Credit) in the pivot export.
type SignConvention string

const (
	SignDebit  SignConvention = "Debit"
	SignCredit SignConvention = "Credit"
)

// ParseSignConvention interprets a reference-table flag cell. An empty
// cell defaults to Debit; any other unrecognized flag is kept verbatim, so
// the pivot projection applies no adjustment for it.
func ParseSignConvention(raw string) SignConvention {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return SignDebit
	case strings.EqualFold(trimmed, string(SignDebit)):
		return SignDebit
	case strings.EqualFold(trimmed, string(SignCredit)):
		return SignCredit
	default:
		return SignConvention(trimmed)
	}
}

// StoreDirectoryEntry holds the organizational metadata for one store.
type StoreDirectoryEntry struct {
	LegalEntity string
	ClassCode   string
	StoreName   string
}

// AccountMapping resolves a report-native line item label to an external
// accounting-system account plus its sign convention.
type AccountMapping struct {
	ExternalAccount string
	Sign            SignConvention
}

// RawLineItem is one (label, amount) pair as read from a report, scoped to
// a single file's parse.
type RawLineItem struct {
	Label  string
	Amount float64
}

// ReportHeader carries the mandatory per-file metadata. A report missing
// either field is rejected wholesale.
type ReportHeader struct {
	WeekEnding time.Time
	StoreID    int
}

// NormalizedRecord is the durable unit of the pipeline: one report line
// item joined with store directory metadata. Amount keeps the as-read
// value and sign; sink-specific adjustments are projections, never
// mutations of this record.
type NormalizedRecord struct {
	StoreID     int
	StoreName   string
	LegalEntity string
	ClassCode   string
	WeekEnding  time.Time
	SalesItem   string
	Amount      float64
	Description string
	CreatedAt   time.Time
}

// NewNormalizedRecord joins one raw line item with directory metadata and
// stamps the ingestion timestamp.
func NewNormalizedRecord(header ReportHeader, entry StoreDirectoryEntry, item RawLineItem, now time.Time) NormalizedRecord {
	week := header.WeekEnding.Format(DateLayout)
	return NormalizedRecord{
		StoreID:     header.StoreID,
		StoreName:   entry.StoreName,
		LegalEntity: entry.LegalEntity,
		ClassCode:   entry.ClassCode,
		WeekEnding:  header.WeekEnding,
		SalesItem:   item.Label,
		Amount:      item.Amount,
		Description: fmt.Sprintf("%s WSR Entry", week),
		CreatedAt:   now,
	}
}
