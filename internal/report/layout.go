package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atlasops/wsrflow/internal/domain"
)

var (
	// ErrLayoutNotFound is returned when the line-item header row cannot
	// be located within the scan window.
	ErrLayoutNotFound = errors.New("report layout not found")

	// ErrHeaderIncomplete is returned when the week ending or store number
	// header cell is missing or unparseable. The file is rejected wholesale.
	ErrHeaderIncomplete = errors.New("report header incomplete")

	dateLayouts = []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		"01/02/2006",
		"1/2/2006",
		"01-02-06",
		"1/2/06",
		time.RFC3339,
	}
)

const (
	// headerScanWindow bounds the marker-row scan. The sheet layout is
	// assumed stable within the first 10 rows; failing fast here surfaces
	// unexpected layouts instead of mis-parsing them.
	headerScanWindow = 10

	// dataRowOffset skips the two interstitial timestamp sub-header rows
	// between the column-label row and the first line item.
	dataRowOffset = 3

	weekEndingRow  = 0
	storeNumberRow = 2
	headerCellCol  = 2

	labelCol  = 0
	amountCol = 1
)

// Layout pins down where the fragile fixed-position heuristics landed in a
// concrete sheet.
type Layout struct {
	HeaderRowIndex int
	DataStartIndex int
}

// LocateLayout scans the first rows of the sheet for the column-label row,
// identified by the literal "Sales Item" and "Summary" markers. All of the
// brittle position assumptions live here so layout-variant fixtures can
// exercise them directly.
func LocateLayout(rows [][]string) (Layout, error) {
	limit := headerScanWindow
	if len(rows) < limit {
		limit = len(rows)
	}
	for idx := 0; idx < limit; idx++ {
		var hasItem, hasSummary bool
		for _, cell := range rows[idx] {
			switch strings.TrimSpace(cell) {
			case "Sales Item":
				hasItem = true
			case "Summary":
				hasSummary = true
			}
		}
		if hasItem && hasSummary {
			return Layout{HeaderRowIndex: idx, DataStartIndex: idx + dataRowOffset}, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: no row with %q and %q in first %d rows", ErrLayoutNotFound, "Sales Item", "Summary", headerScanWindow)
}

// parseHeader reads the fixed-position week ending and store number cells.
// Both fields are mandatory; there is no partial header.
func parseHeader(rows [][]string) (domain.ReportHeader, error) {
	weekText := cellAt(rows, weekEndingRow, headerCellCol)
	if weekText == "" {
		return domain.ReportHeader{}, fmt.Errorf("%w: week ending cell is empty", ErrHeaderIncomplete)
	}
	weekEnding, err := parseDate(weekText)
	if err != nil {
		return domain.ReportHeader{}, fmt.Errorf("%w: week ending %q: %v", ErrHeaderIncomplete, weekText, err)
	}

	storeText := cellAt(rows, storeNumberRow, headerCellCol)
	if storeText == "" {
		return domain.ReportHeader{}, fmt.Errorf("%w: store number cell is empty", ErrHeaderIncomplete)
	}
	storeID, err := parseStoreNumber(storeText)
	if err != nil {
		return domain.ReportHeader{}, fmt.Errorf("%w: store number %q: %v", ErrHeaderIncomplete, storeText, err)
	}

	return domain.ReportHeader{WeekEnding: weekEnding, StoreID: storeID}, nil
}

func cellAt(rows [][]string, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// parseStoreNumber accepts both plain integers and float-formatted cells
// like "2811.0".
func parseStoreNumber(raw string) (int, error) {
	if id, err := strconv.Atoi(raw); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	return int(f), nil
}

// parseAmount reads a summary cell as a decimal, defaulting to 0 on any
// parse failure. A bad amount never rejects the row.
func parseAmount(raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}
