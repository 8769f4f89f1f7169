// Package report parses one weekly sales report file into a header and a
// sequence of raw line items. Everything here is scoped to a single file's
// parse; a rejected file yields zero records and the pipeline moves on.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/atlasops/wsrflow/internal/domain"
)

// SheetName is the only sheet the extractor consults.
const SheetName = "Weekly Sales"

// skipLabels are non-account summary rows interleaved with the line items.
// They are layout furniture, not data.
var skipLabels = map[string]struct{}{
	"Total of Above":   {},
	"- OVER-RINGS":     {},
	"= Adjusted Sales": {},
}

// Extract parses the weekly sales sheet of an open workbook. Line items
// preserve source row order; no deduplication or sorting happens here.
func Extract(f *excelize.File) (domain.ReportHeader, []domain.RawLineItem, error) {
	rows, err := f.GetRows(SheetName)
	if err != nil {
		return domain.ReportHeader{}, nil, fmt.Errorf("failed to read sheet %q: %w", SheetName, err)
	}

	header, err := parseHeader(rows)
	if err != nil {
		return domain.ReportHeader{}, nil, err
	}

	layout, err := LocateLayout(rows)
	if err != nil {
		return domain.ReportHeader{}, nil, err
	}

	var items []domain.RawLineItem
	for idx := layout.DataStartIndex; idx < len(rows); idx++ {
		label := strings.TrimSpace(cellAt(rows, idx, labelCol))
		if label == "" {
			continue
		}
		if _, skip := skipLabels[label]; skip {
			continue
		}
		items = append(items, domain.RawLineItem{
			Label:  label,
			Amount: parseAmount(cellAt(rows, idx, amountCol)),
		})
	}

	return header, items, nil
}

// ExtractFile opens a report by path and extracts it.
func ExtractFile(path string) (domain.ReportHeader, []domain.RawLineItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.ReportHeader{}, nil, fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Extract(f)
}
