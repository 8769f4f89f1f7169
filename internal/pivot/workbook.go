package pivot

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/atlasops/wsrflow/internal/domain"
)

// WorkbookWriter writes export tabs into the master workbook.
type WorkbookWriter struct {
	file          *excelize.File
	headerStyleID int
}

// NewWorkbookWriter prepares a writer over an open workbook, building the
// header style once up front.
func NewWorkbookWriter(f *excelize.File) (*WorkbookWriter, error) {
	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"339933"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build header style: %w", err)
	}
	return &WorkbookWriter{file: f, headerStyleID: styleID}, nil
}

// WriteTab rewrites the named tab with the header row and the given data
// rows. An existing tab keeps its position and is cleared first; a new tab
// is created at the leftmost position.
func (w *WorkbookWriter) WriteTab(name string, rows []domain.PivotRow) error {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %q: %w", name, err)
	}
	if idx >= 0 {
		if err := w.clearSheet(name); err != nil {
			return err
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		if first := w.file.GetSheetList()[0]; first != name {
			if err := w.file.MoveSheet(name, first); err != nil {
				return fmt.Errorf("failed to move sheet %q to front: %w", name, err)
			}
		}
	}

	header := make([]any, len(Header))
	for i, cell := range Header {
		header[i] = cell
	}
	if err := w.file.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	if err := w.file.SetCellStyle(name, "A1", "F1", w.headerStyleID); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{row.Account, row.Amount, row.JournalDate, row.Description, row.Name, row.Class}
		if err := w.file.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return nil
}

// clearSheet strips the sheet's rows without deleting the sheet, so its
// position in the workbook survives the rewrite.
func (w *WorkbookWriter) clearSheet(name string) error {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q for clearing: %w", name, err)
	}
	for range rows {
		if err := w.file.RemoveRow(name, 1); err != nil {
			return fmt.Errorf("failed to clear sheet %q: %w", name, err)
		}
	}
	return nil
}
