package pivot

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/atlasops/wsrflow/internal/domain"
)

func sampleRows(n int) []domain.PivotRow {
	rows := make([]domain.PivotRow, n)
	for i := range rows {
		rows[i] = domain.PivotRow{
			Account:     "40000 Sales:In Shop",
			Amount:      float64(100 + i),
			JournalDate: "2024-03-10",
			Description: "2024-03-10 WSR Entry",
			Class:       "2811 - Edinger",
		}
	}
	return rows
}

func TestWorkbookWriterCreatesTabLeftmost(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	writer, err := NewWorkbookWriter(f)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	if err := writer.WriteTab("Atlas West 2024-03-10", sampleRows(2)); err != nil {
		t.Fatalf("write tab: %v", err)
	}

	sheets := f.GetSheetList()
	if sheets[0] != "Atlas West 2024-03-10" {
		t.Fatalf("new tab must sit leftmost, order: %v", sheets)
	}

	rows, err := f.GetRows("Atlas West 2024-03-10")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Account" || rows[0][5] != "Class" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	if rows[1][0] != "40000 Sales:In Shop" {
		t.Fatalf("unexpected first data row %v", rows[1])
	}
}

func TestWorkbookWriterRewritesExistingTabInPlace(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	writer, err := NewWorkbookWriter(f)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	if err := writer.WriteTab("Atlas West 2024-03-10", sampleRows(5)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := writer.WriteTab("Atlas East 2024-03-10", sampleRows(1)); err != nil {
		t.Fatalf("second tab: %v", err)
	}
	position := indexOf(t, f, "Atlas West 2024-03-10")

	// Rewriting with fewer rows must clear the old contents and keep the
	// tab where it was.
	if err := writer.WriteTab("Atlas West 2024-03-10", sampleRows(2)); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	if got := indexOf(t, f, "Atlas West 2024-03-10"); got != position {
		t.Fatalf("tab moved on rewrite: was %d, now %d", position, got)
	}
	rows, err := f.GetRows("Atlas West 2024-03-10")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("stale rows survived rewrite: got %d rows", len(rows))
	}
}

func indexOf(t *testing.T, f *excelize.File, name string) int {
	t.Helper()
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		t.Fatalf("sheet index: %v", err)
	}
	if idx < 0 {
		t.Fatalf("sheet %q missing", name)
	}
	return idx
}
