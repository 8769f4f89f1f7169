package mapping

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the reference tab holding the account mapping in the
// master workbook.
const DefaultSheetName = "Key"

// LoadFromWorkbook reads the reference sheet out of the master workbook and
// builds the resolver from it.
func LoadFromWorkbook(f *excelize.File, sheetName string) (*Resolver, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping sheet %q: %w", sheetName, err)
	}
	resolver := Build(rows)
	log.Printf("[mapping] loaded %d account mappings from sheet %q", resolver.Len(), sheetName)
	return resolver, nil
}
