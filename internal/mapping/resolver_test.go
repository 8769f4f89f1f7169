package mapping

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/atlasops/wsrflow/internal/domain"
)

func TestBuildReadsFlagFromColumnD(t *testing.T) {
	rows := [][]string{
		{"WSR Name", "QBO Name", "Name", "Debit/Credit"},
		{"- Food Cost", "50100 COGS:Food", "", "Debit"},
		{"In Shop", "40000 Sales:In Shop", "Counter", "Credit"},
	}

	resolver := Build(rows)
	if resolver.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", resolver.Len())
	}

	entry, ok := resolver.Resolve("- Food Cost")
	if !ok {
		t.Fatalf("expected exact match for %q", "- Food Cost")
	}
	if entry.ExternalAccount != "50100 COGS:Food" || entry.Sign != domain.SignDebit {
		t.Fatalf("unexpected entry %+v", entry)
	}

	entry, ok = resolver.Resolve("In Shop")
	if !ok || entry.Sign != domain.SignCredit {
		t.Fatalf("expected credit entry, got %+v ok=%v", entry, ok)
	}
}

func TestBuildReadsFlagFromColumnCWhenNameEmpty(t *testing.T) {
	// With the Name column unpopulated, the flag slides left into column C.
	rows := [][]string{
		{"WSR Name", "QBO Name", "Debit/Credit"},
		{"Delivery", "40100 Sales:Delivery", "credit"},
		{"Paper Cost", "50200 COGS:Paper", "Debit"},
		{"Promo", "40200 Sales:Promo", "Bob Smith"},
	}

	resolver := Build(rows)

	entry, _ := resolver.Resolve("Delivery")
	if entry.Sign != domain.SignCredit {
		t.Fatalf("expected credit from column C, got %s", entry.Sign)
	}
	entry, _ = resolver.Resolve("Paper Cost")
	if entry.Sign != domain.SignDebit {
		t.Fatalf("expected debit from column C, got %s", entry.Sign)
	}
	// A Name value in column C must not be misread as a flag.
	entry, _ = resolver.Resolve("Promo")
	if entry.Sign != domain.SignDebit {
		t.Fatalf("expected default Debit when column C holds a name, got %s", entry.Sign)
	}
}

func TestBuildSkipsIncompleteRows(t *testing.T) {
	rows := [][]string{
		{"WSR Name", "QBO Name"},
		{"", "50100 COGS:Food"},
		{"Orphan Label", ""},
		{"Short"},
		{"Kept", "40000 Sales"},
	}

	resolver := Build(rows)
	if resolver.Len() != 1 {
		t.Fatalf("expected only the complete row to load, got %d entries", resolver.Len())
	}
	if _, ok := resolver.Resolve("Kept"); !ok {
		t.Fatalf("expected Kept to resolve")
	}
}

func TestResolveStripsSingleMarkerPrefix(t *testing.T) {
	resolver := NewResolver(map[string]domain.AccountMapping{
		"Food Cost": {ExternalAccount: "50100 COGS:Food", Sign: domain.SignDebit},
	})

	entry, ok := resolver.Resolve("- Food Cost")
	if !ok {
		t.Fatalf("expected prefix-stripped lookup to resolve")
	}
	if entry.ExternalAccount != "50100 COGS:Food" {
		t.Fatalf("unexpected account %q", entry.ExternalAccount)
	}

	for _, label := range []string{"+ Food Cost", "= Food Cost"} {
		if _, ok := resolver.Resolve(label); !ok {
			t.Fatalf("expected %q to resolve after stripping", label)
		}
	}
}

func TestResolveStripsOnlyOnce(t *testing.T) {
	resolver := NewResolver(map[string]domain.AccountMapping{
		"Adjusted Sales": {ExternalAccount: "40000 Sales", Sign: domain.SignCredit},
	})

	// Two stacked prefixes would need two strips; only one is attempted.
	if _, ok := resolver.Resolve("- = Adjusted Sales"); ok {
		t.Fatalf("double-prefixed label must stay unresolved")
	}
	if _, ok := resolver.Resolve("= Adjusted Sales"); !ok {
		t.Fatalf("single-prefixed label should resolve")
	}
}

func TestResolveMissReturnsAbsent(t *testing.T) {
	resolver := Build([][]string{{"WSR Name", "QBO Name"}})
	if _, ok := resolver.Resolve("No Such Label"); ok {
		t.Fatalf("expected miss for unmapped label")
	}
}

func TestLoadFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if _, err := f.NewSheet("Key"); err != nil {
		t.Fatalf("create sheet: %v", err)
	}
	cells := [][]any{
		{"WSR Name", "QBO Name", "Name", "Debit/Credit"},
		{"In Shop", "40000 Sales:In Shop", "", "Credit"},
		{"Food Cost", "50100 COGS:Food", "", "Debit"},
	}
	for r, row := range cells {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Key", cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	resolver, err := LoadFromWorkbook(reopened, "Key")
	if err != nil {
		t.Fatalf("load mapping: %v", err)
	}
	if resolver.Len() != 2 {
		t.Fatalf("expected 2 mappings, got %d", resolver.Len())
	}
}
