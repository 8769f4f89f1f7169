package directory

import (
	"testing"

	"github.com/atlasops/wsrflow/internal/domain"
)

func TestLookupKnownStore(t *testing.T) {
	dir := Default()

	entry, ok := dir.Lookup(2811)
	if !ok {
		t.Fatalf("expected store 2811 to be mapped")
	}
	if entry.LegalEntity != "Atlas West" {
		t.Fatalf("unexpected legal entity %q", entry.LegalEntity)
	}
	if entry.ClassCode != "2811 - Edinger" {
		t.Fatalf("unexpected class code %q", entry.ClassCode)
	}
	if entry.StoreName != "Edinger" {
		t.Fatalf("unexpected store name %q", entry.StoreName)
	}
}

func TestResolveUnknownStoreFallsBack(t *testing.T) {
	dir := New(map[int]domain.StoreDirectoryEntry{
		100: {LegalEntity: "Atlas East", ClassCode: "0100 - Test", StoreName: "Test"},
	})

	if _, ok := dir.Lookup(9999); ok {
		t.Fatalf("store 9999 should be absent")
	}

	if entry, mapped := dir.Resolve(100); !mapped || entry.StoreName != "Test" {
		t.Fatalf("expected store 100 to resolve as mapped, got %+v mapped=%v", entry, mapped)
	}

	entry, mapped := dir.Resolve(9999)
	if mapped {
		t.Fatalf("store 9999 should resolve as unmapped")
	}
	if entry.LegalEntity != "Unknown" {
		t.Fatalf("expected Unknown legal entity, got %q", entry.LegalEntity)
	}
	if entry.ClassCode != "9999 - Unknown" {
		t.Fatalf("unexpected fallback class code %q", entry.ClassCode)
	}
	if entry.StoreName != "Store 9999" {
		t.Fatalf("unexpected fallback store name %q", entry.StoreName)
	}
}

func TestDirectoryCopiesInput(t *testing.T) {
	source := map[int]domain.StoreDirectoryEntry{
		100: {LegalEntity: "Atlas East", ClassCode: "0100 - Test", StoreName: "Test"},
	}
	dir := New(source)

	source[100] = domain.StoreDirectoryEntry{LegalEntity: "Mutated"}

	entry, _ := dir.Lookup(100)
	if entry.LegalEntity != "Atlas East" {
		t.Fatalf("directory must not observe caller mutations, got %q", entry.LegalEntity)
	}
}
