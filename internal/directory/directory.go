// Package directory maps store numbers to the organizational metadata the
// pipeline stamps onto every record: owning legal entity, accounting class
// code, and display name.
package directory

import (
	"fmt"

	"github.com/atlasops/wsrflow/internal/domain"
)

// Directory is a read-only store lookup, built once at startup and passed
// by reference into the pipeline.
type Directory struct {
	entries map[int]domain.StoreDirectoryEntry
}

// New builds a directory from the given entries. The map is copied so the
// directory stays immutable after construction.
func New(entries map[int]domain.StoreDirectoryEntry) *Directory {
	copied := make(map[int]domain.StoreDirectoryEntry, len(entries))
	for id, entry := range entries {
		copied[id] = entry
	}
	return &Directory{entries: copied}
}

// Lookup returns the entry for a store number. A missing store is a valid,
// expected state, not an error.
func (d *Directory) Lookup(storeID int) (domain.StoreDirectoryEntry, bool) {
	entry, ok := d.entries[storeID]
	return entry, ok
}

// Resolve returns the entry for a store number, substituting deterministic
// fallback metadata for unmapped stores. The "Unknown" legal entity keeps
// directory gaps visible downstream without halting the pipeline. The
// second return reports whether the store was actually mapped.
func (d *Directory) Resolve(storeID int) (domain.StoreDirectoryEntry, bool) {
	if entry, ok := d.entries[storeID]; ok {
		return entry, true
	}
	return Fallback(storeID), false
}

// Fallback is the metadata substituted for a store number absent from the
// directory.
func Fallback(storeID int) domain.StoreDirectoryEntry {
	return domain.StoreDirectoryEntry{
		LegalEntity: "Unknown",
		ClassCode:   fmt.Sprintf("%d - Unknown", storeID),
		StoreName:   fmt.Sprintf("Store %d", storeID),
	}
}

// Len reports how many stores the directory maps.
func (d *Directory) Len() int {
	return len(d.entries)
}
