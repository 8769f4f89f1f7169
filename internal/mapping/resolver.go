// Package mapping resolves report-native line-item labels to external
// accounting-system accounts with a debit/credit sign convention. The
// mapping is loaded once from a reference sheet and is read-only after
// that.
package mapping

import (
	"strings"

	"github.com/atlasops/wsrflow/internal/domain"
)

// markerPrefixes are the literal prefixes the report prepends to some
// labels ("- OVER-RINGS" style rows). Exactly one strip of one prefix is
// attempted on lookup; stripped forms that still miss stay unresolved.
var markerPrefixes = []string{"- ", "+ ", "= "}

// Resolver is a read-only label lookup built from the reference sheet.
type Resolver struct {
	entries map[string]domain.AccountMapping
}

// NewResolver builds a resolver from already-keyed entries. Used directly
// by tests; production code goes through Build.
func NewResolver(entries map[string]domain.AccountMapping) *Resolver {
	copied := make(map[string]domain.AccountMapping, len(entries))
	for label, entry := range entries {
		copied[label] = entry
	}
	return &Resolver{entries: copied}
}

// Build constructs a resolver from raw reference-sheet rows. Row 1 is the
// header and is skipped. Column A is the report label, column B the
// external account. The debit/credit flag sits in column D when the
// optional Name column is populated, otherwise it may slide into column C;
// column C is only trusted when its value literally reads debit or credit.
func Build(rows [][]string) *Resolver {
	entries := make(map[string]domain.AccountMapping)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			continue
		}
		label := strings.TrimSpace(row[0])
		external := strings.TrimSpace(row[1])
		if label == "" || external == "" {
			continue
		}

		sign := domain.SignDebit
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			sign = domain.ParseSignConvention(row[3])
		} else if len(row) > 2 {
			val := strings.TrimSpace(row[2])
			if strings.EqualFold(val, "debit") || strings.EqualFold(val, "credit") {
				sign = domain.ParseSignConvention(val)
			}
		}

		entries[label] = domain.AccountMapping{ExternalAccount: external, Sign: sign}
	}
	return &Resolver{entries: entries}
}

// Resolve looks a label up: exact match first, then one retry with a
// single leading marker prefix stripped. Absence means the record is
// excluded from the pivot export, not that the pipeline failed.
func (r *Resolver) Resolve(label string) (domain.AccountMapping, bool) {
	if entry, ok := r.entries[label]; ok {
		return entry, true
	}
	for _, prefix := range markerPrefixes {
		if stripped, found := strings.CutPrefix(label, prefix); found {
			entry, ok := r.entries[stripped]
			return entry, ok
		}
	}
	return domain.AccountMapping{}, false
}

// Len reports how many labels the resolver maps.
func (r *Resolver) Len() int {
	return len(r.entries)
}
