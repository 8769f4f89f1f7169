package domain

import "fmt"

// GroupKey identifies one pivot tab: a legal entity and an ISO week
// ending date.
type GroupKey struct {
	LegalEntity string
	WeekEnding  string
}

// TabName derives the export tab title for the group.
func (k GroupKey) TabName() string {
	return fmt.Sprintf("%s %s", k.LegalEntity, k.WeekEnding)
}

// PivotRow is the per-record projection written to an export tab.
type PivotRow struct {
	Account     string
	Amount      float64
	JournalDate string
	Description string
	Name        string
	Class       string
}

// GroupByEntityWeek partitions records by (legal entity, week ending).
// Every input record lands in exactly one group; record order within a
// group follows input order.
func GroupByEntityWeek(records []NormalizedRecord) map[GroupKey][]NormalizedRecord {
	groups := make(map[GroupKey][]NormalizedRecord)
	for _, record := range records {
		key := GroupKey{
			LegalEntity: record.LegalEntity,
			WeekEnding:  record.WeekEnding.Format(DateLayout),
		}
		groups[key] = append(groups[key], record)
	}
	return groups
}

// AdjustAmount applies the accounting sign convention for the pivot view:
// debits are recorded negative, credits positive. Amounts already on the
// correct side pass through unchanged, which makes the adjustment
// idempotent.
func AdjustAmount(sign SignConvention, amount float64) float64 {
	switch {
	case sign == SignDebit && amount > 0:
		return -amount
	case sign == SignCredit && amount < 0:
		return -amount
	default:
		return amount
	}
}
