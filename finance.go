package lifeadmin

import (
	"fmt"
	"slices"

	"github.com/etnz/lifeadmin/date"
)

// EntryType discriminates finance entries.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// ParseEntryType parses an entry type label.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case Income, Expense:
		return EntryType(s), nil
	}
	return "", fmt.Errorf("unknown entry type %q, want income or expense", s)
}

// DefaultCurrency is the display currency for finance aggregates.
const DefaultCurrency = "USD"

// FinanceEntry is a single income or expense line. Amounts are expected
// non-negative; the store does not enforce it. The collection keeps the most
// recent first.
type FinanceEntry struct {
	ID          string    `json:"id"`
	Type        EntryType `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        date.Date `json:"date"`
}

func (e FinanceEntry) recordID() string { return e.ID }

// FinanceEntryPatch is a partial update of a FinanceEntry.
type FinanceEntryPatch struct {
	Type        *EntryType
	Category    *string
	Amount      *float64
	Description *string
	Date        *date.Date
}

func (e FinanceEntry) apply(patch FinanceEntryPatch) FinanceEntry {
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	return e
}

// FinanceSummary aggregates a finance collection.
type FinanceSummary struct {
	Income   Money
	Expenses Money
	Balance  Money
}

// Summarize reduces entries into income, expense and balance totals in the
// given currency. The reductions are exact; rounding happens at display time.
func Summarize(entries []FinanceEntry, currency string) FinanceSummary {
	income := M(0, currency)
	expenses := M(0, currency)
	for _, e := range entries {
		switch e.Type {
		case Income:
			income = income.Add(M(e.Amount, currency))
		case Expense:
			expenses = expenses.Add(M(e.Amount, currency))
		}
	}
	return FinanceSummary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// FinanceEntries returns a copy of the finance collection, most recent first.
func (s *Store) FinanceEntries() []FinanceEntry { return slices.Clone(s.finance) }

// SetFinanceEntries replaces the whole finance collection.
func (s *Store) SetFinanceEntries(es []FinanceEntry) {
	s.finance = slices.Clone(es)
	s.persist(KeyFinance, s.finance)
}

// AddFinanceEntry prepends a new entry of the given type, dated today, and
// returns it.
func (s *Store) AddFinanceEntry(typ EntryType) FinanceEntry {
	e := FinanceEntry{ID: s.NextID(), Type: typ, Date: date.Today()}
	s.SetFinanceEntries(append([]FinanceEntry{e}, s.finance...))
	return e
}

// UpdateFinanceEntry merges patch into the entry with the given id.
func (s *Store) UpdateFinanceEntry(id string, patch FinanceEntryPatch) bool {
	es, ok := replaceByID(s.finance, id, func(e FinanceEntry) FinanceEntry { return e.apply(patch) })
	if ok {
		s.SetFinanceEntries(es)
	}
	return ok
}

// DeleteFinanceEntry removes the entry with the given id.
func (s *Store) DeleteFinanceEntry(id string) bool {
	es, ok := removeByID(s.finance, id)
	if ok {
		s.SetFinanceEntries(es)
	}
	return ok
}
