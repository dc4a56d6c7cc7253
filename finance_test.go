package lifeadmin

import "testing"

func TestSummarize(t *testing.T) {
	entries := []FinanceEntry{
		{ID: "1", Type: Income, Amount: 100},
		{ID: "2", Type: Expense, Amount: 40},
		{ID: "3", Type: Expense, Amount: 10},
	}
	sum := Summarize(entries, "USD")
	if !sum.Income.Equal(M(100, "USD")) {
		t.Errorf("income = %s, want $100.00", sum.Income)
	}
	if !sum.Expenses.Equal(M(50, "USD")) {
		t.Errorf("expenses = %s, want $50.00", sum.Expenses)
	}
	if !sum.Balance.Equal(M(50, "USD")) {
		t.Errorf("balance = %s, want $50.00", sum.Balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, "USD")
	if !sum.Balance.IsZero() {
		t.Errorf("balance of no entries = %s, want zero", sum.Balance)
	}
}

func TestSummarizeNegativeBalance(t *testing.T) {
	entries := []FinanceEntry{
		{ID: "1", Type: Income, Amount: 20},
		{ID: "2", Type: Expense, Amount: 75.5},
	}
	sum := Summarize(entries, "USD")
	if !sum.Balance.Equal(M(-55.5, "USD")) {
		t.Errorf("balance = %s, want -$55.50", sum.Balance)
	}
	if !sum.Balance.IsNegative() {
		t.Error("balance should be negative")
	}
}
