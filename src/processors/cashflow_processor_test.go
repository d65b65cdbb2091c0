package processors

import (
	"testing"

	"github.com/username/fintrack/src/models"
)

func entry(t models.CashflowType, category, amount, date string) models.CashflowEntry {
	return models.CashflowEntry{Type: t, Category: category, Amount: d(amount), Date: date}
}

func recurring(e models.CashflowEntry, f models.Frequency) models.CashflowEntry {
	e.IsRecurring = true
	e.RecurrenceFrequency = f
	return e
}

func TestCashflowProcessor_Summarize(t *testing.T) {
	p := NewCashflowProcessor()
	summary := p.Summarize([]models.CashflowEntry{
		recurring(entry(models.Income, "Salary", "5000", "2026-09-01"), models.Monthly),
		recurring(entry(models.Income, "Salary", "5000", "2026-10-01"), models.Monthly),
		entry(models.Income, "Freelance", "750", "2026-10-12"),
		recurring(entry(models.Expense, "Rent", "1800", "2026-09-03"), models.Monthly),
		recurring(entry(models.Expense, "Insurance", "1200", "2026-10-05"), models.Yearly),
		entry(models.Expense, "Groceries", "420.35", "2026-10-07"),
	})

	assertDecimal(t, "TotalIncome", summary.TotalIncome, "10750")
	assertDecimal(t, "TotalExpenses", summary.TotalExpenses, "3420.35")
	assertDecimal(t, "NetCashflow", summary.NetCashflow, "7329.65")
	assertDecimal(t, "SavingsRate", summary.SavingsRate, "68.18")
	assertDecimal(t, "RecurringMonthlyIncome", summary.RecurringMonthlyIncome, "10000")
	assertDecimal(t, "RecurringMonthlyExpense", summary.RecurringMonthlyExpense, "1900")

	if summary.EntryCount != 6 {
		t.Errorf("EntryCount = %d, want 6", summary.EntryCount)
	}
	if len(summary.ByCategory) != 5 {
		t.Fatalf("len(ByCategory) = %d, want 5", len(summary.ByCategory))
	}
	first := summary.ByCategory[0]
	if first.Type != models.Income || first.Category != "Salary" || first.Count != 2 {
		t.Errorf("ByCategory[0] = %+v, want income Salary x2", first)
	}
	if last := summary.ByCategory[4]; last.Type != models.Expense || last.Category != "Groceries" {
		t.Errorf("ByCategory[4] = %+v, want expense Groceries", last)
	}

	if len(summary.MonthlyTrend) != 2 {
		t.Fatalf("len(MonthlyTrend) = %d, want 2", len(summary.MonthlyTrend))
	}
	if summary.MonthlyTrend[0].Month != "2026-09" {
		t.Errorf("MonthlyTrend[0].Month = %s, want 2026-09", summary.MonthlyTrend[0].Month)
	}
	assertDecimal(t, "September net", summary.MonthlyTrend[0].Net, "3200")
	assertDecimal(t, "October net", summary.MonthlyTrend[1].Net, "4129.65")
}

func TestCashflowProcessor_SavingsRateWithoutIncome(t *testing.T) {
	summary := NewCashflowProcessor().Summarize([]models.CashflowEntry{
		entry(models.Expense, "Rent", "1000", "2026-10-01"),
	})
	assertDecimal(t, "SavingsRate", summary.SavingsRate, "0")
	assertDecimal(t, "NetCashflow", summary.NetCashflow, "-1000")
}

func TestMonthlyEquivalent(t *testing.T) {
	base := entry(models.Expense, "x", "120", "2026-10-01")
	tests := []struct {
		freq models.Frequency
		want string
	}{
		{models.Daily, "3600"},
		{models.Weekly, "520"},
		{models.Monthly, "120"},
		{models.Quarterly, "40"},
		{models.Yearly, "10"},
	}
	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			assertDecimal(t, "MonthlyEquivalent", MonthlyEquivalent(recurring(base, tt.freq)), tt.want)
		})
	}
	assertDecimal(t, "non-recurring", MonthlyEquivalent(base), "0")
}
