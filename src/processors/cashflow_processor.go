package processors

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/models"
)

type cashflowProcessorImpl struct{}

func NewCashflowProcessor() CashflowProcessor {
	return &cashflowProcessorImpl{}
}

// MonthlyEquivalent converts a recurring amount to its per-month value.
// Non-recurring entries have no monthly equivalent.
func MonthlyEquivalent(entry models.CashflowEntry) decimal.Decimal {
	if !entry.IsRecurring {
		return decimal.Zero
	}
	switch entry.RecurrenceFrequency {
	case models.Daily:
		return entry.Amount.Mul(decimal.NewFromInt(30))
	case models.Weekly:
		return entry.Amount.Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12))
	case models.Monthly:
		return entry.Amount
	case models.Quarterly:
		return entry.Amount.Div(decimal.NewFromInt(3))
	case models.Yearly:
		return entry.Amount.Div(decimal.NewFromInt(12))
	default:
		return decimal.Zero
	}
}

func (p *cashflowProcessorImpl) Summarize(entries []models.CashflowEntry) models.CashflowSummary {
	summary := models.CashflowSummary{
		EntryCount:   len(entries),
		ByCategory:   []models.CategoryTotal{},
		MonthlyTrend: []models.MonthlyTrend{},
	}

	type categoryKey struct {
		t        models.CashflowType
		category string
	}
	categories := make(map[categoryKey]*models.CategoryTotal)
	months := make(map[string]*models.MonthlyTrend)
	income, expenses := decimal.Zero, decimal.Zero
	recurringIncome, recurringExpense := decimal.Zero, decimal.Zero

	for _, e := range entries {
		key := categoryKey{t: e.Type, category: e.Category}
		ct, ok := categories[key]
		if !ok {
			ct = &models.CategoryTotal{Type: e.Type, Category: e.Category}
			categories[key] = ct
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++

		month := e.Date
		if len(month) >= 7 {
			month = month[:7]
		}
		mt, ok := months[month]
		if !ok {
			mt = &models.MonthlyTrend{Month: month}
			months[month] = mt
		}

		switch e.Type {
		case models.Income:
			income = income.Add(e.Amount)
			mt.Income = mt.Income.Add(e.Amount)
			recurringIncome = recurringIncome.Add(MonthlyEquivalent(e))
		case models.Expense:
			expenses = expenses.Add(e.Amount)
			mt.Expenses = mt.Expenses.Add(e.Amount)
			recurringExpense = recurringExpense.Add(MonthlyEquivalent(e))
		}
	}

	summary.TotalIncome = income
	summary.TotalExpenses = expenses
	summary.NetCashflow = income.Sub(expenses)
	summary.SavingsRate = Percent(summary.NetCashflow, income)
	summary.RecurringMonthlyIncome = recurringIncome.Round(2)
	summary.RecurringMonthlyExpense = recurringExpense.Round(2)

	for _, ct := range categories {
		summary.ByCategory = append(summary.ByCategory, *ct)
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if a.Type != b.Type {
			return a.Type == models.Income
		}
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	for _, mt := range months {
		mt.Net = mt.Income.Sub(mt.Expenses)
		summary.MonthlyTrend = append(summary.MonthlyTrend, *mt)
	}
	sort.Slice(summary.MonthlyTrend, func(i, j int) bool {
		return summary.MonthlyTrend[i].Month < summary.MonthlyTrend[j].Month
	})
	return summary
}
