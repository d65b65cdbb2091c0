package processors

import (
	"time"

	"github.com/username/fintrack/src/models"
)

// StockProcessor values stock positions and rolls them up.
type StockProcessor interface {
	Value(stock models.Stock) models.StockPosition
	Summarize(stocks []models.Stock) models.StockSummary
}

// BondProcessor values bonds relative to a reference day.
type BondProcessor interface {
	Value(bond models.Bond, today time.Time) models.BondPosition
	Summarize(bonds []models.Bond) models.BondSummary
	Maturing(bonds []models.Bond, today time.Time, withinDays int) []models.BondPosition
}

// CashflowProcessor aggregates income and expense entries.
type CashflowProcessor interface {
	Summarize(entries []models.CashflowEntry) models.CashflowSummary
}

// PortfolioProcessor combines the per-class roll-ups into portfolio views.
type PortfolioProcessor interface {
	Overview(stocks models.StockSummary, bonds models.BondSummary, cash models.CashflowSummary) models.PortfolioOverview
	Allocation(stocks models.StockSummary, bonds models.BondSummary, cash models.CashflowSummary) models.Allocation
	Performance(stocks []models.Stock, bonds []models.Bond) models.Performance
}

// AlertProcessor applies the fixed alert thresholds.
type AlertProcessor interface {
	Generate(stocks []models.Stock, bonds []models.Bond, entries []models.CashflowEntry, today time.Time) []models.Alert
}
