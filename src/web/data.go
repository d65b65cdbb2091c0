package web

import (
	"time"

	"github.com/username/fintrack/src/models"
)

// DashboardData is everything the dashboard page renders.
type DashboardData struct {
	Currency    string
	Theme       string
	GeneratedAt time.Time
	Overview    models.PortfolioOverview
	Allocation  models.Allocation
	Performance models.Performance
	Alerts      []models.Alert
	Stocks      []models.StockPosition
	Bonds       []models.BondPosition
	Cashflow    []models.CashflowEntry
	Snapshots   []models.PortfolioSnapshot
}
