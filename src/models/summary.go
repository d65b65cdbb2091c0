package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valuation is the invested/current/gain triple shared by every roll-up.
type Valuation struct {
	Invested        decimal.Decimal `json:"invested"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	GainLoss        decimal.Decimal `json:"gain_loss"`
	GainLossPercent decimal.Decimal `json:"gain_loss_percent"`
}

type SectorBreakdown struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
	Valuation
	PercentOfStocks decimal.Decimal `json:"percent_of_stocks"`
}

type StockPerformer struct {
	ID              int64           `json:"id"`
	Symbol          string          `json:"symbol"`
	GainLoss        decimal.Decimal `json:"gain_loss"`
	GainLossPercent decimal.Decimal `json:"gain_loss_percent"`
}

type StockSummary struct {
	TotalStocks       int               `json:"total_stocks"`
	TotalInvested     decimal.Decimal   `json:"total_invested"`
	TotalCurrentValue decimal.Decimal   `json:"total_current_value"`
	TotalGainLoss     decimal.Decimal   `json:"total_gain_loss"`
	GainLossPercent   decimal.Decimal   `json:"gain_loss_percent"`
	Sectors           []SectorBreakdown `json:"sectors"`
	BestPerformer     *StockPerformer   `json:"best_performer"`
	WorstPerformer    *StockPerformer   `json:"worst_performer"`
}

type BondTypeBreakdown struct {
	BondType  BondType        `json:"bond_type"`
	Count     int             `json:"count"`
	FaceValue decimal.Decimal `json:"face_value"`
	Valuation
}

type BondSummary struct {
	TotalBonds        int                 `json:"total_bonds"`
	TotalFaceValue    decimal.Decimal     `json:"total_face_value"`
	TotalInvested     decimal.Decimal     `json:"total_invested"`
	TotalCurrentValue decimal.Decimal     `json:"total_current_value"`
	TotalGainLoss     decimal.Decimal     `json:"total_gain_loss"`
	GainLossPercent   decimal.Decimal     `json:"gain_loss_percent"`
	AverageCouponRate decimal.Decimal     `json:"average_coupon_rate"`
	AnnualIncome      decimal.Decimal     `json:"annual_income"`
	ByType            []BondTypeBreakdown `json:"by_type"`
}

type CategoryTotal struct {
	Type     CashflowType    `json:"type"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type MonthlyTrend struct {
	Month    string          `json:"month"` // YYYY-MM
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

type CashflowSummary struct {
	TotalIncome             decimal.Decimal `json:"total_income"`
	TotalExpenses           decimal.Decimal `json:"total_expenses"`
	NetCashflow             decimal.Decimal `json:"net_cashflow"`
	SavingsRate             decimal.Decimal `json:"savings_rate"`
	EntryCount              int             `json:"entry_count"`
	ByCategory              []CategoryTotal `json:"by_category"`
	MonthlyTrend            []MonthlyTrend  `json:"monthly_trend"`
	RecurringMonthlyIncome  decimal.Decimal `json:"recurring_monthly_income"`
	RecurringMonthlyExpense decimal.Decimal `json:"recurring_monthly_expense"`
}

type CashflowCategories struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

type PortfolioOverview struct {
	StocksValue     decimal.Decimal `json:"stocks_value"`
	StocksInvested  decimal.Decimal `json:"stocks_invested"`
	BondsValue      decimal.Decimal `json:"bonds_value"`
	BondsInvested   decimal.Decimal `json:"bonds_invested"`
	CashValue       decimal.Decimal `json:"cash_value"`
	NetCashflow     decimal.Decimal `json:"net_cashflow"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalInvested   decimal.Decimal `json:"total_invested"`
	TotalGainLoss   decimal.Decimal `json:"total_gain_loss"`
	GainLossPercent decimal.Decimal `json:"gain_loss_percent"`
	StockCount      int             `json:"stock_count"`
	BondCount       int             `json:"bond_count"`
	CashflowCount   int             `json:"cashflow_count"`
}

type AllocationSlice struct {
	Label   string          `json:"label"`
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

type Allocation struct {
	TotalValue decimal.Decimal   `json:"total_value"`
	AssetClass []AllocationSlice `json:"asset_class"`
	BySector   []AllocationSlice `json:"by_sector"`
	ByBondType []AllocationSlice `json:"by_bond_type"`
}

type Performance struct {
	Stocks     Valuation        `json:"stocks"`
	Bonds      Valuation        `json:"bonds"`
	Overall    Valuation        `json:"overall"`
	TopGainers []StockPerformer `json:"top_gainers"`
	TopLosers  []StockPerformer `json:"top_losers"`
}

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

type AlertType string

const (
	AlertPriceGain        AlertType = "price_gain"
	AlertPriceDrop        AlertType = "price_drop"
	AlertBondMaturing     AlertType = "bond_maturing"
	AlertBondMatured      AlertType = "bond_matured"
	AlertNegativeCashflow AlertType = "negative_cashflow"
)

type Alert struct {
	Type     AlertType       `json:"type"`
	Severity AlertSeverity   `json:"severity"`
	Message  string          `json:"message"`
	AssetID  int64           `json:"asset_id,omitempty"`
	Symbol   string          `json:"symbol,omitempty"`
	Value    decimal.Decimal `json:"value"`
}

type PortfolioSnapshot struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	TotalValue    decimal.Decimal `json:"total_value"`
	StocksValue   decimal.Decimal `json:"stocks_value"`
	BondsValue    decimal.Decimal `json:"bonds_value"`
	CashValue     decimal.Decimal `json:"cash_value"`
	TotalGainLoss decimal.Decimal `json:"total_gain_loss"`
	TakenAt       time.Time       `json:"taken_at"`
}
