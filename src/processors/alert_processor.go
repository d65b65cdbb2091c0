package processors

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/models"
)

// Fixed alert thresholds.
const (
	PriceMoveMediumPercent = 20
	PriceMoveHighPercent   = 50

	MaturityHighDays   = 7
	MaturityMediumDays = 30
	MaturityLowDays    = 90
)

var severityRank = map[models.AlertSeverity]int{
	models.SeverityHigh:   0,
	models.SeverityMedium: 1,
	models.SeverityLow:    2,
}

type alertProcessorImpl struct {
	stocks StockProcessor
}

func NewAlertProcessor(stocks StockProcessor) AlertProcessor {
	return &alertProcessorImpl{stocks: stocks}
}

func (p *alertProcessorImpl) Generate(stocks []models.Stock, bonds []models.Bond, entries []models.CashflowEntry, today time.Time) []models.Alert {
	alerts := []models.Alert{}

	for _, s := range stocks {
		if a, ok := p.priceMovement(s); ok {
			alerts = append(alerts, a)
		}
	}
	for _, b := range bonds {
		if a, ok := p.maturity(b, today); ok {
			alerts = append(alerts, a)
		}
	}
	if a, ok := monthCashflow(entries, today); ok {
		alerts = append(alerts, a)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if severityRank[a.Severity] != severityRank[b.Severity] {
			return severityRank[a.Severity] < severityRank[b.Severity]
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.AssetID < b.AssetID
	})
	return alerts
}

func (p *alertProcessorImpl) priceMovement(stock models.Stock) (models.Alert, bool) {
	pos := p.stocks.Value(stock)
	move := exactReturn(pos.GainLoss, pos.InvestedValue).Abs()

	var severity models.AlertSeverity
	switch {
	case move.GreaterThanOrEqual(decimal.NewFromInt(PriceMoveHighPercent)):
		severity = models.SeverityHigh
	case move.GreaterThanOrEqual(decimal.NewFromInt(PriceMoveMediumPercent)):
		severity = models.SeverityMedium
	default:
		return models.Alert{}, false
	}

	alertType, direction := models.AlertPriceGain, "up"
	if pos.GainLossPercent.IsNegative() {
		alertType, direction = models.AlertPriceDrop, "down"
	}
	return models.Alert{
		Type:     alertType,
		Severity: severity,
		Message:  fmt.Sprintf("%s is %s %s%% from its purchase price", stock.Symbol, direction, pos.GainLossPercent.Abs().StringFixed(2)),
		AssetID:  stock.ID,
		Symbol:   stock.Symbol,
		Value:    pos.GainLossPercent,
	}, true
}

func (p *alertProcessorImpl) maturity(bond models.Bond, today time.Time) (models.Alert, bool) {
	days, err := DaysUntil(bond.MaturityDate, today)
	if err != nil {
		return models.Alert{}, false
	}

	alert := models.Alert{
		Type:    models.AlertBondMaturing,
		AssetID: bond.ID,
		Value:   decimal.NewFromInt(int64(days)),
	}
	switch {
	case days < 0:
		alert.Type = models.AlertBondMatured
		alert.Severity = models.SeverityHigh
		alert.Message = fmt.Sprintf("%s %s bond matured on %s", bond.Issuer, bond.BondType, bond.MaturityDate)
		return alert, true
	case days <= MaturityHighDays:
		alert.Severity = models.SeverityHigh
	case days <= MaturityMediumDays:
		alert.Severity = models.SeverityMedium
	case days <= MaturityLowDays:
		alert.Severity = models.SeverityLow
	default:
		return models.Alert{}, false
	}
	alert.Message = fmt.Sprintf("%s %s bond matures in %d days (%s)", bond.Issuer, bond.BondType, days, bond.MaturityDate)
	return alert, true
}

// monthCashflow flags a calendar month, today's, in which expenses exceed income.
func monthCashflow(entries []models.CashflowEntry, today time.Time) (models.Alert, bool) {
	month := today.Format("2006-01")
	income, expenses := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if len(e.Date) < 7 || e.Date[:7] != month {
			continue
		}
		if e.Type == models.Income {
			income = income.Add(e.Amount)
		} else {
			expenses = expenses.Add(e.Amount)
		}
	}
	if !expenses.GreaterThan(income) {
		return models.Alert{}, false
	}
	deficit := expenses.Sub(income)
	return models.Alert{
		Type:     models.AlertNegativeCashflow,
		Severity: models.SeverityMedium,
		Message:  fmt.Sprintf("Expenses exceed income this month by %s", deficit.StringFixed(2)),
		Value:    deficit,
	}, true
}
