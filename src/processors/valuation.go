package processors

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/models"
	"github.com/username/fintrack/src/utils"
)

var hundred = decimal.NewFromInt(100)

// PercentReturn is gain ÷ invested × 100 rounded to 2 places, and 0 when nothing was invested.
func PercentReturn(gainLoss, invested decimal.Decimal) decimal.Decimal {
	return exactReturn(gainLoss, invested).Round(2)
}

// exactReturn is PercentReturn without rounding. Thresholds are checked against it.
func exactReturn(gainLoss, invested decimal.Decimal) decimal.Decimal {
	if invested.IsZero() {
		return decimal.Zero
	}
	return gainLoss.Div(invested).Mul(hundred)
}

// Percent is part's share of total in percent, 0 when total is 0.
func Percent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(2)
}

// NewValuation derives gain/loss and return from an invested and a current amount.
func NewValuation(invested, current decimal.Decimal) models.Valuation {
	gain := current.Sub(invested)
	return models.Valuation{
		Invested:        invested,
		CurrentValue:    current,
		GainLoss:        gain,
		GainLossPercent: PercentReturn(gain, invested),
	}
}

// DaysUntil counts calendar days from today's date to date (YYYY-MM-DD). Past dates are negative.
func DaysUntil(date string, today time.Time) (int, error) {
	target, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(target.Sub(start).Hours() / 24), nil
}
