package processors

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/models"
)

type bondProcessorImpl struct{}

func NewBondProcessor() BondProcessor {
	return &bondProcessorImpl{}
}

// AnnualIncome is the yearly coupon payment: face value × coupon rate / 100.
func AnnualIncome(bond models.Bond) decimal.Decimal {
	return bond.FaceValue.Mul(bond.CouponRate).Div(hundred)
}

func (p *bondProcessorImpl) Value(bond models.Bond, today time.Time) models.BondPosition {
	days, err := DaysUntil(bond.MaturityDate, today)
	if err != nil {
		logger.L.Warn("Bond has an unparseable maturity date", "bondID", bond.ID, "maturityDate", bond.MaturityDate, "error", err)
	}
	v := NewValuation(bond.PurchasePrice, bond.CurrentPrice)
	return models.BondPosition{
		Bond:            bond,
		AnnualIncome:    AnnualIncome(bond),
		DaysToMaturity:  days,
		GainLoss:        v.GainLoss,
		GainLossPercent: v.GainLossPercent,
	}
}

func (p *bondProcessorImpl) Summarize(bonds []models.Bond) models.BondSummary {
	summary := models.BondSummary{
		TotalBonds: len(bonds),
		ByType:     []models.BondTypeBreakdown{},
	}

	type typeAcc struct {
		count                   int
		face, invested, current decimal.Decimal
	}
	byType := make(map[models.BondType]*typeAcc)
	face, invested, current := decimal.Zero, decimal.Zero, decimal.Zero
	couponSum, income := decimal.Zero, decimal.Zero

	for _, b := range bonds {
		face = face.Add(b.FaceValue)
		invested = invested.Add(b.PurchasePrice)
		current = current.Add(b.CurrentPrice)
		couponSum = couponSum.Add(b.CouponRate)
		income = income.Add(AnnualIncome(b))

		acc, ok := byType[b.BondType]
		if !ok {
			acc = &typeAcc{}
			byType[b.BondType] = acc
		}
		acc.count++
		acc.face = acc.face.Add(b.FaceValue)
		acc.invested = acc.invested.Add(b.PurchasePrice)
		acc.current = acc.current.Add(b.CurrentPrice)
	}

	total := NewValuation(invested, current)
	summary.TotalFaceValue = face
	summary.TotalInvested = total.Invested
	summary.TotalCurrentValue = total.CurrentValue
	summary.TotalGainLoss = total.GainLoss
	summary.GainLossPercent = total.GainLossPercent
	summary.AnnualIncome = income.Round(2)
	if len(bonds) > 0 {
		summary.AverageCouponRate = couponSum.Div(decimal.NewFromInt(int64(len(bonds)))).Round(4)
	}

	for _, t := range models.BondTypes {
		acc, ok := byType[t]
		if !ok {
			continue
		}
		summary.ByType = append(summary.ByType, models.BondTypeBreakdown{
			BondType:  t,
			Count:     acc.count,
			FaceValue: acc.face,
			Valuation: NewValuation(acc.invested, acc.current),
		})
	}
	return summary
}

// Maturing returns bonds maturing between today and withinDays from now, soonest first.
func (p *bondProcessorImpl) Maturing(bonds []models.Bond, today time.Time, withinDays int) []models.BondPosition {
	out := []models.BondPosition{}
	for _, b := range bonds {
		if _, err := DaysUntil(b.MaturityDate, today); err != nil {
			continue
		}
		pos := p.Value(b, today)
		if pos.DaysToMaturity >= 0 && pos.DaysToMaturity <= withinDays {
			out = append(out, pos)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysToMaturity < out[j].DaysToMaturity
	})
	return out
}
