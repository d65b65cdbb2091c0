package processors

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/models"
)

const defaultSector = "Other"

type stockProcessorImpl struct{}

func NewStockProcessor() StockProcessor {
	return &stockProcessorImpl{}
}

func (p *stockProcessorImpl) Value(stock models.Stock) models.StockPosition {
	invested := stock.Quantity.Mul(stock.PurchasePrice)
	current := stock.Quantity.Mul(stock.CurrentPrice)
	v := NewValuation(invested, current)
	return models.StockPosition{
		Stock:           stock,
		InvestedValue:   v.Invested,
		CurrentValue:    v.CurrentValue,
		GainLoss:        v.GainLoss,
		GainLossPercent: v.GainLossPercent,
	}
}

func (p *stockProcessorImpl) Summarize(stocks []models.Stock) models.StockSummary {
	summary := models.StockSummary{
		TotalStocks: len(stocks),
		Sectors:     []models.SectorBreakdown{},
	}

	type sectorAcc struct {
		count             int
		invested, current decimal.Decimal
	}
	sectors := make(map[string]*sectorAcc)
	totalInvested, totalCurrent := decimal.Zero, decimal.Zero

	for _, s := range stocks {
		pos := p.Value(s)
		totalInvested = totalInvested.Add(pos.InvestedValue)
		totalCurrent = totalCurrent.Add(pos.CurrentValue)

		sector := strings.TrimSpace(s.Sector)
		if sector == "" {
			sector = defaultSector
		}
		acc, ok := sectors[sector]
		if !ok {
			acc = &sectorAcc{}
			sectors[sector] = acc
		}
		acc.count++
		acc.invested = acc.invested.Add(pos.InvestedValue)
		acc.current = acc.current.Add(pos.CurrentValue)

		perf := performerOf(pos)
		if summary.BestPerformer == nil || betterThan(perf, *summary.BestPerformer) {
			best := perf
			summary.BestPerformer = &best
		}
		if summary.WorstPerformer == nil || betterThan(*summary.WorstPerformer, perf) {
			worst := perf
			summary.WorstPerformer = &worst
		}
	}

	total := NewValuation(totalInvested, totalCurrent)
	summary.TotalInvested = total.Invested
	summary.TotalCurrentValue = total.CurrentValue
	summary.TotalGainLoss = total.GainLoss
	summary.GainLossPercent = total.GainLossPercent

	for name, acc := range sectors {
		summary.Sectors = append(summary.Sectors, models.SectorBreakdown{
			Sector:          name,
			Count:           acc.count,
			Valuation:       NewValuation(acc.invested, acc.current),
			PercentOfStocks: Percent(acc.current, totalCurrent),
		})
	}
	sort.Slice(summary.Sectors, func(i, j int) bool {
		a, b := summary.Sectors[i], summary.Sectors[j]
		if !a.CurrentValue.Equal(b.CurrentValue) {
			return a.CurrentValue.GreaterThan(b.CurrentValue)
		}
		return a.Sector < b.Sector
	})
	return summary
}

func performerOf(pos models.StockPosition) models.StockPerformer {
	return models.StockPerformer{
		ID:              pos.ID,
		Symbol:          pos.Symbol,
		GainLoss:        pos.GainLoss,
		GainLossPercent: pos.GainLossPercent,
	}
}

// betterThan orders performers by return, then absolute gain, then symbol for stable output.
func betterThan(a, b models.StockPerformer) bool {
	if !a.GainLossPercent.Equal(b.GainLossPercent) {
		return a.GainLossPercent.GreaterThan(b.GainLossPercent)
	}
	if !a.GainLoss.Equal(b.GainLoss) {
		return a.GainLoss.GreaterThan(b.GainLoss)
	}
	return a.Symbol < b.Symbol
}
