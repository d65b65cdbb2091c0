package processors

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/models"
)

const topPerformerCount = 5

type portfolioProcessorImpl struct {
	stocks StockProcessor
}

func NewPortfolioProcessor(stocks StockProcessor) PortfolioProcessor {
	return &portfolioProcessorImpl{stocks: stocks}
}

// cashValue only counts a positive net cash flow as held cash.
func cashValue(cash models.CashflowSummary) decimal.Decimal {
	if cash.NetCashflow.IsPositive() {
		return cash.NetCashflow
	}
	return decimal.Zero
}

func (p *portfolioProcessorImpl) Overview(stocks models.StockSummary, bonds models.BondSummary, cash models.CashflowSummary) models.PortfolioOverview {
	cashHeld := cashValue(cash)
	invested := stocks.TotalInvested.Add(bonds.TotalInvested)
	marketValue := stocks.TotalCurrentValue.Add(bonds.TotalCurrentValue)
	v := NewValuation(invested, marketValue)

	return models.PortfolioOverview{
		StocksValue:     stocks.TotalCurrentValue,
		StocksInvested:  stocks.TotalInvested,
		BondsValue:      bonds.TotalCurrentValue,
		BondsInvested:   bonds.TotalInvested,
		CashValue:       cashHeld,
		NetCashflow:     cash.NetCashflow,
		TotalValue:      marketValue.Add(cashHeld),
		TotalInvested:   invested,
		TotalGainLoss:   v.GainLoss,
		GainLossPercent: v.GainLossPercent,
		StockCount:      stocks.TotalStocks,
		BondCount:       bonds.TotalBonds,
		CashflowCount:   cash.EntryCount,
	}
}

func (p *portfolioProcessorImpl) Allocation(stocks models.StockSummary, bonds models.BondSummary, cash models.CashflowSummary) models.Allocation {
	cashHeld := cashValue(cash)
	total := stocks.TotalCurrentValue.Add(bonds.TotalCurrentValue).Add(cashHeld)

	alloc := models.Allocation{
		TotalValue: total,
		AssetClass: []models.AllocationSlice{
			{Label: "stocks", Value: stocks.TotalCurrentValue, Percent: Percent(stocks.TotalCurrentValue, total)},
			{Label: "bonds", Value: bonds.TotalCurrentValue, Percent: Percent(bonds.TotalCurrentValue, total)},
			{Label: "cash", Value: cashHeld, Percent: Percent(cashHeld, total)},
		},
		BySector:   []models.AllocationSlice{},
		ByBondType: []models.AllocationSlice{},
	}
	for _, s := range stocks.Sectors {
		alloc.BySector = append(alloc.BySector, models.AllocationSlice{
			Label:   s.Sector,
			Value:   s.CurrentValue,
			Percent: s.PercentOfStocks,
		})
	}
	for _, b := range bonds.ByType {
		alloc.ByBondType = append(alloc.ByBondType, models.AllocationSlice{
			Label:   string(b.BondType),
			Value:   b.CurrentValue,
			Percent: Percent(b.CurrentValue, bonds.TotalCurrentValue),
		})
	}
	return alloc
}

func (p *portfolioProcessorImpl) Performance(stocks []models.Stock, bonds []models.Bond) models.Performance {
	stockInvested, stockCurrent := decimal.Zero, decimal.Zero
	performers := make([]models.StockPerformer, 0, len(stocks))
	for _, s := range stocks {
		pos := p.stocks.Value(s)
		stockInvested = stockInvested.Add(pos.InvestedValue)
		stockCurrent = stockCurrent.Add(pos.CurrentValue)
		performers = append(performers, performerOf(pos))
	}

	bondInvested, bondCurrent := decimal.Zero, decimal.Zero
	for _, b := range bonds {
		bondInvested = bondInvested.Add(b.PurchasePrice)
		bondCurrent = bondCurrent.Add(b.CurrentPrice)
	}

	perf := models.Performance{
		Stocks:     NewValuation(stockInvested, stockCurrent),
		Bonds:      NewValuation(bondInvested, bondCurrent),
		Overall:    NewValuation(stockInvested.Add(bondInvested), stockCurrent.Add(bondCurrent)),
		TopGainers: []models.StockPerformer{},
		TopLosers:  []models.StockPerformer{},
	}

	sort.Slice(performers, func(i, j int) bool { return betterThan(performers[i], performers[j]) })
	for _, pf := range performers {
		if len(perf.TopGainers) == topPerformerCount || !pf.GainLoss.IsPositive() {
			break
		}
		perf.TopGainers = append(perf.TopGainers, pf)
	}
	for i := len(performers) - 1; i >= 0; i-- {
		pf := performers[i]
		if len(perf.TopLosers) == topPerformerCount || !pf.GainLoss.IsNegative() {
			break
		}
		perf.TopLosers = append(perf.TopLosers, pf)
	}
	return perf
}
