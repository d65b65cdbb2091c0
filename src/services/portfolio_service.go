package services

import (
	"context"
	"database/sql"

	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/model"
	"github.com/username/fintrack/src/models"
	"github.com/username/fintrack/src/processors"
	"github.com/username/fintrack/src/utils"
)

type portfolioServiceImpl struct {
	db        *sql.DB
	stocks    StockService
	bonds     BondService
	cashflow  CashflowService
	processor processors.PortfolioProcessor
	alerts    processors.AlertProcessor
}

func NewPortfolioService(
	db *sql.DB,
	stocks StockService,
	bonds BondService,
	cashflow CashflowService,
	processor processors.PortfolioProcessor,
	alerts processors.AlertProcessor,
) PortfolioService {
	return &portfolioServiceImpl{
		db:        db,
		stocks:    stocks,
		bonds:     bonds,
		cashflow:  cashflow,
		processor: processor,
		alerts:    alerts,
	}
}

func (s *portfolioServiceImpl) summaries(ctx context.Context, userID int64) (*models.StockSummary, *models.BondSummary, *models.CashflowSummary, error) {
	stocks, err := s.stocks.Summary(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	bonds, err := s.bonds.Summary(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	cash, err := s.cashflow.Summary(ctx, userID, models.CashflowFilter{})
	if err != nil {
		return nil, nil, nil, err
	}
	return stocks, bonds, cash, nil
}

func (s *portfolioServiceImpl) Overview(ctx context.Context, userID int64) (*models.PortfolioOverview, error) {
	stocks, bonds, cash, err := s.summaries(ctx, userID)
	if err != nil {
		return nil, err
	}
	overview := s.processor.Overview(*stocks, *bonds, *cash)
	return &overview, nil
}

func (s *portfolioServiceImpl) Allocation(ctx context.Context, userID int64) (*models.Allocation, error) {
	stocks, bonds, cash, err := s.summaries(ctx, userID)
	if err != nil {
		return nil, err
	}
	allocation := s.processor.Allocation(*stocks, *bonds, *cash)
	return &allocation, nil
}

func (s *portfolioServiceImpl) Performance(ctx context.Context, userID int64) (*models.Performance, error) {
	stocks, err := s.stocks.All(ctx, userID)
	if err != nil {
		return nil, err
	}
	bonds, err := s.bonds.All(ctx, userID)
	if err != nil {
		return nil, err
	}
	performance := s.processor.Performance(stocks, bonds)
	return &performance, nil
}

func (s *portfolioServiceImpl) Alerts(ctx context.Context, userID int64) ([]models.Alert, error) {
	stocks, err := s.stocks.All(ctx, userID)
	if err != nil {
		return nil, err
	}
	bonds, err := s.bonds.All(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.cashflow.List(ctx, userID, models.CashflowFilter{})
	if err != nil {
		return nil, err
	}
	return s.alerts.Generate(stocks, bonds, entries, utils.Today()), nil
}

func (s *portfolioServiceImpl) TakeSnapshot(ctx context.Context, userID int64) (*models.PortfolioSnapshot, error) {
	overview, err := s.Overview(ctx, userID)
	if err != nil {
		return nil, err
	}
	snapshot := &models.PortfolioSnapshot{
		UserID:        userID,
		TotalValue:    overview.TotalValue,
		StocksValue:   overview.StocksValue,
		BondsValue:    overview.BondsValue,
		CashValue:     overview.CashValue,
		TotalGainLoss: overview.TotalGainLoss,
	}
	if err := model.CreateSnapshot(ctx, s.db, snapshot); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Portfolio snapshot taken", "userID", userID, "snapshotID", snapshot.ID, "totalValue", snapshot.TotalValue.String())
	return snapshot, nil
}

func (s *portfolioServiceImpl) Snapshots(ctx context.Context, userID int64, limit int) ([]models.PortfolioSnapshot, error) {
	return model.ListSnapshots(ctx, s.db, userID, limit)
}
