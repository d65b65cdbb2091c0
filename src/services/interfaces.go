package services

import (
	"context"
	"errors"

	"github.com/username/fintrack/src/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// StockService persists stock positions and values them on the way out.
type StockService interface {
	List(ctx context.Context, userID int64, sector string) ([]models.StockPosition, error)
	All(ctx context.Context, userID int64) ([]models.Stock, error)
	Get(ctx context.Context, userID, id int64) (*models.StockPosition, error)
	Create(ctx context.Context, userID int64, req models.CreateStockRequest) (*models.StockPosition, error)
	Update(ctx context.Context, userID, id int64, req models.UpdateStockRequest) (*models.StockPosition, error)
	Delete(ctx context.Context, userID, id int64) error
	Summary(ctx context.Context, userID int64) (*models.StockSummary, error)
	PriceHistory(ctx context.Context, userID, id int64) ([]models.PricePoint, error)
}

// BondService persists bonds and values them relative to today.
type BondService interface {
	List(ctx context.Context, userID int64, bondType string) ([]models.BondPosition, error)
	All(ctx context.Context, userID int64) ([]models.Bond, error)
	Get(ctx context.Context, userID, id int64) (*models.BondPosition, error)
	Create(ctx context.Context, userID int64, req models.CreateBondRequest) (*models.BondPosition, error)
	Update(ctx context.Context, userID, id int64, req models.UpdateBondRequest) (*models.BondPosition, error)
	Delete(ctx context.Context, userID, id int64) error
	Summary(ctx context.Context, userID int64) (*models.BondSummary, error)
	Maturing(ctx context.Context, userID int64, withinDays int) ([]models.BondPosition, error)
}

// CashflowService persists income and expense entries.
type CashflowService interface {
	List(ctx context.Context, userID int64, filter models.CashflowFilter) ([]models.CashflowEntry, error)
	Get(ctx context.Context, userID, id int64) (*models.CashflowEntry, error)
	Create(ctx context.Context, userID int64, req models.CreateCashflowRequest) (*models.CashflowEntry, error)
	Update(ctx context.Context, userID, id int64, req models.UpdateCashflowRequest) (*models.CashflowEntry, error)
	Delete(ctx context.Context, userID, id int64) error
	Summary(ctx context.Context, userID int64, filter models.CashflowFilter) (*models.CashflowSummary, error)
	Categories(ctx context.Context, userID int64) (*models.CashflowCategories, error)
}

// PortfolioService combines the other services into portfolio-wide views.
type PortfolioService interface {
	Overview(ctx context.Context, userID int64) (*models.PortfolioOverview, error)
	Allocation(ctx context.Context, userID int64) (*models.Allocation, error)
	Performance(ctx context.Context, userID int64) (*models.Performance, error)
	Alerts(ctx context.Context, userID int64) ([]models.Alert, error)
	TakeSnapshot(ctx context.Context, userID int64) (*models.PortfolioSnapshot, error)
	Snapshots(ctx context.Context, userID int64, limit int) ([]models.PortfolioSnapshot, error)
}
