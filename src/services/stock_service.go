package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/model"
	"github.com/username/fintrack/src/models"
	"github.com/username/fintrack/src/processors"
	"github.com/username/fintrack/src/security/validation"
)

const defaultSector = "Other"

const stockColumns = `id, user_id, symbol, company_name, quantity, purchase_price, current_price,
	purchase_date, sector, notes, created_at, updated_at`

type stockServiceImpl struct {
	db        *sql.DB
	processor processors.StockProcessor
}

func NewStockService(db *sql.DB, processor processors.StockProcessor) StockService {
	return &stockServiceImpl{db: db, processor: processor}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStock(row rowScanner) (models.Stock, error) {
	var s models.Stock
	err := row.Scan(&s.ID, &s.UserID, &s.Symbol, &s.CompanyName, &s.Quantity, &s.PurchasePrice, &s.CurrentPrice,
		&s.PurchaseDate, &s.Sector, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (s *stockServiceImpl) query(ctx context.Context, where string, args ...interface{}) ([]models.Stock, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+stockColumns+` FROM stocks WHERE `+where+` ORDER BY purchase_date DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying stocks: %w", err)
	}
	defer rows.Close()

	stocks := []models.Stock{}
	for rows.Next() {
		stock, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stock row: %w", err)
		}
		stocks = append(stocks, stock)
	}
	return stocks, rows.Err()
}

func (s *stockServiceImpl) All(ctx context.Context, userID int64) ([]models.Stock, error) {
	return s.query(ctx, "user_id = ?", userID)
}

func (s *stockServiceImpl) List(ctx context.Context, userID int64, sector string) ([]models.StockPosition, error) {
	var (
		stocks []models.Stock
		err    error
	)
	if sector = validation.CleanText(sector); sector != "" {
		stocks, err = s.query(ctx, "user_id = ? AND sector = ? COLLATE NOCASE", userID, sector)
	} else {
		stocks, err = s.All(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	positions := make([]models.StockPosition, 0, len(stocks))
	for _, stock := range stocks {
		positions = append(positions, s.processor.Value(stock))
	}
	return positions, nil
}

func (s *stockServiceImpl) load(ctx context.Context, userID, id int64) (models.Stock, error) {
	stock, err := scanStock(s.db.QueryRowContext(ctx,
		`SELECT `+stockColumns+` FROM stocks WHERE id = ? AND user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return stock, ErrNotFound
	}
	if err != nil {
		return stock, fmt.Errorf("loading stock %d: %w", id, err)
	}
	return stock, nil
}

func (s *stockServiceImpl) Get(ctx context.Context, userID, id int64) (*models.StockPosition, error) {
	stock, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	pos := s.processor.Value(stock)
	return &pos, nil
}

func (s *stockServiceImpl) Create(ctx context.Context, userID int64, req models.CreateStockRequest) (*models.StockPosition, error) {
	if req.Quantity == nil || req.PurchasePrice == nil {
		return nil, validation.NewError("quantity", "is required")
	}
	currentPrice := *req.PurchasePrice
	if req.CurrentPrice != nil {
		currentPrice = *req.CurrentPrice
	}
	sector := validation.CleanText(req.Sector)
	if sector == "" {
		sector = defaultSector
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO stocks (user_id, symbol, company_name, quantity, purchase_price, current_price, purchase_date, sector, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, validation.CleanSymbol(req.Symbol), validation.CleanText(req.CompanyName), *req.Quantity,
		*req.PurchasePrice, currentPrice, req.PurchaseDate, sector, validation.CleanText(req.Notes))
	if err != nil {
		return nil, fmt.Errorf("inserting stock: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new stock id: %w", err)
	}

	if err := model.RecordPrice(ctx, s.db, id, currentPrice); err != nil {
		logger.FromContext(ctx).Warn("Could not record initial stock price", "stockID", id, "error", err)
	}
	logger.FromContext(ctx).Info("Stock created", "userID", userID, "stockID", id)
	return s.Get(ctx, userID, id)
}

func (s *stockServiceImpl) Update(ctx context.Context, userID, id int64, req models.UpdateStockRequest) (*models.StockPosition, error) {
	existing, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var b updateBuilder
	if req.Symbol != nil {
		b.set("symbol", validation.CleanSymbol(*req.Symbol))
	}
	if req.CompanyName != nil {
		b.set("company_name", validation.CleanText(*req.CompanyName))
	}
	if req.Quantity != nil {
		b.set("quantity", *req.Quantity)
	}
	if req.PurchasePrice != nil {
		b.set("purchase_price", *req.PurchasePrice)
	}
	if req.CurrentPrice != nil {
		b.set("current_price", *req.CurrentPrice)
	}
	if req.PurchaseDate != nil {
		b.set("purchase_date", *req.PurchaseDate)
	}
	if req.Sector != nil {
		sector := validation.CleanText(*req.Sector)
		if sector == "" {
			sector = defaultSector
		}
		b.set("sector", sector)
	}
	if req.Notes != nil {
		b.set("notes", validation.CleanText(*req.Notes))
	}

	if err := b.exec(ctx, s.db, "stocks", id, userID); err != nil {
		return nil, err
	}

	if req.CurrentPrice != nil && !req.CurrentPrice.Equal(existing.CurrentPrice) {
		if err := model.RecordPrice(ctx, s.db, id, *req.CurrentPrice); err != nil {
			logger.FromContext(ctx).Warn("Could not record stock price change", "stockID", id, "error", err)
		}
	}
	return s.Get(ctx, userID, id)
}

func (s *stockServiceImpl) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteRow(ctx, s.db, "stocks", id, userID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Stock deleted", "userID", userID, "stockID", id)
	return nil
}

func (s *stockServiceImpl) Summary(ctx context.Context, userID int64) (*models.StockSummary, error) {
	stocks, err := s.All(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := s.processor.Summarize(stocks)
	return &summary, nil
}

func (s *stockServiceImpl) PriceHistory(ctx context.Context, userID, id int64) ([]models.PricePoint, error) {
	if _, err := s.load(ctx, userID, id); err != nil {
		return nil, err
	}
	return model.GetPriceHistory(ctx, s.db, id)
}
