package model

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// RecordPrice appends a user-entered price to a stock's history.
func RecordPrice(ctx context.Context, db execer, stockID int64, price decimal.Decimal) error {
	_, err := db.ExecContext(ctx, `INSERT INTO stock_price_history (stock_id, price) VALUES (?, ?)`, stockID, price)
	if err != nil {
		return fmt.Errorf("recording price for stock %d: %w", stockID, err)
	}
	return nil
}

// GetPriceHistory lists a stock's recorded prices, oldest first.
func GetPriceHistory(ctx context.Context, db *sql.DB, stockID int64) ([]models.PricePoint, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT price, recorded_at FROM stock_price_history WHERE stock_id = ? ORDER BY recorded_at ASC, id ASC`, stockID)
	if err != nil {
		return nil, fmt.Errorf("querying price history for stock %d: %w", stockID, err)
	}
	defer rows.Close()

	history := []models.PricePoint{}
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.Price, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning price history row: %w", err)
		}
		history = append(history, p)
	}
	return history, rows.Err()
}
