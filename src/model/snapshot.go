package model

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/username/fintrack/src/models"
)

// CreateSnapshot stores the given totals and fills in the generated id and timestamp.
func CreateSnapshot(ctx context.Context, db *sql.DB, s *models.PortfolioSnapshot) error {
	res, err := db.ExecContext(ctx, `
		INSERT INTO portfolio_snapshots (user_id, total_value, stocks_value, bonds_value, cash_value, total_gain_loss)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.UserID, s.TotalValue, s.StocksValue, s.BondsValue, s.CashValue, s.TotalGainLoss)
	if err != nil {
		return fmt.Errorf("inserting portfolio snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading snapshot id: %w", err)
	}
	s.ID = id
	return db.QueryRowContext(ctx, `SELECT taken_at FROM portfolio_snapshots WHERE id = ?`, id).Scan(&s.TakenAt)
}

// ListSnapshots returns at most limit snapshots, newest first.
func ListSnapshots(ctx context.Context, db *sql.DB, userID int64, limit int) ([]models.PortfolioSnapshot, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, total_value, stocks_value, bonds_value, cash_value, total_gain_loss, taken_at
		FROM portfolio_snapshots WHERE user_id = ?
		ORDER BY taken_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots for user %d: %w", userID, err)
	}
	defer rows.Close()

	snapshots := []models.PortfolioSnapshot{}
	for rows.Next() {
		var s models.PortfolioSnapshot
		if err := rows.Scan(&s.ID, &s.UserID, &s.TotalValue, &s.StocksValue, &s.BondsValue, &s.CashValue, &s.TotalGainLoss, &s.TakenAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
