package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultCurrency   = "USD"
	DefaultDateFormat = "YYYY-MM-DD"
	DefaultTheme      = "light"
)

type Preferences struct {
	UserID     int64     `json:"user_id"`
	Currency   string    `json:"currency"`
	DateFormat string    `json:"date_format"`
	Theme      string    `json:"theme"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdatePreferencesRequest is the body of PUT /api/auth/preferences. Nil fields are left untouched.
type UpdatePreferencesRequest struct {
	Currency   *string `json:"currency" validate:"omitempty,len=3,alpha"`
	DateFormat *string `json:"date_format" validate:"omitempty,oneof=YYYY-MM-DD DD/MM/YYYY MM/DD/YYYY"`
	Theme      *string `json:"theme" validate:"omitempty,oneof=light dark"`
}

// GetPreferences returns the stored preferences, or the defaults when none were saved yet.
func GetPreferences(ctx context.Context, db *sql.DB, userID int64) (*Preferences, error) {
	prefs := Preferences{UserID: userID}
	err := db.QueryRowContext(ctx,
		`SELECT currency, date_format, theme, updated_at FROM user_preferences WHERE user_id = ?`, userID,
	).Scan(&prefs.Currency, &prefs.DateFormat, &prefs.Theme, &prefs.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		prefs.Currency = DefaultCurrency
		prefs.DateFormat = DefaultDateFormat
		prefs.Theme = DefaultTheme
		return &prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading preferences for user %d: %w", userID, err)
	}
	return &prefs, nil
}

// SavePreferences upserts the full preference row.
func SavePreferences(ctx context.Context, db *sql.DB, prefs *Preferences) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, currency, date_format, theme, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			currency = excluded.currency,
			date_format = excluded.date_format,
			theme = excluded.theme,
			updated_at = CURRENT_TIMESTAMP`,
		prefs.UserID, prefs.Currency, prefs.DateFormat, prefs.Theme)
	if err != nil {
		return fmt.Errorf("saving preferences for user %d: %w", prefs.UserID, err)
	}
	return nil
}
