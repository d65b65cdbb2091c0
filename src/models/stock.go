package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is an equity position as stored in the stocks table.
type Stock struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Symbol        string          `json:"symbol"`
	CompanyName   string          `json:"company_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	PurchaseDate  string          `json:"purchase_date"` // YYYY-MM-DD
	Sector        string          `json:"sector"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockPosition is a Stock with its valuation attached.
type StockPosition struct {
	Stock
	InvestedValue   decimal.Decimal `json:"invested_value"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	GainLoss        decimal.Decimal `json:"gain_loss"`
	GainLossPercent decimal.Decimal `json:"gain_loss_percent"`
}

// CreateStockRequest is the body of POST /api/stocks.
type CreateStockRequest struct {
	Symbol        string           `json:"symbol" validate:"required,symbol"`
	CompanyName   string           `json:"company_name" validate:"max=100"`
	Quantity      *decimal.Decimal `json:"quantity" validate:"required,gt=0"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"required,gte=0"`
	CurrentPrice  *decimal.Decimal `json:"current_price" validate:"omitempty,gte=0"`
	PurchaseDate  string           `json:"purchase_date" validate:"required,date"`
	Sector        string           `json:"sector" validate:"max=50"`
	Notes         string           `json:"notes" validate:"max=500"`
}

// UpdateStockRequest is the body of PUT /api/stocks/{id}. Nil fields are left untouched.
type UpdateStockRequest struct {
	Symbol        *string          `json:"symbol" validate:"omitempty,symbol"`
	CompanyName   *string          `json:"company_name" validate:"omitempty,max=100"`
	Quantity      *decimal.Decimal `json:"quantity" validate:"omitempty,gt=0"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"omitempty,gte=0"`
	CurrentPrice  *decimal.Decimal `json:"current_price" validate:"omitempty,gte=0"`
	PurchaseDate  *string          `json:"purchase_date" validate:"omitempty,date"`
	Sector        *string          `json:"sector" validate:"omitempty,max=50"`
	Notes         *string          `json:"notes" validate:"omitempty,max=500"`
}

// PricePoint is one row of a stock's recorded price history.
type PricePoint struct {
	Price      decimal.Decimal `json:"price"`
	RecordedAt time.Time       `json:"recorded_at"`
}
