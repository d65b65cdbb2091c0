package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashflowType string

const (
	Income  CashflowType = "income"
	Expense CashflowType = "expense"
)

type Frequency string

const (
	Daily     Frequency = "daily"
	Weekly    Frequency = "weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// CashflowEntry is one income or expense record.
type CashflowEntry struct {
	ID                  int64           `json:"id"`
	UserID              int64           `json:"user_id"`
	Type                CashflowType    `json:"type"`
	Category            string          `json:"category"`
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description"`
	Date                string          `json:"date"`
	IsRecurring         bool            `json:"is_recurring"`
	RecurrenceFrequency Frequency       `json:"recurrence_frequency,omitempty"`
	Tags                []string        `json:"tags"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type CreateCashflowRequest struct {
	Type                string           `json:"type" validate:"required,oneof=income expense"`
	Category            string           `json:"category" validate:"required,max=50"`
	Amount              *decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Description         string           `json:"description" validate:"max=255"`
	Date                string           `json:"date" validate:"required,date"`
	IsRecurring         bool             `json:"is_recurring"`
	RecurrenceFrequency string           `json:"recurrence_frequency" validate:"omitempty,oneof=daily weekly monthly quarterly yearly"`
	Tags                []string         `json:"tags" validate:"max=20,dive,min=1,max=30"`
}

type UpdateCashflowRequest struct {
	Type                *string          `json:"type" validate:"omitempty,oneof=income expense"`
	Category            *string          `json:"category" validate:"omitempty,min=1,max=50"`
	Amount              *decimal.Decimal `json:"amount" validate:"omitempty,gt=0"`
	Description         *string          `json:"description" validate:"omitempty,max=255"`
	Date                *string          `json:"date" validate:"omitempty,date"`
	IsRecurring         *bool            `json:"is_recurring"`
	RecurrenceFrequency *string          `json:"recurrence_frequency" validate:"omitempty,oneof=daily weekly monthly quarterly yearly"`
	Tags                *[]string        `json:"tags" validate:"omitempty,max=20,dive,min=1,max=30"`
}

// CashflowFilter narrows list and summary queries. Empty fields match everything.
type CashflowFilter struct {
	Type      string `validate:"omitempty,oneof=income expense"`
	Category  string `validate:"omitempty,max=50"`
	StartDate string `validate:"omitempty,date"`
	EndDate   string `validate:"omitempty,date"`
}
