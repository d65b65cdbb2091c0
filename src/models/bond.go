package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BondType string

const (
	BondGovernment BondType = "government"
	BondCorporate  BondType = "corporate"
	BondMunicipal  BondType = "municipal"
	BondTreasury   BondType = "treasury"
)

// BondTypes lists the accepted bond types in display order.
var BondTypes = []BondType{BondGovernment, BondCorporate, BondMunicipal, BondTreasury}

// Bond is a fixed-income holding as stored in the bonds table.
type Bond struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Issuer        string          `json:"issuer"`
	BondType      BondType        `json:"bond_type"`
	FaceValue     decimal.Decimal `json:"face_value"`
	CouponRate    decimal.Decimal `json:"coupon_rate"` // percent per year
	MaturityDate  string          `json:"maturity_date"`
	PurchaseDate  string          `json:"purchase_date,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	Rating        string          `json:"rating,omitempty"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BondPosition is a Bond with its valuation and maturity countdown attached.
type BondPosition struct {
	Bond
	AnnualIncome    decimal.Decimal `json:"annual_income"`
	DaysToMaturity  int             `json:"days_to_maturity"`
	GainLoss        decimal.Decimal `json:"gain_loss"`
	GainLossPercent decimal.Decimal `json:"gain_loss_percent"`
}

type CreateBondRequest struct {
	Issuer        string           `json:"issuer" validate:"required,max=100"`
	BondType      string           `json:"bond_type" validate:"required,oneof=government corporate municipal treasury"`
	FaceValue     *decimal.Decimal `json:"face_value" validate:"required,gt=0"`
	CouponRate    *decimal.Decimal `json:"coupon_rate" validate:"required,gte=0,lte=100"`
	MaturityDate  string           `json:"maturity_date" validate:"required,date"`
	PurchaseDate  string           `json:"purchase_date" validate:"omitempty,date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"required,gte=0"`
	CurrentPrice  *decimal.Decimal `json:"current_price" validate:"omitempty,gte=0"`
	Rating        string           `json:"rating" validate:"max=10"`
	Notes         string           `json:"notes" validate:"max=500"`
}

type UpdateBondRequest struct {
	Issuer        *string          `json:"issuer" validate:"omitempty,min=1,max=100"`
	BondType      *string          `json:"bond_type" validate:"omitempty,oneof=government corporate municipal treasury"`
	FaceValue     *decimal.Decimal `json:"face_value" validate:"omitempty,gt=0"`
	CouponRate    *decimal.Decimal `json:"coupon_rate" validate:"omitempty,gte=0,lte=100"`
	MaturityDate  *string          `json:"maturity_date" validate:"omitempty,date"`
	PurchaseDate  *string          `json:"purchase_date" validate:"omitempty,date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"omitempty,gte=0"`
	CurrentPrice  *decimal.Decimal `json:"current_price" validate:"omitempty,gte=0"`
	Rating        *string          `json:"rating" validate:"omitempty,max=10"`
	Notes         *string          `json:"notes" validate:"omitempty,max=500"`
}
