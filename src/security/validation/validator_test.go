package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/models"
)

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestStructAcceptsValidStock(t *testing.T) {
	req := models.CreateStockRequest{
		Symbol:        "BRK.B",
		Quantity:      ptr(decimal.NewFromInt(3)),
		PurchasePrice: ptr(decimal.RequireFromString("310.50")),
		PurchaseDate:  "2024-02-29",
	}
	if err := Struct(req); err != nil {
		t.Fatalf("Struct() error = %v", err)
	}
}

func TestStructReportsFieldsByJSONName(t *testing.T) {
	req := models.CreateStockRequest{
		Symbol:        "TOO-LONG-SYMBOL",
		Quantity:      ptr(decimal.Zero),
		PurchasePrice: ptr(decimal.NewFromInt(-1)),
		PurchaseDate:  "2023-02-30",
	}
	err := Struct(req)
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	got := map[string]bool{}
	for _, d := range verr.Details {
		got[d.Field] = true
	}
	for _, field := range []string{"symbol", "quantity", "purchase_price", "purchase_date"} {
		if !got[field] {
			t.Errorf("missing detail for %q in %+v", field, verr.Details)
		}
	}
}

func TestStructRequiresPointerFields(t *testing.T) {
	err := Struct(models.CreateBondRequest{Issuer: "US Treasury", BondType: "treasury", MaturityDate: "2030-01-01"})
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	want := map[string]bool{"face_value": true, "coupon_rate": true, "purchase_price": true}
	for _, d := range verr.Details {
		delete(want, d.Field)
	}
	if len(want) != 0 {
		t.Errorf("missing required details: %v", want)
	}
}

func TestStructCouponRateUpperBound(t *testing.T) {
	rate := decimal.NewFromInt(101)
	err := Struct(models.UpdateBondRequest{CouponRate: &rate})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected validation failure for coupon_rate 101, got %v", err)
	}
}

func TestStructRejectsUnknownBondType(t *testing.T) {
	bt := "junk"
	if err := Struct(models.UpdateBondRequest{BondType: &bt}); err == nil {
		t.Fatal("expected error for unknown bond type")
	}
}

func TestStructCashflowTags(t *testing.T) {
	req := models.CreateCashflowRequest{
		Type:     "expense",
		Category: "Food",
		Amount:   ptr(decimal.NewFromInt(12)),
		Date:     "2024-05-01",
		Tags:     []string{"ok", ""},
	}
	if err := Struct(req); err == nil {
		t.Fatal("expected error for empty tag")
	}
	req.Tags = []string{"groceries"}
	if err := Struct(req); err != nil {
		t.Fatalf("Struct() error = %v", err)
	}
}

func TestCleanHelpers(t *testing.T) {
	if got := CleanSymbol("  aapl\x00 "); got != "AAPL" {
		t.Errorf("CleanSymbol() = %q", got)
	}
	if got := CleanText("\tRent\x07\n"); got != "Rent" {
		t.Errorf("CleanText() = %q", got)
	}
	got := CleanTags([]string{" food ", "", "Food", "travel"})
	if len(got) != 2 || got[0] != "food" || got[1] != "travel" {
		t.Errorf("CleanTags() = %v", got)
	}
}
