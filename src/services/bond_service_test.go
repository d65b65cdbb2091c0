package services

import (
	"context"
	"errors"
	"testing"

	"github.com/username/fintrack/src/models"
)

func createBond(t *testing.T, ts *testServices, issuer, bondType, maturity string) *models.BondPosition {
	t.Helper()
	pos, err := ts.bonds.Create(context.Background(), testUserID, models.CreateBondRequest{
		Issuer:        issuer,
		BondType:      bondType,
		FaceValue:     dec("1000"),
		CouponRate:    dec("4.5"),
		MaturityDate:  maturity,
		PurchasePrice: dec("980"),
		Rating:        "aa+",
	})
	if err != nil {
		t.Fatalf("Create(%s) error = %v", issuer, err)
	}
	return pos
}

func TestBondServiceCreateComputesFields(t *testing.T) {
	freezeToday(t, "2025-01-01")
	ts := newTestServices(t)

	pos := createBond(t, ts, "US Treasury", "treasury", "2025-01-31")
	if pos.DaysToMaturity != 30 {
		t.Errorf("DaysToMaturity = %d, want 30", pos.DaysToMaturity)
	}
	if pos.Rating != "AA+" {
		t.Errorf("Rating = %q, want AA+", pos.Rating)
	}
	assertDecimal(t, "CurrentPrice", pos.CurrentPrice, "980")
	assertDecimal(t, "AnnualIncome", pos.AnnualIncome, "45")
}

func TestBondServiceListOrderAndTypeFilter(t *testing.T) {
	freezeToday(t, "2025-01-01")
	ts := newTestServices(t)
	ctx := context.Background()

	createBond(t, ts, "Late Corp", "corporate", "2030-01-01")
	createBond(t, ts, "Early Gov", "government", "2026-01-01")
	createBond(t, ts, "Mid Corp", "corporate", "2028-01-01")

	all, err := ts.bonds.List(ctx, testUserID, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 || all[0].Issuer != "Early Gov" || all[2].Issuer != "Late Corp" {
		t.Errorf("unexpected order: %+v", all)
	}

	corp, err := ts.bonds.List(ctx, testUserID, "Corporate")
	if err != nil {
		t.Fatalf("List(corporate) error = %v", err)
	}
	if len(corp) != 2 {
		t.Errorf("len(corp) = %d, want 2", len(corp))
	}
}

func TestBondServiceMaturingWindow(t *testing.T) {
	freezeToday(t, "2025-01-01")
	ts := newTestServices(t)
	ctx := context.Background()

	createBond(t, ts, "Past", "municipal", "2024-12-01")
	createBond(t, ts, "Soon", "treasury", "2025-01-10")
	createBond(t, ts, "Later", "treasury", "2025-03-01")
	createBond(t, ts, "Far", "treasury", "2027-01-01")

	got, err := ts.bonds.Maturing(ctx, testUserID, 90)
	if err != nil {
		t.Fatalf("Maturing() error = %v", err)
	}
	if len(got) != 2 || got[0].Issuer != "Soon" || got[1].Issuer != "Later" {
		t.Errorf("Maturing(90) = %+v", got)
	}
}

func TestBondServiceUpdateAndDelete(t *testing.T) {
	freezeToday(t, "2025-01-01")
	ts := newTestServices(t)
	ctx := context.Background()

	pos := createBond(t, ts, "ACME", "corporate", "2029-06-30")
	updated, err := ts.bonds.Update(ctx, testUserID, pos.ID, models.UpdateBondRequest{CurrentPrice: dec("1010")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Issuer != "ACME" {
		t.Errorf("Issuer changed to %q", updated.Issuer)
	}
	assertDecimal(t, "GainLoss", updated.GainLoss, "30")

	if err := ts.bonds.Delete(ctx, testUserID, pos.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := ts.bonds.Get(ctx, testUserID, pos.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete = %v, want ErrNotFound", err)
	}
}

func TestBondServiceSummary(t *testing.T) {
	freezeToday(t, "2025-01-01")
	ts := newTestServices(t)

	createBond(t, ts, "A", "corporate", "2029-01-01")
	createBond(t, ts, "B", "treasury", "2030-01-01")

	summary, err := ts.bonds.Summary(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.TotalBonds != 2 {
		t.Errorf("TotalBonds = %d, want 2", summary.TotalBonds)
	}
	assertDecimal(t, "TotalFaceValue", summary.TotalFaceValue, "2000")
	assertDecimal(t, "AnnualIncome", summary.AnnualIncome, "90")
	assertDecimal(t, "AverageCouponRate", summary.AverageCouponRate, "4.5")
}
