package processors

import (
	"testing"

	"github.com/username/fintrack/src/models"
)

func bond(id int64, bondType models.BondType, face, coupon, maturity, buy, cur string) models.Bond {
	return models.Bond{
		ID:            id,
		Issuer:        "Issuer",
		BondType:      bondType,
		FaceValue:     d(face),
		CouponRate:    d(coupon),
		MaturityDate:  maturity,
		PurchasePrice: d(buy),
		CurrentPrice:  d(cur),
	}
}

func TestBondProcessor_Value(t *testing.T) {
	p := NewBondProcessor()
	pos := p.Value(bond(1, models.BondTreasury, "1000", "4.5", "2026-11-17", "980", "1000"), day("2026-10-18"))

	assertDecimal(t, "AnnualIncome", pos.AnnualIncome, "45")
	assertDecimal(t, "GainLoss", pos.GainLoss, "20")
	assertDecimal(t, "GainLossPercent", pos.GainLossPercent, "2.04")
	if pos.DaysToMaturity != 30 {
		t.Errorf("DaysToMaturity = %d, want 30", pos.DaysToMaturity)
	}
}

func TestBondProcessor_Summarize(t *testing.T) {
	p := NewBondProcessor()
	summary := p.Summarize([]models.Bond{
		bond(1, models.BondCorporate, "1000", "5", "2030-01-01", "950", "1000"),
		bond(2, models.BondGovernment, "2000", "3", "2028-06-30", "2000", "1900"),
		bond(3, models.BondCorporate, "500", "6.25", "2027-03-15", "500", "510"),
	})

	if summary.TotalBonds != 3 {
		t.Errorf("TotalBonds = %d, want 3", summary.TotalBonds)
	}
	assertDecimal(t, "TotalFaceValue", summary.TotalFaceValue, "3500")
	assertDecimal(t, "TotalInvested", summary.TotalInvested, "3450")
	assertDecimal(t, "TotalCurrentValue", summary.TotalCurrentValue, "3410")
	assertDecimal(t, "TotalGainLoss", summary.TotalGainLoss, "-40")
	assertDecimal(t, "GainLossPercent", summary.GainLossPercent, "-1.16")
	assertDecimal(t, "AverageCouponRate", summary.AverageCouponRate, "4.75")
	// 50 + 60 + 31.25
	assertDecimal(t, "AnnualIncome", summary.AnnualIncome, "141.25")

	if len(summary.ByType) != 2 {
		t.Fatalf("len(ByType) = %d, want 2", len(summary.ByType))
	}
	if summary.ByType[0].BondType != models.BondGovernment || summary.ByType[1].BondType != models.BondCorporate {
		t.Errorf("ByType order = %s, %s; want government, corporate", summary.ByType[0].BondType, summary.ByType[1].BondType)
	}
	if summary.ByType[1].Count != 2 {
		t.Errorf("corporate count = %d, want 2", summary.ByType[1].Count)
	}
}

func TestBondProcessor_SummarizeEmpty(t *testing.T) {
	summary := NewBondProcessor().Summarize(nil)
	assertDecimal(t, "AverageCouponRate", summary.AverageCouponRate, "0")
	if summary.ByType == nil {
		t.Error("ByType should be an empty slice, not nil")
	}
}

func TestBondProcessor_Maturing(t *testing.T) {
	p := NewBondProcessor()
	today := day("2026-10-18")
	bonds := []models.Bond{
		bond(1, models.BondCorporate, "1000", "5", "2027-01-10", "1000", "1000"), // 84 days
		bond(2, models.BondCorporate, "1000", "5", "2026-10-20", "1000", "1000"), // 2 days
		bond(3, models.BondCorporate, "1000", "5", "2026-10-01", "1000", "1000"), // matured
		bond(4, models.BondCorporate, "1000", "5", "2028-01-01", "1000", "1000"), // far away
		bond(5, models.BondCorporate, "1000", "5", "not-a-date", "1000", "1000"),
	}

	got := p.Maturing(bonds, today, 90)
	if len(got) != 2 {
		t.Fatalf("Maturing() returned %d bonds, want 2: %+v", len(got), got)
	}
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Errorf("Maturing() order = [%d %d], want [2 1]", got[0].ID, got[1].ID)
	}

	if got := p.Maturing(bonds, today, 1); len(got) != 0 {
		t.Errorf("Maturing(1 day) returned %d bonds, want 0", len(got))
	}
}
