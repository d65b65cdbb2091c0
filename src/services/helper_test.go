package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/database"
	"github.com/username/fintrack/src/model"
	"github.com/username/fintrack/src/processors"
	"github.com/username/fintrack/src/utils"
)

const testUserID int64 = 1

type testServices struct {
	db        *sql.DB
	stocks    StockService
	bonds     BondService
	cashflow  CashflowService
	portfolio PortfolioService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	hash := func(p string) (string, error) { return p, nil }
	if _, err := model.EnsureUser(context.Background(), db, testUserID, "demo", "demo@example.com", "pw", hash); err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}

	stockProc := processors.NewStockProcessor()
	ts := &testServices{
		db:       db,
		stocks:   NewStockService(db, stockProc),
		bonds:    NewBondService(db, processors.NewBondProcessor()),
		cashflow: NewCashflowService(db, processors.NewCashflowProcessor()),
	}
	ts.portfolio = NewPortfolioService(db, ts.stocks, ts.bonds, ts.cashflow,
		processors.NewPortfolioProcessor(stockProc), processors.NewAlertProcessor(stockProc))
	return ts
}

// freezeToday pins utils.Today to the given date for the rest of the test.
func freezeToday(t *testing.T, date string) {
	t.Helper()
	day, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	orig := utils.Now
	utils.Now = func() time.Time { return day.Add(12 * time.Hour) }
	t.Cleanup(func() { utils.Now = orig })
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func str(s string) *string { return &s }

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
