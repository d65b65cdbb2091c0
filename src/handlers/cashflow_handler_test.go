package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/username/fintrack/src/models"
)

func TestCashflowCRUDAndRecurrence(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/cashflow", map[string]interface{}{
		"type": "income", "category": "Salary", "amount": 4000, "date": "2024-05-01",
		"is_recurring": true, "recurrence_frequency": "monthly", "tags": []string{"job"},
	})
	expectStatus(t, rec, http.StatusCreated)
	var created models.CashflowEntry
	decodeBody(t, rec, &created)
	if created.RecurrenceFrequency != models.Monthly || len(created.Tags) != 1 {
		t.Errorf("created = %+v", created)
	}

	path := fmt.Sprintf("/api/cashflow/%d", created.ID)
	rec = s.do(http.MethodPut, path, map[string]interface{}{"is_recurring": false})
	expectStatus(t, rec, http.StatusOK)
	var updated models.CashflowEntry
	decodeBody(t, rec, &updated)
	if updated.IsRecurring || updated.RecurrenceFrequency != "" {
		t.Errorf("recurrence not cleared: %+v", updated)
	}

	rec = s.do(http.MethodPut, path, map[string]interface{}{"recurrence_frequency": "weekly"})
	expectStatus(t, rec, http.StatusBadRequest)
	if !strings.Contains(rec.Body.String(), "is_recurring") {
		t.Errorf("body = %s, want is_recurring in the message", rec.Body.String())
	}

	expectStatus(t, s.do(http.MethodPost, "/api/cashflow", map[string]interface{}{
		"type": "income", "category": "Salary", "amount": 10, "date": "2024-05-01", "is_recurring": true,
	}), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodPost, "/api/cashflow", map[string]interface{}{
		"type": "transfer", "category": "Misc", "amount": 10, "date": "2024-05-01",
	}), http.StatusBadRequest)

	expectStatus(t, s.do(http.MethodDelete, path, nil), http.StatusOK)
	expectStatus(t, s.do(http.MethodGet, path, nil), http.StatusNotFound)
}

func TestCashflowSummaryAndFilters(t *testing.T) {
	s := newTestServer(t)
	for _, body := range []map[string]interface{}{
		{"type": "income", "category": "Salary", "amount": 2000, "date": "2024-04-01"},
		{"type": "expense", "category": "Rent", "amount": 500, "date": "2024-04-02"},
		{"type": "expense", "category": "Food", "amount": 300, "date": "2024-05-10"},
	} {
		expectStatus(t, s.do(http.MethodPost, "/api/cashflow", body), http.StatusCreated)
	}

	rec := s.do(http.MethodGet, "/api/cashflow/summary?start_date=2024-04-01&end_date=2024-04-30", nil)
	expectStatus(t, rec, http.StatusOK)
	var summary models.CashflowSummary
	decodeBody(t, rec, &summary)
	if !summary.NetCashflow.Equal(decimal.NewFromInt(1500)) || !summary.SavingsRate.Equal(decimal.NewFromInt(75)) {
		t.Errorf("summary = %+v", summary)
	}

	rec = s.do(http.MethodGet, "/api/cashflow?type=expense", nil)
	expectStatus(t, rec, http.StatusOK)
	var entries []models.CashflowEntry
	decodeBody(t, rec, &entries)
	if len(entries) != 2 || entries[0].Category != "Food" {
		t.Errorf("expenses = %+v", entries)
	}

	rec = s.do(http.MethodGet, "/api/cashflow/categories", nil)
	expectStatus(t, rec, http.StatusOK)
	var cats models.CashflowCategories
	decodeBody(t, rec, &cats)
	if len(cats.Income) != 1 || len(cats.Expense) != 2 {
		t.Errorf("categories = %+v", cats)
	}

	expectStatus(t, s.do(http.MethodGet, "/api/cashflow?start_date=2024-13-01", nil), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodGet, "/api/cashflow?start_date=2024-05-01&end_date=2024-04-01", nil), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodGet, "/api/cashflow?type=gift", nil), http.StatusBadRequest)
}
