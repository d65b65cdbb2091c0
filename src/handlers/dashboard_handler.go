package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/model"
	"github.com/username/fintrack/src/models"
	"github.com/username/fintrack/src/security"
	"github.com/username/fintrack/src/services"
	"github.com/username/fintrack/src/utils"
	"github.com/username/fintrack/src/web"
)

const dashboardRowLimit = 50

type DashboardHandler struct {
	db               *sql.DB
	templates        *template.Template
	authService      *security.AuthService
	authConfig       AuthConfig
	defaultCurrency  string
	stockService     services.StockService
	bondService      services.BondService
	cashflowService  services.CashflowService
	portfolioService services.PortfolioService
}

func NewDashboardHandler(
	db *sql.DB,
	templates *template.Template,
	authService *security.AuthService,
	authConfig AuthConfig,
	defaultCurrency string,
	stockService services.StockService,
	bondService services.BondService,
	cashflowService services.CashflowService,
	portfolioService services.PortfolioService,
) *DashboardHandler {
	return &DashboardHandler{
		db:               db,
		templates:        templates,
		authService:      authService,
		authConfig:       authConfig,
		defaultCurrency:  defaultCurrency,
		stockService:     stockService,
		bondService:      bondService,
		cashflowService:  cashflowService,
		portfolioService: portfolioService,
	}
}

func (h *DashboardHandler) load(ctx context.Context, userID int64) (*web.DashboardData, error) {
	data := &web.DashboardData{Currency: h.defaultCurrency, GeneratedAt: time.Now()}

	prefs, err := model.GetPreferences(ctx, h.db, userID)
	if err != nil {
		return nil, err
	}
	if prefs.Currency != "" && prefs.Currency != model.DefaultCurrency {
		data.Currency = prefs.Currency
	}
	data.Theme = prefs.Theme

	overview, err := h.portfolioService.Overview(ctx, userID)
	if err != nil {
		return nil, err
	}
	data.Overview = *overview

	allocation, err := h.portfolioService.Allocation(ctx, userID)
	if err != nil {
		return nil, err
	}
	data.Allocation = *allocation

	performance, err := h.portfolioService.Performance(ctx, userID)
	if err != nil {
		return nil, err
	}
	data.Performance = *performance

	if data.Alerts, err = h.portfolioService.Alerts(ctx, userID); err != nil {
		return nil, err
	}
	if data.Stocks, err = h.stockService.List(ctx, userID, ""); err != nil {
		return nil, err
	}
	if data.Bonds, err = h.bondService.List(ctx, userID, ""); err != nil {
		return nil, err
	}
	if data.Cashflow, err = h.cashflowService.List(ctx, userID, models.CashflowFilter{}); err != nil {
		return nil, err
	}
	if len(data.Cashflow) > dashboardRowLimit {
		data.Cashflow = data.Cashflow[:dashboardRowLimit]
	}
	if data.Snapshots, err = h.portfolioService.Snapshots(ctx, userID, 10); err != nil {
		return nil, err
	}
	return data, nil
}

// user resolves the viewer from a bearer header or the session cookie set at login.
// Without either, the default user is used unless auth is enforced.
func (h *DashboardHandler) user(r *http.Request) (int64, bool) {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if token == "" {
		if c, err := r.Cookie(sessionCookie); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		return h.authConfig.DefaultUserID, !h.authConfig.Enforced
	}
	userID, err := h.authService.ValidateToken(token)
	if err != nil {
		logger.FromContext(r.Context()).Debug("Dashboard: token validation failed", "error", err)
		return 0, false
	}
	return userID, true
}

func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(r)
	if !ok {
		h.render(w, r, http.StatusUnauthorized, "login.html", nil)
		return
	}
	data, err := h.load(r.Context(), userID)
	if err != nil {
		utils.SendServerError(w, r, "Error loading dashboard data", err)
		return
	}
	h.render(w, r, http.StatusOK, "dashboard.html", data)
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		utils.SendServerError(w, r, "Error rendering "+name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Warn("Error writing dashboard response", "error", err)
	}
}
