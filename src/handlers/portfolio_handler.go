package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/fintrack/src/security/validation"
	"github.com/username/fintrack/src/services"
	"github.com/username/fintrack/src/utils"
)

const (
	defaultSnapshotLimit = 30
	maxSnapshotLimit     = 365
)

type PortfolioHandler struct {
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// Routes mounts the portfolio endpoints under /api/portfolio.
func (h *PortfolioHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/overview", h.HandleGetOverview)
	r.Get("/allocation", h.HandleGetAllocation)
	r.Get("/performance", h.HandleGetPerformance)
	r.Get("/alerts", h.HandleGetAlerts)
	r.Get("/snapshots", h.HandleListSnapshots)
	r.Post("/snapshots", h.HandleCreateSnapshot)
	return r
}

func (h *PortfolioHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	overview, err := h.portfolioService.Overview(r.Context(), userID)
	if err != nil {
		sendError(w, r, err, "Portfolio overview")
		return
	}
	utils.SendJSONWithETag(w, r, overview)
}

func (h *PortfolioHandler) HandleGetAllocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	allocation, err := h.portfolioService.Allocation(r.Context(), userID)
	if err != nil {
		sendError(w, r, err, "Portfolio allocation")
		return
	}
	utils.SendJSONWithETag(w, r, allocation)
}

func (h *PortfolioHandler) HandleGetPerformance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	performance, err := h.portfolioService.Performance(r.Context(), userID)
	if err != nil {
		sendError(w, r, err, "Portfolio performance")
		return
	}
	utils.SendJSONWithETag(w, r, performance)
}

func (h *PortfolioHandler) HandleGetAlerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	alerts, err := h.portfolioService.Alerts(r.Context(), userID)
	if err != nil {
		sendError(w, r, err, "Portfolio alerts")
		return
	}
	utils.SendJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(alerts),
		"alerts": alerts,
	})
}

func (h *PortfolioHandler) HandleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	snapshot, err := h.portfolioService.TakeSnapshot(r.Context(), userID)
	if err != nil {
		sendError(w, r, err, "Portfolio snapshot")
		return
	}
	utils.SendJSON(w, http.StatusCreated, snapshot)
}

func (h *PortfolioHandler) HandleListSnapshots(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	limit, err := utils.ParseIntDefault(r.URL.Query().Get("limit"), defaultSnapshotLimit)
	if err != nil || limit < 1 {
		sendValidationError(w, validation.NewError("limit", "must be a positive integer"))
		return
	}
	snapshots, err := h.portfolioService.Snapshots(r.Context(), userID, utils.ClampInt(limit, 1, maxSnapshotLimit))
	if err != nil {
		sendError(w, r, err, "Portfolio snapshots")
		return
	}
	utils.SendJSON(w, http.StatusOK, snapshots)
}
