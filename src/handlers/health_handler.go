package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/utils"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(r.Context()).Error("Health check: database ping failed", "error", err)
		utils.SendJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
		return
	}
	utils.SendJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"database":  "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
