package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/username/fintrack/src/models"
	"github.com/username/fintrack/src/security/validation"
	"github.com/username/fintrack/src/services"
	"github.com/username/fintrack/src/utils"
)

type CashflowHandler struct {
	cashflowService services.CashflowService
}

func NewCashflowHandler(cashflowService services.CashflowService) *CashflowHandler {
	return &CashflowHandler{cashflowService: cashflowService}
}

// Routes mounts the cash flow endpoints under /api/cashflow.
func (h *CashflowHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleListCashflow)
	r.Post("/", h.HandleCreateCashflow)
	r.Get("/summary", h.HandleGetCashflowSummary)
	r.Get("/categories", h.HandleGetCategories)
	r.Get("/{id}", h.HandleGetCashflow)
	r.Put("/{id}", h.HandleUpdateCashflow)
	r.Delete("/{id}", h.HandleDeleteCashflow)
	return r
}

// filterFromQuery reads and validates the list/summary query filters.
func filterFromQuery(r *http.Request) (models.CashflowFilter, error) {
	q := r.URL.Query()
	filter := models.CashflowFilter{
		Type:      strings.ToLower(strings.TrimSpace(q.Get("type"))),
		Category:  validation.CleanText(q.Get("category")),
		StartDate: strings.TrimSpace(q.Get("start_date")),
		EndDate:   strings.TrimSpace(q.Get("end_date")),
	}
	if err := validation.Struct(filter); err != nil {
		return filter, err
	}
	if filter.StartDate != "" && filter.EndDate != "" && filter.StartDate > filter.EndDate {
		return filter, validation.NewError("start_date", "must not be after end_date")
	}
	return filter, nil
}

func (h *CashflowHandler) HandleListCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	entries, err := h.cashflowService.List(r.Context(), userID, filter)
	if err != nil {
		sendError(w, r, err, "Cashflow entries")
		return
	}
	utils.SendJSONWithETag(w, r, entries)
}

func (h *CashflowHandler) HandleGetCashflowSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	summary, err := h.cashflowService.Summary(r.Context(), userID, filter)
	if err != nil {
		sendError(w, r, err, "Cashflow summary")
		return
	}
	utils.SendJSONWithETag(w, r, summary)
}

func (h *CashflowHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	categories, err := h.cashflowService.Categories(r.Context(), userID)
	if err != nil {
		sendError(w, r, err, "Cashflow categories")
		return
	}
	utils.SendJSON(w, http.StatusOK, categories)
}

func (h *CashflowHandler) HandleGetCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	entry, err := h.cashflowService.Get(r.Context(), userID, id)
	if err != nil {
		sendError(w, r, err, "Cashflow entry")
		return
	}
	utils.SendJSON(w, http.StatusOK, entry)
}

func (h *CashflowHandler) HandleCreateCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	var req models.CreateCashflowRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err, "Cashflow entry")
		return
	}
	entry, err := h.cashflowService.Create(r.Context(), userID, req)
	if err != nil {
		sendError(w, r, err, "Cashflow entry")
		return
	}
	utils.SendJSON(w, http.StatusCreated, entry)
}

func (h *CashflowHandler) HandleUpdateCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	var req models.UpdateCashflowRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err, "Cashflow entry")
		return
	}
	entry, err := h.cashflowService.Update(r.Context(), userID, id, req)
	if err != nil {
		sendError(w, r, err, "Cashflow entry")
		return
	}
	utils.SendJSON(w, http.StatusOK, entry)
}

func (h *CashflowHandler) HandleDeleteCashflow(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	if err := h.cashflowService.Delete(r.Context(), userID, id); err != nil {
		sendError(w, r, err, "Cashflow entry")
		return
	}
	utils.SendJSON(w, http.StatusOK, map[string]string{"message": "Cashflow entry deleted successfully"})
}
