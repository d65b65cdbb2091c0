package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/fintrack/src/models"
	"github.com/username/fintrack/src/services"
	"github.com/username/fintrack/src/utils"
)

type StockHandler struct {
	stockService services.StockService
}

func NewStockHandler(stockService services.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Routes mounts the stock endpoints under /api/stocks.
func (h *StockHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleListStocks)
	r.Post("/", h.HandleCreateStock)
	r.Get("/summary", h.HandleGetStockSummary)
	r.Get("/{id}", h.HandleGetStock)
	r.Get("/{id}/history", h.HandleGetPriceHistory)
	r.Put("/{id}", h.HandleUpdateStock)
	r.Delete("/{id}", h.HandleDeleteStock)
	return r
}

func (h *StockHandler) HandleListStocks(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	stocks, err := h.stockService.List(r.Context(), userID, r.URL.Query().Get("sector"))
	if err != nil {
		sendError(w, r, err, "Stocks")
		return
	}
	utils.SendJSONWithETag(w, r, stocks)
}

func (h *StockHandler) HandleGetStockSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	summary, err := h.stockService.Summary(r.Context(), userID)
	if err != nil {
		sendError(w, r, err, "Stock summary")
		return
	}
	utils.SendJSONWithETag(w, r, summary)
}

func (h *StockHandler) HandleGetStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	stock, err := h.stockService.Get(r.Context(), userID, id)
	if err != nil {
		sendError(w, r, err, "Stock")
		return
	}
	utils.SendJSON(w, http.StatusOK, stock)
}

func (h *StockHandler) HandleGetPriceHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	history, err := h.stockService.PriceHistory(r.Context(), userID, id)
	if err != nil {
		sendError(w, r, err, "Stock")
		return
	}
	utils.SendJSON(w, http.StatusOK, history)
}

func (h *StockHandler) HandleCreateStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	var req models.CreateStockRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err, "Stock")
		return
	}
	stock, err := h.stockService.Create(r.Context(), userID, req)
	if err != nil {
		sendError(w, r, err, "Stock")
		return
	}
	utils.SendJSON(w, http.StatusCreated, stock)
}

func (h *StockHandler) HandleUpdateStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	var req models.UpdateStockRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err, "Stock")
		return
	}
	stock, err := h.stockService.Update(r.Context(), userID, id, req)
	if err != nil {
		sendError(w, r, err, "Stock")
		return
	}
	utils.SendJSON(w, http.StatusOK, stock)
}

func (h *StockHandler) HandleDeleteStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	if err := h.stockService.Delete(r.Context(), userID, id); err != nil {
		sendError(w, r, err, "Stock")
		return
	}
	utils.SendJSON(w, http.StatusOK, map[string]string{"message": "Stock deleted successfully"})
}
