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

const (
	defaultMaturingDays = 90
	maxMaturingDays     = 3650
)

type BondHandler struct {
	bondService services.BondService
}

func NewBondHandler(bondService services.BondService) *BondHandler {
	return &BondHandler{bondService: bondService}
}

// Routes mounts the bond endpoints under /api/bonds.
func (h *BondHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleListBonds)
	r.Post("/", h.HandleCreateBond)
	r.Get("/summary", h.HandleGetBondSummary)
	r.Get("/maturing", h.HandleGetMaturingBonds)
	r.Get("/{id}", h.HandleGetBond)
	r.Put("/{id}", h.HandleUpdateBond)
	r.Delete("/{id}", h.HandleDeleteBond)
	return r
}

func (h *BondHandler) HandleListBonds(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	bondType := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type")))
	if bondType != "" && !isBondType(bondType) {
		sendValidationError(w, validation.NewError("type", "must be one of: government, corporate, municipal, treasury"))
		return
	}
	bonds, err := h.bondService.List(r.Context(), userID, bondType)
	if err != nil {
		sendError(w, r, err, "Bonds")
		return
	}
	utils.SendJSONWithETag(w, r, bonds)
}

func isBondType(s string) bool {
	for _, t := range models.BondTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

func (h *BondHandler) HandleGetBondSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	summary, err := h.bondService.Summary(r.Context(), userID)
	if err != nil {
		sendError(w, r, err, "Bond summary")
		return
	}
	utils.SendJSONWithETag(w, r, summary)
}

func (h *BondHandler) HandleGetMaturingBonds(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	days, err := utils.ParseIntDefault(r.URL.Query().Get("days"), defaultMaturingDays)
	if err != nil || days < 1 || days > maxMaturingDays {
		sendValidationError(w, validation.NewError("days", "must be an integer between 1 and 3650"))
		return
	}
	bonds, err := h.bondService.Maturing(r.Context(), userID, days)
	if err != nil {
		sendError(w, r, err, "Bonds")
		return
	}
	utils.SendJSON(w, http.StatusOK, map[string]interface{}{
		"days":  days,
		"count": len(bonds),
		"bonds": bonds,
	})
}

func (h *BondHandler) HandleGetBond(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	bond, err := h.bondService.Get(r.Context(), userID, id)
	if err != nil {
		sendError(w, r, err, "Bond")
		return
	}
	utils.SendJSON(w, http.StatusOK, bond)
}

func (h *BondHandler) HandleCreateBond(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	var req models.CreateBondRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err, "Bond")
		return
	}
	bond, err := h.bondService.Create(r.Context(), userID, req)
	if err != nil {
		sendError(w, r, err, "Bond")
		return
	}
	utils.SendJSON(w, http.StatusCreated, bond)
}

func (h *BondHandler) HandleUpdateBond(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	var req models.UpdateBondRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err, "Bond")
		return
	}
	bond, err := h.bondService.Update(r.Context(), userID, id, req)
	if err != nil {
		sendError(w, r, err, "Bond")
		return
	}
	utils.SendJSON(w, http.StatusOK, bond)
}

func (h *BondHandler) HandleDeleteBond(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		sendValidationError(w, err)
		return
	}
	if err := h.bondService.Delete(r.Context(), userID, id); err != nil {
		sendError(w, r, err, "Bond")
		return
	}
	utils.SendJSON(w, http.StatusOK, map[string]string{"message": "Bond deleted successfully"})
}
