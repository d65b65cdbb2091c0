package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/model"
	"github.com/username/fintrack/src/security"
	"github.com/username/fintrack/src/security/validation"
	"github.com/username/fintrack/src/utils"
)

type UserHandler struct {
	db          *sql.DB
	authService *security.AuthService
}

func NewUserHandler(db *sql.DB, authService *security.AuthService) *UserHandler {
	return &UserHandler{db: db, authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   int64       `json:"expires_at"`
	User        *model.User `json:"user"`
}

// PublicRoutes are reachable without a token.
func (h *UserHandler) PublicRoutes(r chi.Router) {
	r.Post("/login", h.LoginUserHandler)
}

// ProtectedRoutes need AuthMiddleware in front of them.
func (h *UserHandler) ProtectedRoutes(r chi.Router) {
	r.Get("/me", h.HandleGetMe)
	r.Get("/preferences", h.HandleGetPreferences)
	r.Put("/preferences", h.HandleUpdatePreferences)
}

func (h *UserHandler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var creds loginRequest
	if err := decodeJSON(r, &creds); err != nil {
		sendError(w, r, err, "Login")
		return
	}
	log := logger.FromContext(r.Context())

	user, err := model.GetUserByUsername(r.Context(), h.db, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			log.Warn("Login failed: unknown user", "username", creds.Username)
			utils.SendJSONError(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		utils.SendServerError(w, r, "Error looking up user", err)
		return
	}
	if err := h.authService.CompareHashAndPassword(user.Password, creds.Password); err != nil {
		log.Warn("Login failed: bad password", "userID", user.ID)
		utils.SendJSONError(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	token, expiresAt, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.SendServerError(w, r, "Error generating access token", err)
		return
	}
	log.Info("User logged in", "userID", user.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
	utils.SendJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
		User:        user,
	})
}

func (h *UserHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	user, err := model.GetUserByID(r.Context(), h.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			utils.SendJSONError(w, "User not found", http.StatusNotFound)
			return
		}
		utils.SendServerError(w, r, "Error loading user", err)
		return
	}
	utils.SendJSON(w, http.StatusOK, user)
}

func (h *UserHandler) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	prefs, err := model.GetPreferences(r.Context(), h.db, userID)
	if err != nil {
		utils.SendServerError(w, r, "Error loading preferences", err)
		return
	}
	utils.SendJSON(w, http.StatusOK, prefs)
}

func (h *UserHandler) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDOrFail(w, r)
	if !ok {
		return
	}
	var req model.UpdatePreferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err, "Preferences")
		return
	}
	if req.Currency == nil && req.DateFormat == nil && req.Theme == nil {
		sendValidationError(w, validation.NewError("body", "no fields to update"))
		return
	}

	prefs, err := model.GetPreferences(r.Context(), h.db, userID)
	if err != nil {
		utils.SendServerError(w, r, "Error loading preferences", err)
		return
	}
	if req.Currency != nil {
		prefs.Currency = strings.ToUpper(*req.Currency)
	}
	if req.DateFormat != nil {
		prefs.DateFormat = *req.DateFormat
	}
	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if err := model.SavePreferences(r.Context(), h.db, prefs); err != nil {
		utils.SendServerError(w, r, "Error saving preferences", err)
		return
	}

	saved, err := model.GetPreferences(r.Context(), h.db, userID)
	if err != nil {
		utils.SendServerError(w, r, "Error loading preferences", err)
		return
	}
	utils.SendJSON(w, http.StatusOK, saved)
}
