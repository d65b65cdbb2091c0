package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/username/fintrack/src/security/validation"
	"github.com/username/fintrack/src/services"
	"github.com/username/fintrack/src/utils"
)

var errBodyTooLarge = errors.New("request body too large")

// decodeJSON reads a single JSON object into dst, rejecting unknown fields
// and trailing data, then validates dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		return validation.NewError("body", "Content-Type must be application/json")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return errBodyTooLarge
		case errors.Is(err, io.EOF):
			return validation.NewError("body", "request body must not be empty")
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return validation.NewError("body", "request body contains malformed JSON")
		case errors.As(err, &typeErr):
			return validation.NewError(typeErr.Field, fmt.Sprintf("must be of type %s", typeErr.Type))
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return validation.NewError(field, "is not a recognized field")
		default:
			return validation.NewError("body", err.Error())
		}
	}
	if dec.More() {
		return validation.NewError("body", "request body must contain a single JSON object")
	}
	return validation.Struct(dst)
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.NewError("id", "must be a positive integer")
	}
	return id, nil
}

// sendValidationError writes a 400 with per-field details.
func sendValidationError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		utils.SendJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Validation failed",
			"details": verr.Details,
		})
		return
	}
	utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
}

// sendError maps service and validation errors to their status codes.
func sendError(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, validation.ErrValidationFailed):
		sendValidationError(w, err)
	case errors.Is(err, errBodyTooLarge):
		utils.SendJSONError(w, "Request body too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, services.ErrNotFound):
		utils.SendJSONError(w, what+" not found", http.StatusNotFound)
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		utils.SendJSONError(w, "No fields to update", http.StatusBadRequest)
	default:
		utils.SendServerError(w, r, "Failed to process "+strings.ToLower(what), err)
	}
}

// userIDOrFail writes a 401 when AuthMiddleware did not run.
func userIDOrFail(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
	}
	return userID, ok
}
