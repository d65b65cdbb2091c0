package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/fintrack/src/logger"
)

// ExposeErrorDetails includes internal error text in 500 responses. Set in development only.
var ExposeErrorDetails = false

// GenerateETag creates a SHA256 hash of the JSON representation of the data.
func GenerateETag(data interface{}) (string, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal data for ETag generation: %w", err)
	}
	hash := sha256.Sum256(jsonData)
	return hex.EncodeToString(hash[:]), nil
}

// SendJSON writes data as a JSON response with the given status code.
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L.Error("Error encoding JSON response", "error", err)
	}
}

// SendJSONWithETag writes data with an ETag and answers 304 when the client already has it.
func SendJSONWithETag(w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Cache-Control", "no-cache, private")

	etag, err := GenerateETag(data)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Proceeding without ETag check due to ETag generation error", "error", err)
		SendJSON(w, http.StatusOK, data)
		return
	}

	quoted := fmt.Sprintf("\"%s\"", etag)
	w.Header().Set("ETag", quoted)
	for _, candidate := range strings.Split(r.Header.Get("If-None-Match"), ",") {
		if strings.TrimSpace(candidate) == quoted {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	SendJSON(w, http.StatusOK, data)
}

// SendJSONError is a helper function to send JSON formatted error responses.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	logger.L.Warn("Sending JSON error to client", "message", message, "statusCode", statusCode)
	SendJSON(w, statusCode, map[string]string{"error": message})
}

// SendServerError logs err and sends a generic 500. The detail is only exposed in development.
func SendServerError(w http.ResponseWriter, r *http.Request, message string, err error) {
	logger.FromContext(r.Context()).Error(message, "method", r.Method, "path", r.URL.Path, "error", err)
	body := map[string]string{"error": "Internal server error"}
	if ExposeErrorDetails && err != nil {
		body["message"] = message
		body["detail"] = err.Error()
	}
	SendJSON(w, http.StatusInternalServerError, body)
}
