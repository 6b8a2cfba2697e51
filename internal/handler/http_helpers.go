package handler

import (
	"encoding/json"
	"net/http"

	"pdf-tools-server/internal/domain"
	apperrors "pdf-tools-server/pkg/errors"
)

type contextKey string

const sessionContextKey contextKey = "session"

// GetSessionFromContext extracts the verified session from request context
func GetSessionFromContext(r *http.Request) (*domain.Session, bool) {
	session, ok := r.Context().Value(sessionContextKey).(*domain.Session)
	return session, ok
}

// errorEnvelope is the uniform failure reply shape.
type errorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes a `{error:true, message}` envelope
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorEnvelope{Error: true, Message: message})
}

// writeAppError maps a service error onto the failure envelope, mirroring
// vendor status codes where the error carries one.
func writeAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		writeError(w, appErr.StatusCode, appErr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
