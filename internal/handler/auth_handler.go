package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pdf-tools-server/internal/domain"
)

// AuthHandler exchanges a Supabase access token for a signed first-party
// session cookie. The indirection keeps the session in an httpOnly cookie
// instead of a bearer token in browser storage.
type AuthHandler struct {
	supabase   domain.SupabaseClient
	sessions   domain.SessionService
	maxAge     int
	production bool
	logger     domain.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(
	supabase domain.SupabaseClient,
	sessions domain.SessionService,
	config domain.Config,
	logger domain.Logger,
) *AuthHandler {
	return &AuthHandler{
		supabase:   supabase,
		sessions:   sessions,
		maxAge:     config.GetSessionMaxAge(),
		production: config.IsProduction(),
		logger:     logger,
	}
}

// SetCookie handles POST /api/auth/set-cookie
func (h *AuthHandler) SetCookie(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Syntactic check first: a JWT has exactly three dot-separated parts.
	// Malformed tokens never reach the auth backend.
	if strings.Count(body.AccessToken, ".") != 2 {
		writeError(w, http.StatusBadRequest, "Malformed access token")
		return
	}

	user, err := h.supabase.ValidateToken(body.AccessToken)
	if err != nil {
		h.logger.Warn("Rejected login with invalid access token")
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	session, err := h.sessions.Issue(user)
	if err != nil {
		h.logger.Error("Failed to issue session token", err, "user", user.ID)
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session,
		Path:     "/",
		MaxAge:   h.maxAge,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{"error": false, "message": "Session created"})
}

// ClearCookie handles POST /api/auth/clear-cookie
func (h *AuthHandler) ClearCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{"error": false, "message": "Session cleared"})
}
