package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"connectpro.org/internal/audit"
	"connectpro.org/internal/auth"
)

const tokenTTL = 15 * time.Minute

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      *auth.User `json:"user"`
	Team      *auth.Team `json:"team"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.sessions.Login(r.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			_ = audit.LogEvent(r.Context(), "auth.login.failed", map[string]any{
				"email": req.Email,
			})
			writeError(w, r, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			writeError(w, r, http.StatusRequestTimeout, "login canceled")
		default:
			writeError(w, r, http.StatusInternalServerError, "login failed")
		}
		return
	}

	state := a.sessions.State()
	token, err := auth.GenerateToken(*state.User, tokenTTL)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "token generation failed")
		return
	}

	if a.feed != nil {
		a.feed.Record(fmt.Sprintf("%s logged in", state.User.Name))
	}
	_ = audit.LogEvent(r.Context(), "auth.login.succeeded", map[string]any{
		"user_id": state.User.ID,
		"role":    state.User.Role.String(),
	})

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(tokenTTL),
		User:      state.User,
		Team:      state.Team,
	})
}

func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if a.registrar == nil {
		writeError(w, r, http.StatusNotImplemented, "signup is disabled")
		return
	}

	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	role := auth.Role("")
	if req.Role != "" {
		parsed, err := auth.ParseRole(req.Role)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "unknown role")
			return
		}
		role = parsed
	}

	rec, err := a.registrar.Register(r.Context(), req.Email, req.Password, req.Name, role)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAlreadyExists):
			writeError(w, r, http.StatusConflict, "email is already registered")
		case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidInput):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.signup", map[string]any{
		"user_id": rec.User.ID,
		"role":    rec.User.Role.String(),
	})
	writeJSON(w, http.StatusCreated, map[string]any{"user": rec.User})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	user, _ := auth.UserFromContext(r.Context())
	a.sessions.Logout()

	if a.feed != nil && user.Name != "" {
		a.feed.Record(fmt.Sprintf("%s logged out", user.Name))
	}
	_ = audit.LogEvent(r.Context(), "auth.logout", nil)

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, a.sessions.State())
}
