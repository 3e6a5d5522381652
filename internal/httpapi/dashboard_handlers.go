package httpapi

import (
	"net/http"

	"connectpro.org/internal/access"
	"connectpro.org/internal/auth"
)

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	team := a.sessions.Team()
	writeJSON(w, http.StatusOK, a.board.Overview(user, &team))
}

func (a *API) handleNavigation(w http.ResponseWriter, r *http.Request) {
	a.handleFiltered(w, r, access.Navigation())
}

func (a *API) handleActions(w http.ResponseWriter, r *http.Request) {
	a.handleFiltered(w, r, access.QuickActions())
}

func (a *API) handleFiltered(w http.ResponseWriter, r *http.Request, items []access.Item) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": access.FilterVisible(items, user.Role),
	})
}
