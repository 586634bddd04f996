package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sleeperview/sleeperview/internal/api/sleeper"
	"github.com/sleeperview/sleeperview/internal/service"
)

type Handlers struct {
	Service *service.FantasyService
}

func NewHandlers(svc *service.FantasyService) *Handlers {
	return &Handlers{Service: svc}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func errorResp(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// seasonParam reads the optional season query param. Absent or non-integer
// values become zero, which the service resolves to the current year.
func seasonParam(r *http.Request) int {
	season, err := strconv.Atoi(r.URL.Query().Get("season"))
	if err != nil {
		return 0
	}
	return season
}

func (h *Handlers) GetLeagues(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	leagues, err := h.Service.ListLeagues(r.Context(), username, seasonParam(r))
	if err != nil {
		h.renderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leagues)
}

func (h *Handlers) GetLineups(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		errorResp(w, http.StatusBadRequest, "week must be an integer")
		return
	}

	lineups, err := h.Service.GetLineups(r.Context(), vars["username"], week, seasonParam(r))
	if err != nil {
		h.renderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lineups)
}

func (h *Handlers) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		errorResp(w, http.StatusBadRequest, "q is required")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	matches, err := h.Service.SearchPlayers(r.Context(), query, limit)
	if err != nil {
		h.renderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (h *Handlers) renderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sleeper.ErrUserNotFound):
		errorResp(w, http.StatusNotFound, "User not found")
	case errors.Is(err, sleeper.ErrLeaguesNotFound):
		errorResp(w, http.StatusNotFound, "Leagues not found for user")
	default:
		slog.Error("Request failed", "error", err)
		errorResp(w, http.StatusInternalServerError, "internal server error")
	}
}
