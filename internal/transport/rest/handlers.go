package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/playgrid/tictactoe-backend/internal/repository"
)

const defaultResultsLimit = 20

type resultLister interface {
	ListRecent(ctx context.Context, limit int) ([]repository.GameResult, error)
}

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// resultsHandler returns the most recently finished games.
func (that *Server) resultsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultResultsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	results, err := that.results.ListRecent(r.Context(), limit)
	if err != nil {
		that.logger.Error("failed to list results", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(results); err != nil {
		that.logger.Error("failed to encode results", "error", err)
	}
}
