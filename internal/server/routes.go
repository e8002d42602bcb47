package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/scythe504/fortune-wheel-backend/internal"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// Apply CORS middleware
	r.Use(s.corsMiddleware)

	r.HandleFunc("/", s.HealthHandler)

	r.HandleFunc("/leaderboard", s.LeaderboardHandler)

	r.HandleFunc("/ws", s.hub.HandleWebSocket)

	return r
}

// CORS middleware
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CORS Headers
		w.Header().Set("Access-Control-Allow-Origin", "*") // Wildcard allows all origins
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "false") // Credentials not allowed with wildcard origins

		// If it's a websocket upgrade, skip further CORS checks
		if strings.ToLower(r.Header.Get("Upgrade")) == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		// Handle preflight OPTIONS requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if s.db != nil {
		resp = s.db.Health(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("error encoding health response")
	}
}

// LeaderboardHandler serves the all-time top scores. Limit is clamped to
// [1, 100] with a default of 10.
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now().UnixMilli()

	resp := internal.Response{
		StatusCode:    http.StatusOK,
		RespStartTime: startTime,
	}

	if s.db == nil {
		resp.StatusCode = http.StatusNotImplemented
		resp.Data = "leaderboard is not configured"
	} else {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit < 1 || limit > 100 {
			limit = 10
		}
		entries, err := s.db.TopWins(r.Context(), limit)
		if err != nil {
			log.Error().Err(err).Msg("failed to load leaderboard")
			resp.StatusCode = http.StatusInternalServerError
			resp.Data = "failed to load leaderboard"
		} else {
			resp.Data = entries
		}
	}

	endTime := time.Now().UnixMilli()
	resp.RespEndTime = endTime
	resp.NetRespTime = endTime - startTime

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("error encoding leaderboard response")
	}
}
