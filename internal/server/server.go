package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/scythe504/fortune-wheel-backend/internal/database"
	"github.com/scythe504/fortune-wheel-backend/internal/game"
)

type Server struct {
	port int

	hub *game.Hub
	db  database.Service
}

// NewServer wires the hub and optional leaderboard store into an http.Server.
// db may be nil; the leaderboard endpoint then reports the feature disabled.
func NewServer(hub *game.Hub, db database.Service) *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}
	s := &Server{
		port: port,
		hub:  hub,
		db:   db,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
