package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scythe504/fortune-wheel-backend/internal/database"
	"github.com/scythe504/fortune-wheel-backend/internal/game"
	"github.com/scythe504/fortune-wheel-backend/internal/server"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var store database.Service
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s, err := database.New(ctx, dsn)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		store = s
		defer store.Close()
		log.Info().Msg("leaderboard store connected")
	}

	hub := game.NewHub(store)
	srv := server.NewServer(hub, store)

	log.Info().Str("addr", srv.Addr).Msg("starting fortune wheel server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
