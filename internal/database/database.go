// Package database persists finished-game results for the public leaderboard.
// Live game state is never written here; rooms exist only in memory.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	RoomCode string    `json:"room_code"`
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"played_at"`
}

type Service interface {
	// Health reports connectivity in a key/value form suitable for the
	// health endpoint.
	Health(ctx context.Context) map[string]string

	// RecordWin stores one finished game.
	RecordWin(ctx context.Context, roomCode, name string, score int) error

	// TopWins returns the highest scores, newest first among ties.
	TopWins(ctx context.Context, limit int) ([]ScoreEntry, error)

	Close()
}

type service struct {
	pool *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS game_results (
	id          BIGSERIAL PRIMARY KEY,
	room_code   TEXT        NOT NULL,
	player_name TEXT        NOT NULL,
	score       INT         NOT NULL,
	played_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// New connects to Postgres and ensures the schema exists.
func New(ctx context.Context, connString string) (Service, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &service{pool: pool}, nil
}

func (s *service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		return map[string]string{
			"status": "down",
			"error":  err.Error(),
		}
	}
	return map[string]string{
		"status":            "up",
		"total_connections": fmt.Sprintf("%d", s.pool.Stat().TotalConns()),
	}
}

func (s *service) RecordWin(ctx context.Context, roomCode, name string, score int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO game_results (room_code, player_name, score) VALUES ($1, $2, $3)`,
		roomCode, name, score,
	)
	if err != nil {
		return fmt.Errorf("record win: %w", err)
	}
	return nil
}

func (s *service) TopWins(ctx context.Context, limit int) ([]ScoreEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT room_code, player_name, score, played_at
		 FROM game_results
		 ORDER BY score DESC, played_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top wins: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		if err := rows.Scan(&e.RoomCode, &e.Name, &e.Score, &e.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *service) Close() {
	s.pool.Close()
}
