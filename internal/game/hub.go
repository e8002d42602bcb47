package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/scythe504/fortune-wheel-backend/internal"
	"github.com/scythe504/fortune-wheel-backend/internal/database"
	"github.com/scythe504/fortune-wheel-backend/internal/utils"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
)

// Hub owns every live room. All game actions go through it: the hub resolves
// the room, the room's own mutex serializes the mutation, and broadcasts
// happen after unlock on a snapshot.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*internal.Room

	// roll draws a wheel index; swapped out in tests.
	roll func(n int) int

	// store records finished games when configured, nil otherwise.
	store database.Service
}

func NewHub(store database.Service) *Hub {
	return &Hub{
		rooms: make(map[string]*internal.Room),
		roll:  rand.Intn,
		store: store,
	}
}

// CreateRoom installs an empty waiting room with the requesting connection as
// host. The host is not a player until it joins like everyone else.
func (h *Hub) CreateRoom(host internal.Conn) *internal.Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	code := utils.GenerateRoomCode(internal.RoomCodeLength)
	for _, taken := h.rooms[code]; taken; _, taken = h.rooms[code] {
		code = utils.GenerateRoomCode(internal.RoomCodeLength)
	}

	room := &internal.Room{
		Code:    code,
		HostId:  host.ID(),
		Players: make(map[string]*internal.Player),
		Order:   make([]string, 0, internal.MaxPlayersPerRoom),
		Status:  internal.StatusWaiting,
	}
	h.rooms[code] = room

	log.Info().Str("room", code).Str("host", host.ID()).Msg("room created")
	return room
}

// Room returns the live room for code, or nil.
func (h *Hub) Room(code string) *internal.Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rooms[code]
}

// JoinRoom adds a player at the end of the turn order. The first player to
// join (or any join while no current player is set) becomes the current
// player. A repeat join from a connection already in the room is a no-op so
// it can never occupy a second turn slot.
func (h *Hub) JoinRoom(code, name string, conn internal.Conn) error {
	room := h.Room(code)
	if room == nil {
		return ErrRoomNotFound
	}

	room.Mu.Lock()
	if _, member := room.Players[conn.ID()]; member {
		room.Mu.Unlock()
		log.Debug().Str("room", code).Str("player", conn.ID()).Msg("repeat join ignored")
		return nil
	}
	if room.PlayerCount() >= internal.MaxPlayersPerRoom {
		room.Mu.Unlock()
		return ErrRoomFull
	}
	player := &internal.Player{Id: conn.ID(), Name: name, Conn: conn}
	room.AddPlayer(player)
	if room.CurrentPlayerId == "" {
		room.CurrentPlayerId = player.Id
	}
	count := room.PlayerCount()
	room.Mu.Unlock()

	log.Info().Str("room", code).Str("player", conn.ID()).Str("name", name).
		Int("players", count).Msg("player joined")

	h.systemMessage(room, fmt.Sprintf("%s joined the game", name))
	h.BroadcastRoomState(room)
	return nil
}

// DeleteRoom removes the entry from the registry. Invoked automatically when
// a room's player count reaches zero.
func (h *Hub) DeleteRoom(code string) {
	h.mu.Lock()
	delete(h.rooms, code)
	h.mu.Unlock()
	log.Info().Str("room", code).Msg("room deleted")
}

// HandleDisconnect scans every room for the departing connection. Where
// present, the player is removed, the turn moves on if it was theirs, and the
// room is deleted once empty.
func (h *Hub) HandleDisconnect(connID string) {
	h.mu.RLock()
	live := make([]*internal.Room, 0, len(h.rooms))
	for _, room := range h.rooms {
		live = append(live, room)
	}
	h.mu.RUnlock()

	for _, room := range live {
		room.Mu.Lock()
		player, ok := room.Players[connID]
		if !ok {
			room.Mu.Unlock()
			continue
		}

		// Pick the successor before removal so the turn passes to the next
		// player in join order, not back to the first.
		next := room.NextPlayerID(connID)
		wasCurrent := room.CurrentPlayerId == connID
		room.RemovePlayer(connID)
		if wasCurrent {
			room.CurrentPlayerId = next
		}
		name := player.Name
		empty := room.PlayerCount() == 0
		room.Mu.Unlock()

		log.Info().Str("room", room.Code).Str("player", connID).
			Bool("was_current", wasCurrent).Msg("player disconnected")

		if empty {
			h.DeleteRoom(room.Code)
			continue
		}
		h.systemMessage(room, fmt.Sprintf("%s left the game", name))
		h.BroadcastRoomState(room)
	}
}

// recordWin ships a finished-game result to the leaderboard store. Fire and
// forget: game flow never waits on the database.
func (h *Hub) recordWin(roomCode, name string, score int) {
	if h.store == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.store.RecordWin(ctx, roomCode, name, score); err != nil {
			log.Error().Err(err).Str("room", roomCode).Str("player", name).
				Msg("failed to record win")
		}
	}()
}
