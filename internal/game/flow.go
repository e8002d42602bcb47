package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/scythe504/fortune-wheel-backend/internal"
)

// NextPlayer is the host's manual turn override, legal in any status. The
// turn advances in join order, any pending spin is discarded, and the room
// drops back to waiting.
func (h *Hub) NextPlayer(connID, code string) {
	room := h.Room(code)
	if room == nil {
		return
	}

	room.Mu.Lock()
	if room.HostId != connID {
		room.Mu.Unlock()
		log.Debug().Str("room", code).Str("conn", connID).Msg("nextPlayer from non-host ignored")
		return
	}
	room.CurrentPlayerId = room.NextPlayerID(room.CurrentPlayerId)
	room.Status = internal.StatusWaiting
	room.CurrentSpin = nil

	var nextName string
	if p := room.Players[room.CurrentPlayerId]; p != nil {
		nextName = p.Name
	}
	room.Mu.Unlock()

	log.Info().Str("room", code).Str("next", nextName).Msg("turn advanced by host")

	if nextName != "" {
		h.systemMessage(room, fmt.Sprintf("%s is up next", nextName))
	}
	h.BroadcastRoomState(room)
}
