package game

import (
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/scythe504/fortune-wheel-backend/internal"
)

// =============================================================================
// BROADCASTING & STATE PROJECTION
// =============================================================================

// broadcastToRoom sends msg to every connection in the room. Connections are
// snapshotted under the room lock; writes happen after unlock so a slow socket
// never stalls game state.
func broadcastToRoom[T any](room *internal.Room, msg internal.Message[T]) {
	room.Mu.Lock()
	conns := make([]internal.Conn, 0, len(room.Players))
	for _, p := range room.Players {
		if p != nil && p.Conn != nil {
			conns = append(conns, p.Conn)
		}
	}
	room.Mu.Unlock()

	for _, c := range conns {
		if err := c.WriteJSON(msg); err != nil {
			log.Warn().Err(err).Str("room", room.Code).Str("conn", c.ID()).
				Str("event", msg.Type).Msg("broadcast write failed")
		}
	}
}

// projectRoom builds the public view of a room. Caller holds room.Mu. The
// secret phrase is deliberately absent; clients get the masked form and the
// phrase length only.
func projectRoom(room *internal.Room) internal.StateUpdateData {
	players := make([]internal.PublicPlayer, 0, len(room.Order))
	for _, id := range room.Order {
		p := room.Players[id]
		if p == nil {
			continue
		}
		players = append(players, internal.PublicPlayer{
			Id:    p.Id,
			Name:  p.Name,
			Score: p.Score,
		})
	}

	revealed := make([]string, len(room.Revealed))
	copy(revealed, room.Revealed)

	var spin *internal.Spin
	if room.CurrentSpin != nil {
		s := *room.CurrentSpin
		spin = &s
	}

	return internal.StateUpdateData{
		RoomCode: room.Code,
		Players:  players,
		State: internal.RoomState{
			Category:        room.Category,
			MaskedPhrase:    room.MaskedPhrase,
			RevealedLetters: revealed,
			CurrentPlayerId: room.CurrentPlayerId,
			CurrentSpin:     spin,
			Status:          room.Status,
			Solved:          room.Solved,
			PhraseLength:    utf8.RuneCountInString(room.Phrase),
		},
	}
}

// BroadcastRoomState emits a stateUpdate event with the public view to every
// room member. A no-op when the room has already been deleted (races with
// disconnect cleanup are expected).
func (h *Hub) BroadcastRoomState(room *internal.Room) {
	if room == nil {
		return
	}
	h.mu.RLock()
	_, live := h.rooms[room.Code]
	h.mu.RUnlock()
	if !live {
		return
	}

	room.Mu.Lock()
	data := projectRoom(room)
	room.Mu.Unlock()

	broadcastToRoom(room, internal.Message[internal.StateUpdateData]{
		Type: "stateUpdate",
		Data: data,
	})
}

// systemMessage broadcasts a system chat line to the room.
func (h *Hub) systemMessage(room *internal.Room, text string) {
	broadcastToRoom(room, internal.Message[internal.SystemMessageData]{
		Type: "message",
		Data: internal.SystemMessageData{Type: "system", Text: text},
	})
}
