package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/scythe504/fortune-wheel-backend/internal"
)

// SpinWheel draws a uniformly random segment for the current player and
// resolves it in one critical section: bankrupt wipes the player's score and
// passes the turn, loseTurn just passes the turn, money waits in CurrentSpin
// for the follow-up letter guess. The spinResult event goes out after unlock,
// before the announcement and state update, so clients can animate to the
// drawn slot.
func (h *Hub) SpinWheel(connID, code string) {
	room := h.Room(code)
	if room == nil {
		return
	}

	room.Mu.Lock()
	if room.CurrentPlayerId != connID || room.Status != internal.StatusWaiting ||
		room.Phrase == "" {
		room.Mu.Unlock()
		log.Debug().Str("room", code).Str("conn", connID).Msg("spinWheel rejected")
		return
	}
	player := room.Players[connID]
	name := player.Name

	idx := h.roll(len(internal.Wheel))
	segment := internal.Wheel[idx]
	room.CurrentSpin = &internal.Spin{SegmentIndex: idx, Segment: segment}
	room.Status = internal.StatusSpinning

	var text string
	switch segment.Type {
	case internal.SegmentBankrupt:
		player.Score = 0
		room.CurrentSpin = nil
		room.Status = internal.StatusWaiting
		room.CurrentPlayerId = room.NextPlayerID(connID)
		text = fmt.Sprintf("%s went BANKRUPT!", name)
	case internal.SegmentLoseTurn:
		room.CurrentSpin = nil
		room.Status = internal.StatusWaiting
		room.CurrentPlayerId = room.NextPlayerID(connID)
		text = fmt.Sprintf("%s loses a turn", name)
	case internal.SegmentMoney:
		room.Status = internal.StatusGuessing
	}
	room.Mu.Unlock()

	log.Info().Str("room", code).Str("player", connID).Int("index", idx).
		Str("segment", segment.Label).Msg("wheel spun")

	broadcastToRoom(room, internal.Message[internal.SpinResultData]{
		Type: "spinResult",
		Data: internal.SpinResultData{RoomCode: code, Index: idx, Segment: segment},
	})
	if text != "" {
		h.systemMessage(room, text)
	}
	h.BroadcastRoomState(room)
}
