package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/scythe504/fortune-wheel-backend/internal"
	"github.com/scythe504/fortune-wheel-backend/internal/utils"
)

// GuessLetter resolves a single-letter guess against the pending money spin.
// Current player only, and only while the room is in the guessing status. A
// hit banks count x segment value and keeps the turn; a miss passes it. Either
// way the spin is consumed and the mask recomputed; a fully revealed phrase
// finishes the game.
func (h *Hub) GuessLetter(connID, code, letter string) internal.GuessResult {
	room := h.Room(code)
	if room == nil {
		return internal.GuessResult{Message: "room not found"}
	}

	room.Mu.Lock()
	if room.CurrentPlayerId != connID || room.Status != internal.StatusGuessing {
		room.Mu.Unlock()
		return internal.GuessResult{Message: "not your turn to guess"}
	}

	normalized, ok := utils.NormalizeLetter(letter)
	if !ok {
		room.Mu.Unlock()
		return internal.GuessResult{Message: "guess a single letter A-Z"}
	}
	if room.HasRevealed(normalized) {
		room.Mu.Unlock()
		return internal.GuessResult{Message: fmt.Sprintf("%s was already guessed", normalized)}
	}

	player := room.Players[connID]
	name := player.Name

	room.Revealed = append(room.Revealed, normalized)
	count := strings.Count(room.Phrase, normalized)

	award := 0
	if count > 0 && room.CurrentSpin != nil &&
		room.CurrentSpin.Segment.Type == internal.SegmentMoney {
		award = count * room.CurrentSpin.Segment.Value
		player.Score += award
	}
	if count == 0 {
		room.CurrentPlayerId = room.NextPlayerID(connID)
	}

	room.MaskedPhrase = utils.MaskPhrase(room.Phrase, room.Revealed)
	room.CurrentSpin = nil
	room.Status = internal.StatusWaiting

	completed := room.MaskedPhrase == room.Phrase
	if completed {
		room.Solved = true
		room.Status = internal.StatusSolved
	}
	score := player.Score
	room.Mu.Unlock()

	log.Info().Str("room", code).Str("player", connID).Str("letter", normalized).
		Int("count", count).Int("award", award).Msg("letter guessed")

	if count > 0 {
		h.systemMessage(room, fmt.Sprintf("%s found %d x %s (+$%d)", name, count, normalized, award))
	} else {
		h.systemMessage(room, fmt.Sprintf("No %s in the puzzle, %s loses the turn", normalized, name))
	}
	if completed {
		h.systemMessage(room, fmt.Sprintf("Puzzle complete! %s revealed the last letter", name))
		h.recordWin(code, name, score)
	}
	h.BroadcastRoomState(room)

	return internal.GuessResult{Success: true, Count: count}
}
