package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/scythe504/fortune-wheel-backend/internal"
	"github.com/scythe504/fortune-wheel-backend/internal/utils"
)

// SetPuzzle installs a fresh puzzle. Host only, any status; unauthorized or
// empty-phrase requests are dropped silently per the no-ack error policy.
func (h *Hub) SetPuzzle(connID, code, category, phrase string) {
	room := h.Room(code)
	if room == nil {
		return
	}

	room.Mu.Lock()
	if room.HostId != connID {
		room.Mu.Unlock()
		log.Debug().Str("room", code).Str("conn", connID).Msg("setPuzzle from non-host ignored")
		return
	}
	phrase = strings.ToUpper(strings.TrimSpace(phrase))
	if phrase == "" {
		room.Mu.Unlock()
		log.Debug().Str("room", code).Msg("setPuzzle with empty phrase ignored")
		return
	}

	room.Category = category
	room.Phrase = phrase
	room.Revealed = nil
	room.MaskedPhrase = utils.MaskPhrase(phrase, nil)
	room.Status = internal.StatusWaiting
	room.Solved = false
	room.CurrentSpin = nil
	room.Mu.Unlock()

	log.Info().Str("room", code).Str("category", category).
		Int("phrase_len", len(phrase)).Msg("puzzle set")

	h.systemMessage(room, fmt.Sprintf("New puzzle! Category: %s", category))
	h.BroadcastRoomState(room)
}

// SolvePuzzle compares a full-phrase guess against the secret. Current player
// only; rejected once solved. Correct solves bank the fixed bonus; wrong
// attempts just pass the turn.
func (h *Hub) SolvePuzzle(connID, code, guess string) internal.SolveResult {
	room := h.Room(code)
	if room == nil {
		return internal.SolveResult{}
	}

	room.Mu.Lock()
	if room.CurrentPlayerId != connID || room.Solved || room.Phrase == "" {
		room.Mu.Unlock()
		return internal.SolveResult{}
	}
	player := room.Players[connID]
	name := player.Name

	if strings.ToUpper(strings.TrimSpace(guess)) != room.Phrase {
		room.CurrentPlayerId = room.NextPlayerID(connID)
		room.Status = internal.StatusWaiting
		room.CurrentSpin = nil
		room.Mu.Unlock()

		log.Info().Str("room", code).Str("player", connID).Msg("solve attempt wrong")
		h.systemMessage(room, fmt.Sprintf("%s tried to solve and missed", name))
		h.BroadcastRoomState(room)
		return internal.SolveResult{Success: true, Correct: false}
	}

	room.Solved = true
	room.Status = internal.StatusSolved
	room.MaskedPhrase = room.Phrase
	room.CurrentSpin = nil
	player.Score += internal.SolveBonus
	score := player.Score
	room.Mu.Unlock()

	log.Info().Str("room", code).Str("player", connID).Int("score", score).
		Msg("puzzle solved")

	h.systemMessage(room, fmt.Sprintf("%s solved the puzzle!", name))
	h.BroadcastRoomState(room)
	h.recordWin(code, name, score)
	return internal.SolveResult{Success: true, Correct: true}
}
