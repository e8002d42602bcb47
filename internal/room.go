package internal

import "slices"

// Methods (Room struct). Callers hold r.Mu.

// NextPlayerID returns the player who acts after current, wrapping to the
// first in join order. If current is no longer a member the first remaining
// player is returned; with no players left the result is "". Order is derived
// fresh on every call, never cached, so arbitrary joins and leaves between
// calls are safe.
func (r *Room) NextPlayerID(current string) string {
	if len(r.Order) == 0 {
		return ""
	}
	for i, id := range r.Order {
		if id == current {
			return r.Order[(i+1)%len(r.Order)]
		}
	}
	return r.Order[0]
}

// AddPlayer appends the player at the end of the turn order.
func (r *Room) AddPlayer(p *Player) {
	r.Players[p.Id] = p
	r.Order = append(r.Order, p.Id)
}

// RemovePlayer drops the player from both the map and the turn order.
func (r *Room) RemovePlayer(id string) {
	delete(r.Players, id)
	r.Order = slices.DeleteFunc(r.Order, func(s string) bool {
		return s == id
	})
}

func (r *Room) PlayerCount() int {
	return len(r.Players)
}

// HasRevealed reports whether the letter was already guessed this puzzle.
func (r *Room) HasRevealed(letter string) bool {
	return slices.Contains(r.Revealed, letter)
}
