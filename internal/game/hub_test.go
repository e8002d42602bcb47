package game

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scythe504/fortune-wheel-backend/internal"
)

// fakeConn records every envelope written to it so tests can assert on
// broadcast traffic without a real socket.
type fakeConn struct {
	id   string
	mu   sync.Mutex
	sent []json.RawMessage
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) WriteJSON(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.sent = append(c.sent, raw)
	c.mu.Unlock()
	return nil
}

// eventTypes returns the types of all recorded envelopes, in send order.
func (c *fakeConn) eventTypes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	types := make([]string, 0, len(c.sent))
	for _, raw := range c.sent {
		var env struct {
			Type string `json:"type"`
		}
		_ = json.Unmarshal(raw, &env)
		types = append(types, env.Type)
	}
	return types
}

// lastEvent unmarshals the data of the most recent envelope of the given type
// into out and reports whether one was found.
func (c *fakeConn) lastEvent(eventType string, out any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.sent) - 1; i >= 0; i-- {
		var env struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(c.sent[i], &env); err != nil || env.Type != eventType {
			continue
		}
		return json.Unmarshal(env.Data, out) == nil
	}
	return false
}

// newTestRoom creates a room hosted by "host" and joins one player per name.
func newTestRoom(t *testing.T, h *Hub, names ...string) (*internal.Room, *fakeConn, []*fakeConn) {
	t.Helper()
	host := &fakeConn{id: "host"}
	room := h.CreateRoom(host)

	conns := make([]*fakeConn, 0, len(names))
	for i, name := range names {
		c := &fakeConn{id: fmt.Sprintf("conn-%d", i)}
		require.NoError(t, h.JoinRoom(room.Code, name, c))
		conns = append(conns, c)
	}
	return room, host, conns
}

func TestCreateRoom(t *testing.T) {
	h := NewHub(nil)
	host := &fakeConn{id: "host"}
	room := h.CreateRoom(host)

	assert.Len(t, room.Code, internal.RoomCodeLength)
	assert.Equal(t, "host", room.HostId)
	assert.Equal(t, internal.StatusWaiting, room.Status)
	assert.Empty(t, room.Players)
	assert.Same(t, room, h.Room(room.Code))
}

func TestJoinRoom_FirstJoinerBecomesCurrent(t *testing.T) {
	h := NewHub(nil)
	room, _, _ := newTestRoom(t, h, "alice", "bob")

	assert.Equal(t, "conn-0", room.CurrentPlayerId)
	assert.Equal(t, []string{"conn-0", "conn-1"}, room.Order)
	assert.Equal(t, "alice", room.Players["conn-0"].Name)
}

func TestJoinRoom_UnknownCode(t *testing.T) {
	h := NewHub(nil)
	err := h.JoinRoom("NOPE42", "alice", &fakeConn{id: "x"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestJoinRoom_RepeatJoinIsNoop(t *testing.T) {
	h := NewHub(nil)
	room, _, conns := newTestRoom(t, h, "alice", "bob")

	// A second join from alice's connection must not grant a second turn slot.
	require.NoError(t, h.JoinRoom(room.Code, "alice again", conns[0]))

	assert.Equal(t, []string{"conn-0", "conn-1"}, room.Order)
	assert.Equal(t, 2, room.PlayerCount())
	assert.Equal(t, "alice", room.Players["conn-0"].Name)

	var update internal.StateUpdateData
	require.True(t, conns[1].lastEvent("stateUpdate", &update))
	assert.Len(t, update.Players, 2)
}

func TestJoinRoom_Full(t *testing.T) {
	h := NewHub(nil)
	host := &fakeConn{id: "host"}
	room := h.CreateRoom(host)

	for i := 0; i < internal.MaxPlayersPerRoom; i++ {
		c := &fakeConn{id: fmt.Sprintf("p-%d", i)}
		require.NoError(t, h.JoinRoom(room.Code, fmt.Sprintf("player-%d", i), c))
	}
	assert.Equal(t, internal.MaxPlayersPerRoom, room.PlayerCount())

	err := h.JoinRoom(room.Code, "latecomer", &fakeConn{id: "late"})
	assert.ErrorIs(t, err, ErrRoomFull)
	assert.Equal(t, internal.MaxPlayersPerRoom, room.PlayerCount())
}

func TestHandleDisconnect_SolePlayerDeletesRoom(t *testing.T) {
	h := NewHub(nil)
	room, _, _ := newTestRoom(t, h, "alice")

	h.HandleDisconnect("conn-0")

	assert.Nil(t, h.Room(room.Code))
}

func TestHandleDisconnect_CurrentPlayerPassesTurnInJoinOrder(t *testing.T) {
	h := NewHub(nil)
	room, _, _ := newTestRoom(t, h, "alice", "bob", "carol")

	// Make bob current, then drop him: carol (next in join order) is up,
	// not alice.
	room.Mu.Lock()
	room.CurrentPlayerId = "conn-1"
	room.Mu.Unlock()

	h.HandleDisconnect("conn-1")

	assert.Equal(t, "conn-2", room.CurrentPlayerId)
	assert.Equal(t, []string{"conn-0", "conn-2"}, room.Order)
	assert.NotNil(t, h.Room(room.Code))
}

func TestHandleDisconnect_NonCurrentPlayerKeepsTurn(t *testing.T) {
	h := NewHub(nil)
	room, _, conns := newTestRoom(t, h, "alice", "bob", "carol")

	h.HandleDisconnect("conn-2")

	assert.Equal(t, "conn-0", room.CurrentPlayerId)
	assert.Equal(t, 2, room.PlayerCount())

	// Remaining members hear about the departure and get fresh state.
	types := conns[0].eventTypes()
	assert.Contains(t, types, "message")
	assert.Contains(t, types, "stateUpdate")
}

func TestHandleDisconnect_UnknownConnIsNoop(t *testing.T) {
	h := NewHub(nil)
	room, _, _ := newTestRoom(t, h, "alice")

	h.HandleDisconnect("stranger")

	assert.NotNil(t, h.Room(room.Code))
	assert.Equal(t, 1, room.PlayerCount())
}
