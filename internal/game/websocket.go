package game

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/scythe504/fortune-wheel-backend/internal"
)

// =============================================================================
// WEBSOCKET CONNECTION HANDLING
// =============================================================================

var Upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn adapts a gorilla connection to internal.Conn. Writes are serialized
// because broadcasts and acks can race on the same socket.
type wsConn struct {
	id   string
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) ID() string {
	return c.id
}

func (c *wsConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// HandleWebSocket upgrades the connection, assigns it an identity, and starts
// the read loop.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	client := &wsConn{id: uuid.NewString(), conn: conn}
	log.Info().Str("conn", client.id).Str("remote", r.RemoteAddr).Msg("client connected")
	go h.readLoop(client)
}

// readLoop parses inbound envelopes and dispatches them. A read error of any
// kind counts as a disconnect.
func (h *Hub) readLoop(client *wsConn) {
	defer func() {
		client.conn.Close()
		h.HandleDisconnect(client.id)
		log.Info().Str("conn", client.id).Msg("client disconnected")
	}()

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("conn", client.id).Msg("read loop ended")
			return
		}

		var base internal.Message[json.RawMessage]
		if err := json.Unmarshal(raw, &base); err != nil {
			log.Debug().Err(err).Str("conn", client.id).Msg("malformed envelope")
			continue
		}
		h.dispatch(client, base)
	}
}

// dispatch routes one inbound event. Events with an ack contract reply only
// to the acting connection; the rest apply silently or not at all.
func (h *Hub) dispatch(client *wsConn, msg internal.Message[json.RawMessage]) {
	switch msg.Type {
	case "createRoom":
		room := h.CreateRoom(client)
		ack(client, "createRoomResult", internal.CreateRoomResult{
			Success:  true,
			RoomCode: room.Code,
		})

	case "joinRoom":
		var data internal.JoinRoomData
		if !decode(client, msg, &data) {
			return
		}
		if data.Name == "" {
			data.Name = "Anonymous"
		}
		result := internal.JoinRoomResult{Success: true}
		if err := h.JoinRoom(data.RoomCode, data.Name, client); err != nil {
			result = internal.JoinRoomResult{Success: false, Message: err.Error()}
		}
		ack(client, "joinRoomResult", result)

	case "setPuzzle":
		var data internal.SetPuzzleData
		if !decode(client, msg, &data) {
			return
		}
		h.SetPuzzle(client.id, data.RoomCode, data.Category, data.Phrase)

	case "spinWheel":
		var data internal.SpinWheelData
		if !decode(client, msg, &data) {
			return
		}
		h.SpinWheel(client.id, data.RoomCode)

	case "guessLetter":
		var data internal.GuessLetterData
		if !decode(client, msg, &data) {
			return
		}
		ack(client, "guessResult", h.GuessLetter(client.id, data.RoomCode, data.Letter))

	case "solvePuzzle":
		var data internal.SolvePuzzleData
		if !decode(client, msg, &data) {
			return
		}
		ack(client, "solveResult", h.SolvePuzzle(client.id, data.RoomCode, data.Guess))

	case "nextPlayer":
		var data internal.NextPlayerData
		if !decode(client, msg, &data) {
			return
		}
		h.NextPlayer(client.id, data.RoomCode)

	default:
		log.Debug().Str("conn", client.id).Str("event", msg.Type).Msg("unknown event")
	}
}

func ack[T any](client *wsConn, event string, data T) {
	if err := client.WriteJSON(internal.Message[T]{Type: event, Data: data}); err != nil {
		log.Warn().Err(err).Str("conn", client.id).Str("event", event).Msg("ack write failed")
	}
}

func decode(client *wsConn, msg internal.Message[json.RawMessage], v any) bool {
	if err := json.Unmarshal(msg.Data, v); err != nil {
		log.Debug().Err(err).Str("conn", client.id).Str("event", msg.Type).
			Msg("malformed event payload")
		return false
	}
	return true
}
