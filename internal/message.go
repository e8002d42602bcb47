package internal

// Message is the JSON envelope for every websocket event, inbound and
// outbound.
type Message[T any] struct {
	Type string `json:"type"`
	Data T      `json:"data"`
}

// Inbound event payloads.

type JoinRoomData struct {
	RoomCode string `json:"roomCode"`
	Name     string `json:"name"`
}

type SetPuzzleData struct {
	RoomCode string `json:"roomCode"`
	Category string `json:"category"`
	Phrase   string `json:"phrase"`
}

type SpinWheelData struct {
	RoomCode string `json:"roomCode"`
}

type GuessLetterData struct {
	RoomCode string `json:"roomCode"`
	Letter   string `json:"letter"`
}

type SolvePuzzleData struct {
	RoomCode string `json:"roomCode"`
	Guess    string `json:"guess"`
}

type NextPlayerData struct {
	RoomCode string `json:"roomCode"`
}

// Acknowledgment payloads, sent only to the acting connection.

type CreateRoomResult struct {
	Success  bool   `json:"success"`
	RoomCode string `json:"roomCode,omitempty"`
}

type JoinRoomResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type GuessResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
}

type SolveResult struct {
	Success bool `json:"success"`
	Correct bool `json:"correct"`
}

// Broadcast payloads.

// PublicPlayer is the player view shared with the whole room. Scores are
// public, so nothing else needs hiding.
type PublicPlayer struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// RoomState is the public projection of a Room. The secret phrase itself never
// appears here, only its masked form and length.
type RoomState struct {
	Category        string     `json:"category"`
	MaskedPhrase    string     `json:"maskedPhrase"`
	RevealedLetters []string   `json:"revealedLetters"`
	CurrentPlayerId string     `json:"currentPlayerId,omitempty"`
	CurrentSpin     *Spin      `json:"currentSpin,omitempty"`
	Status          RoomStatus `json:"status"`
	Solved          bool       `json:"solved"`
	PhraseLength    int        `json:"phraseLength"`
}

type StateUpdateData struct {
	RoomCode string         `json:"roomCode"`
	Players  []PublicPlayer `json:"players"`
	State    RoomState      `json:"state"`
}

type SpinResultData struct {
	RoomCode string       `json:"roomCode"`
	Index    int          `json:"index"`
	Segment  WheelSegment `json:"segment"`
}

type SystemMessageData struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is the envelope for plain HTTP endpoints (health, leaderboard).
type Response struct {
	StatusCode    int   `json:"status_code"`
	RespStartTime int64 `json:"resp_time_start_ms"`
	RespEndTime   int64 `json:"resp_time_end_ms"`
	NetRespTime   int64 `json:"net_resp_time_ms"`
	Data          any   `json:"data"`
}
