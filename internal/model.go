package internal

import (
	"sync"
)

const (
	MaxPlayersPerRoom = 6
	RoomCodeLength    = 6

	// SolveBonus is awarded on top of banked winnings for solving the puzzle.
	SolveBonus = 1000
)

type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusSpinning RoomStatus = "spinning"
	StatusGuessing RoomStatus = "guessing"
	StatusSolved   RoomStatus = "solved"
)

type SegmentType string

const (
	SegmentMoney    SegmentType = "money"
	SegmentLoseTurn SegmentType = "loseTurn"
	SegmentBankrupt SegmentType = "bankrupt"
)

// WheelSegment is one outcome slot on the wheel. The catalog in wheel.go is
// shared read-only state; segments are only ever copied, never mutated.
type WheelSegment struct {
	Type  SegmentType `json:"type"`
	Value int         `json:"value"`
	Label string      `json:"label"`
}

// Spin is the pending outcome of a wheel spin. Money segments keep it alive
// until the follow-up letter guess; bankrupt and loseTurn clear it right away.
type Spin struct {
	SegmentIndex int          `json:"index"`
	Segment      WheelSegment `json:"segment"`
}

// Conn is the write side of a client connection. The transport layer owns the
// read loop and identity assignment; the game core only needs a stable id for
// the life of the connection and a way to push events at it.
type Conn interface {
	ID() string
	WriteJSON(v any) error
}

type Player struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`

	Conn Conn `json:"-"`
}

// Room is one independent game session. Players maps connection id to Player;
// Order holds the same ids in join order, which is also turn order. All fields
// are guarded by Mu.
type Room struct {
	Code   string
	HostId string

	Players map[string]*Player
	Order   []string

	Category     string
	Phrase       string // uppercase secret, never serialized
	Revealed     []string
	MaskedPhrase string

	CurrentPlayerId string
	CurrentSpin     *Spin
	Status          RoomStatus
	Solved          bool

	Mu sync.Mutex
}
