package components

import (
	"github.com/yohamta/donburi"
)

// GameStateID tracks the session outcome.
type GameStateID int

const (
	StatePlaying GameStateID = iota
	StateWon
	StateLost
)

// SessionData holds one run of the maze: outcome, score and the stopwatch.
type SessionData struct {
	State     GameStateID
	FoodTotal int
	Elapsed   float64 // seconds in StatePlaying
	BestTime  float64 // best completion for these dimensions; 0 = none yet
}

var Session = donburi.NewComponentType[SessionData]()
