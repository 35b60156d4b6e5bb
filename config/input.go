package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionNorth
	ActionSouth
	ActionWest
	ActionEast
	ActionAscend
	ActionDescend
	ActionPortalLeft
	ActionPortalRight
	ActionConfirm
	ActionBack
	ActionCount // Must be last - used for array sizing
)

// MoveActions lists the eight maze moves in controls-overlay order.
var MoveActions = [8]ActionID{
	ActionNorth, ActionSouth, ActionWest, ActionEast,
	ActionAscend, ActionDescend, ActionPortalLeft, ActionPortalRight,
}

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys  []ebiten.Key
	Label string // short name shown in the controls overlay
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Cell delta each move action applies on the x, y, z, w axes
	Deltas map[ActionID][4]int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionNorth:       {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, Label: "W"},
			ActionSouth:       {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, Label: "S"},
			ActionWest:        {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, Label: "A"},
			ActionEast:        {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, Label: "D"},
			ActionAscend:      {Keys: []ebiten.Key{ebiten.KeySpace}, Label: "SPC"},
			ActionDescend:     {Keys: []ebiten.Key{ebiten.KeyControlLeft}, Label: "CTL"},
			ActionPortalLeft:  {Keys: []ebiten.Key{ebiten.KeyQ}, Label: "Q"},
			ActionPortalRight: {Keys: []ebiten.Key{ebiten.KeyE}, Label: "E"},
			ActionConfirm:     {Keys: []ebiten.Key{ebiten.KeyEnter}, Label: "ENTER"},
			ActionBack:        {Keys: []ebiten.Key{ebiten.KeyEscape}, Label: "ESC"},
		},
		Deltas: map[ActionID][4]int{
			ActionNorth:       {0, -1, 0, 0},
			ActionSouth:       {0, 1, 0, 0},
			ActionWest:        {-1, 0, 0, 0},
			ActionEast:        {1, 0, 0, 0},
			ActionAscend:      {0, 0, 1, 0},
			ActionDescend:     {0, 0, -1, 0},
			ActionPortalLeft:  {0, 0, 0, -1},
			ActionPortalRight: {0, 0, 0, 1},
		},
	}
}
