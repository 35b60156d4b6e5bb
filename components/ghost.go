package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type GhostData struct {
	MoveTime  float64 // seconds per step, from ghost-move-time
	MoveTimer float64 // seconds until the next step is chosen
	BobPhase  float64 // accumulated hover bob phase in radians
	Color     color.RGBA
}

var Ghost = donburi.NewComponentType[GhostData]()
