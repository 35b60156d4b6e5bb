package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Score       int
	PortalFlash int // frames of tint left after a w-portal crossing
}

var Player = donburi.NewComponentType[PlayerData]()
