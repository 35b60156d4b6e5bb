package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/hypermaze/world"
)

type FoodData struct {
	Cell     world.Cell
	BobPhase float64 // per-pellet bob offset so pellets don't pulse in lockstep
}

var Food = donburi.NewComponentType[FoodData]()
