package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/hypermaze/config"
)

type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

var Input = donburi.NewComponentType[InputData]()

// JustPressed reports a rising edge for the action this frame.
func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}
