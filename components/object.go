package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// PixelsPerCell is the scale between maze cell units and the resolv
// collision space used for slice-plane overlap checks.
const PixelsPerCell = 16
