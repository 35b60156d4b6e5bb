package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ghost  = donburi.NewTag().SetName("Ghost")
	Food   = donburi.NewTag().SetName("Food")
)

// Resolv tags for slice-plane overlap checks
const (
	ResolvPlayer = "Player"
	ResolvGhost  = "Ghost"
	ResolvFood   = "Food"
)
