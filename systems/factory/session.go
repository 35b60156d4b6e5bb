package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/archetypes"
	"github.com/automoto/hypermaze/components"
)

func CreateSession(ecs *ecs.ECS, foodTotal int, bestTime float64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		State:     components.StatePlaying,
		FoodTotal: foodTotal,
		BestTime:  bestTime,
	})
	return session
}
