package factory

import (
	"math"
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/archetypes"
	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/tags"
	"github.com/automoto/hypermaze/world"
)

func CreateFood(ecs *ecs.ECS, cell world.Cell, rng *rand.Rand) *donburi.Entry {
	food := archetypes.Food.Spawn(ecs)

	size := cfg.Food.Radius * 2 * components.PixelsPerCell
	obj := resolv.NewObject(
		(float64(cell[world.AxisX])+0.5)*components.PixelsPerCell-size/2,
		(float64(cell[world.AxisY])+0.5)*components.PixelsPerCell-size/2,
		size, size,
	)
	obj.AddTags(tags.ResolvFood)
	obj.Data = food
	components.Object.SetValue(food, components.ObjectData{Object: obj})

	components.Food.SetValue(food, components.FoodData{
		Cell:     cell,
		BobPhase: rng.Float64() * 2 * math.Pi,
	})

	return food
}
