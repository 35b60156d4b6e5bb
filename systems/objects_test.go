package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
	"github.com/automoto/hypermaze/systems/factory"
	"github.com/automoto/hypermaze/world"
)

// newChaseWorld builds the minimal entity set UpdateObjects runs against.
func newChaseWorld(t *testing.T, foodTotal int) (*ecs.ECS, *components.SessionData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	_, err := factory.CreateMaze(e, [4]int{2, 2, 1, 1}, 1)
	require.NoError(t, err)

	spaceEntry := factory.CreateSpace(e, 2, 2)
	space := components.Space.Get(spaceEntry)

	player := factory.CreatePlayer(e, world.Cell{0, 0, 0, 0})
	space.Add(components.Object.Get(player).Object)

	factory.CreateSession(e, foodTotal, 0)
	return e, currentSession(e)
}

func TestZeroFoodRunWinsImmediately(t *testing.T) {
	e, session := newChaseWorld(t, 0)
	require.NotNil(t, session)

	UpdateObjects(e)

	assert.Equal(t, components.StateWon, session.State)
}

func TestRunStaysOpenWhileFoodRemains(t *testing.T) {
	e, session := newChaseWorld(t, 2)
	require.NotNil(t, session)

	UpdateObjects(e)

	assert.Equal(t, components.StatePlaying, session.State)
}
