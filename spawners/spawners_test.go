package spawners

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/data"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

func newTestSpawner(t *testing.T) (*ecs.World, *EntitySpawner) {
	t.Helper()
	lib, err := data.LoadDefault()
	require.NoError(t, err)
	world := ecs.NewWorld()
	return world, NewEntitySpawner(world, lib, config.Default(), zap.NewNop())
}

func TestCreatePlayer(t *testing.T) {
	world, s := newTestSpawner(t)
	player := s.CreatePlayer(100)
	world.Flush()

	require.Same(t, player, world.Entities.First(components.TagPlayer))
	assert.True(t, player.HasComponents(components.Transform, components.Velocity, components.Physics,
		components.Collider, components.Sprite, components.Health, components.PlayerController))

	comp, _ := player.GetComponent(components.Transform)
	transform := comp.(*components.TransformComponent)
	assert.Equal(t, config.Default().Physics.GroundY, transform.Bottom())
}

func TestCreateObstacle_AIKinds(t *testing.T) {
	world, s := newTestSpawner(t)

	drone, err := s.CreateObstacle("drone", 500, 50)
	require.NoError(t, err)
	guard, err := s.CreateObstacle("security_guard", 900, 0)
	require.NoError(t, err)
	barrier, err := s.CreateObstacle("barrier", 1200, 0)
	require.NoError(t, err)
	world.Flush()

	comp, ok := drone.GetComponent(components.AIController)
	require.True(t, ok)
	assert.Equal(t, components.BehaviorPatrol, comp.(*components.AIControllerComponent).Behavior)
	vel, _ := drone.GetComponent(components.Velocity)
	assert.Zero(t, vel.(*components.VelocityComponent).GravityScale)

	comp, ok = guard.GetComponent(components.AIController)
	require.True(t, ok)
	assert.Equal(t, components.BehaviorGuard, comp.(*components.AIControllerComponent).Behavior)

	assert.False(t, barrier.HasComponent(components.AIController))
	assert.Len(t, world.Entities.QueryByTag(components.TagObstacle), 3)
	assert.Len(t, world.Entities.QueryByTag(components.TagEnemy), 2)

	_, err = s.CreateObstacle("ghost", 0, 0)
	assert.Error(t, err)
}

func TestCreateBuilding_Paintable(t *testing.T) {
	world, s := newTestSpawner(t)
	plain := s.CreateBuilding(data.BuildingTemplate{Kind: "brick"}, 0, 200, 300, false)
	art := s.CreateBuilding(data.BuildingTemplate{Kind: "glass"}, 300, 200, 300, true)
	world.Flush()

	assert.False(t, plain.HasComponent(components.StreetArt))
	assert.True(t, art.HasComponents(components.StreetArt, components.Collider))
	assert.Equal(t, []*ecs.Entity{art}, world.Entities.QueryByTag(components.TagStreetArt))
}

func TestWeightedTable(t *testing.T) {
	table := NewWeightedTable([]WeightedEntry[string]{
		{Value: "common", Weight: 9},
		{Value: "rare", Weight: 1},
		{Value: "never", Weight: 0},
	})
	assert.Equal(t, 2, table.Len())

	rng := rand.New(rand.NewSource(7))
	counts := map[string]int{}
	for i := 0; i < 5000; i++ {
		v, ok := table.Pick(rng)
		require.True(t, ok)
		counts[v]++
	}
	assert.Zero(t, counts["never"])
	assert.Greater(t, counts["common"], counts["rare"]*4)
	assert.Positive(t, counts["rare"])

	_, ok := NewWeightedTable[int](nil).Pick(rng)
	assert.False(t, ok)
}
