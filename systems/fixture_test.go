package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/data"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
	"github.com/noamm-opencalw/chromatic-rush-game/spawners"
	"github.com/noamm-opencalw/chromatic-rush-game/storage"
)

const tick = 1.0 / 60

type fixture struct {
	world   *ecs.World
	cfg     *config.Game
	lib     *data.Library
	spawner *spawners.EntitySpawner
	state   *GameState
	store   *storage.MemoryStore
	rng     *rand.Rand
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lib, err := data.LoadDefault()
	require.NoError(t, err)
	cfg := config.Default()
	world := ecs.NewWorld()
	return &fixture{
		world:   world,
		cfg:     cfg,
		lib:     lib,
		spawner: spawners.NewEntitySpawner(world, lib, cfg, zap.NewNop()),
		state:   NewGameState(0),
		store:   storage.NewMemoryStore(),
		rng:     rand.New(rand.NewSource(42)),
	}
}

// record collects every event of the given type
func record[T ecs.Event](w *ecs.World, eventType ecs.EventType) *[]T {
	var got []T
	w.GetEventManager().Subscribe(eventType, func(event ecs.Event) {
		got = append(got, event.(T))
	})
	return &got
}
