package generation

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/data"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
	"github.com/noamm-opencalw/chromatic-rush-game/spawners"
)

// Building height range
const (
	buildingMinHeight = 180.0
	buildingMaxHeight = 400.0
)

// WorldGenerator streams obstacles, collectibles and buildings in ahead of
// the player and marks content far behind for destruction
type WorldGenerator struct {
	world         *ecs.World
	entitySpawner *spawners.EntitySpawner
	templates     *data.Library
	cfg           config.World
	log           *zap.Logger
	rng           *rand.Rand

	spawnCursor    float64
	buildingCursor float64

	// PatternCounts counts emitted patterns by id
	PatternCounts map[string]int
}

// NewWorldGenerator creates a new world generator. startX is the player's
// starting position.
func NewWorldGenerator(world *ecs.World, entitySpawner *spawners.EntitySpawner, templates *data.Library,
	cfg config.World, startX float64, log *zap.Logger) *WorldGenerator {
	g := &WorldGenerator{
		world:         world,
		entitySpawner: entitySpawner,
		templates:     templates,
		cfg:           cfg,
		log:           log,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.Reset(startX)
	return g
}

// SetSeed allows setting a specific seed for reproducible generation
func (g *WorldGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Reset rewinds both cursors for a new run starting at startX
func (g *WorldGenerator) Reset(startX float64) {
	g.spawnCursor = startX + g.cfg.FirstPatternX
	g.buildingCursor = startX - g.cfg.CleanupBehind
	g.PatternCounts = make(map[string]int)
}

// Cursors returns the pattern and building cursor positions
func (g *WorldGenerator) Cursors() (spawn, building float64) {
	return g.spawnCursor, g.buildingCursor
}

// Update keeps both cursors ahead of playerX and cleans up behind it.
// distance is the total run distance used to gate patterns.
func (g *WorldGenerator) Update(playerX, distance float64) {
	for g.spawnCursor < playerX+g.cfg.SpawnLookahead {
		pattern, ok := g.pickPattern(distance)
		if !ok {
			g.spawnCursor += g.cfg.PatternSpacing
			continue
		}
		g.emitPattern(pattern, g.spawnCursor)
		g.spawnCursor += g.cfg.PatternSpacing + g.rng.Float64()*g.cfg.PatternJitter
	}

	for g.buildingCursor < playerX+g.cfg.BuildingLookahead {
		g.buildingCursor += g.spawnBuilding(g.buildingCursor)
	}

	g.cleanup(playerX)
}

// EligiblePatterns returns the patterns whose distance gate is met
func (g *WorldGenerator) EligiblePatterns(distance float64) []data.PatternTemplate {
	var eligible []data.PatternTemplate
	for _, pattern := range g.templates.Patterns {
		if distance >= pattern.MinDistance && pattern.Weight > 0 {
			eligible = append(eligible, pattern)
		}
	}
	return eligible
}

// pickPattern draws a weighted random pattern among the eligible ones
func (g *WorldGenerator) pickPattern(distance float64) (data.PatternTemplate, bool) {
	eligible := g.EligiblePatterns(distance)
	entries := make([]spawners.WeightedEntry[data.PatternTemplate], 0, len(eligible))
	for _, pattern := range eligible {
		entries = append(entries, spawners.WeightedEntry[data.PatternTemplate]{Value: pattern, Weight: pattern.Weight})
	}
	return spawners.NewWeightedTable(entries).Pick(g.rng)
}

func (g *WorldGenerator) emitPattern(pattern data.PatternTemplate, x float64) {
	for _, placement := range pattern.Placements {
		var err error
		switch placement.Type {
		case data.PlacementObstacle:
			_, err = g.entitySpawner.CreateObstacle(placement.Kind, x+placement.DX, placement.Height)
		case data.PlacementCollectible:
			_, err = g.entitySpawner.CreateCollectible(placement.Kind, x+placement.DX, placement.Height)
		}
		if err != nil {
			g.log.Warn("pattern placement skipped",
				zap.String("pattern", pattern.ID),
				zap.String("kind", placement.Kind),
				zap.Error(err))
		}
	}
	g.PatternCounts[pattern.ID]++
	g.log.Debug("pattern emitted", zap.String("pattern", pattern.ID), zap.Float64("x", x))
}

// spawnBuilding creates one building at x and returns the cursor advance
func (g *WorldGenerator) spawnBuilding(x float64) float64 {
	width := g.cfg.BuildingMinWidth + g.rng.Float64()*(g.cfg.BuildingMaxWidth-g.cfg.BuildingMinWidth)
	gap := g.cfg.BuildingGapMin + g.rng.Float64()*(g.cfg.BuildingGapMax-g.cfg.BuildingGapMin)
	if len(g.templates.Buildings) == 0 {
		return width + gap
	}

	height := buildingMinHeight + g.rng.Float64()*(buildingMaxHeight-buildingMinHeight)
	template := g.templates.Buildings[g.rng.Intn(len(g.templates.Buildings))]
	paintable := g.rng.Float64() < g.cfg.StreetArtChance

	g.entitySpawner.CreateBuilding(template, x, width, height, paintable)
	return width + gap
}

// cleanup marks obstacles, collectibles and buildings whose right edge is
// more than CleanupBehind units behind the player
func (g *WorldGenerator) cleanup(playerX float64) {
	limit := playerX - g.cfg.CleanupBehind
	for _, tag := range []string{components.TagObstacle, components.TagCollectible, components.TagBuilding} {
		for _, entity := range g.world.Entities.QueryByTag(tag) {
			if entity.PendingDestroy {
				continue
			}
			transform := components.GetTransform(entity)
			if transform == nil {
				continue
			}
			if transform.X+transform.W < limit {
				entity.Destroy()
			}
		}
	}
}
