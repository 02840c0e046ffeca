package systems

import (
	"go.uber.org/zap"

	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
	"github.com/noamm-opencalw/chromatic-rush-game/storage"
)

// Achievement is one named unlockable
type Achievement struct {
	ID          string
	Name        string
	Description string
	// Condition reports whether the run has earned the achievement
	Condition func(state *GameState) bool
}

// DefaultAchievements returns the stock achievement registry
func DefaultAchievements() []Achievement {
	return []Achievement{
		{
			ID: "first_steps", Name: "First Steps", Description: "Run 500 meters",
			Condition: func(g *GameState) bool { return g.Distance >= 500 },
		},
		{
			ID: "marathon", Name: "Marathon", Description: "Run 10000 meters",
			Condition: func(g *GameState) bool { return g.Distance >= 10000 },
		},
		{
			ID: "first_piece", Name: "First Piece", Description: "Paint your first wall",
			Condition: func(g *GameState) bool { return g.PaintedWalls >= 1 },
		},
		{
			ID: "street_artist", Name: "Street Artist", Description: "Paint 10 walls",
			Condition: func(g *GameState) bool { return g.PaintedWalls >= 10 },
		},
		{
			ID: "collector", Name: "Collector", Description: "Collect 50 items",
			Condition: func(g *GameState) bool { return g.Collected >= 50 },
		},
		{
			ID: "high_roller", Name: "High Roller", Description: "Score 5000 points",
			Condition: func(g *GameState) bool { return g.Score >= 5000 },
		},
		{
			ID: "survivor", Name: "Survivor", Description: "Run 3000 meters without getting hit",
			Condition: func(g *GameState) bool { return g.Distance-g.LastHitDistance >= 3000 },
		},
	}
}

// AchievementSystem unlocks achievements once and persists the unlocked set
type AchievementSystem struct {
	registry []Achievement
	byID     map[string]Achievement
	unlocked map[string]bool
	state    *GameState
	store    storage.Store
	log      *zap.Logger
}

// NewAchievementSystem creates an achievement system, loading previously
// unlocked achievements from the store
func NewAchievementSystem(registry []Achievement, state *GameState, store storage.Store, log *zap.Logger) *AchievementSystem {
	s := &AchievementSystem{
		registry: registry,
		byID:     make(map[string]Achievement, len(registry)),
		state:    state,
		store:    store,
		log:      log,
	}
	for _, a := range registry {
		s.byID[a.ID] = a
	}
	s.unlocked = storage.LoadAchievements(store, log)
	return s
}

// Update evaluates every achievement against the run state
func (s *AchievementSystem) Update(world *ecs.World, dt float64) {
	s.Evaluate(world)
}

// Evaluate checks every registered achievement condition
func (s *AchievementSystem) Evaluate(world *ecs.World) {
	for _, a := range s.registry {
		if a.Condition == nil || s.unlocked[a.ID] {
			continue
		}
		s.Check(world, a.ID, a.Condition(s.state))
	}
}

// Check unlocks an achievement when condition holds and it is not yet
// unlocked. Returns true only for the call that unlocks it.
func (s *AchievementSystem) Check(world *ecs.World, id string, condition bool) bool {
	if !condition || s.unlocked[id] {
		return false
	}
	a, known := s.byID[id]
	if !known {
		s.log.Warn("unknown achievement", zap.String("id", id))
		return false
	}

	s.unlocked[id] = true
	if err := storage.SaveAchievements(s.store, s.unlocked); err != nil {
		s.log.Warn("failed to save achievements", zap.Error(err))
	}

	s.log.Info("achievement unlocked", zap.String("id", id))
	world.EmitEvent(SoundEvent{ID: SoundAchievement})
	world.EmitEvent(AchievementEvent{ID: a.ID, Name: a.Name, Description: a.Description})
	return true
}

// IsUnlocked reports whether an achievement has been unlocked
func (s *AchievementSystem) IsUnlocked(id string) bool {
	return s.unlocked[id]
}

// Unlocked returns the unlocked achievements in registry order
func (s *AchievementSystem) Unlocked() []Achievement {
	var result []Achievement
	for _, a := range s.registry {
		if s.unlocked[a.ID] {
			result = append(result, a)
		}
	}
	return result
}
