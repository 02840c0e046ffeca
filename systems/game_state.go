package systems

import (
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// RunStats summarizes a run for the UI
type RunStats struct {
	Score        int
	Distance     float64
	PaintedWalls int
	Collected    int
	HighScore    int
	NewHighScore bool
	PlayTime     float64 // Seconds of simulated time
}

// GameState is the run-wide state shared by the systems of one session
type GameState struct {
	Score        int
	Distance     float64
	PaintedWalls int
	Collected    int
	HighScore    int
	PlayTime     float64
	// Distance at which the player last took damage
	LastHitDistance float64
	GameOver        bool
}

// NewGameState creates the state for a new run
func NewGameState(highScore int) *GameState {
	return &GameState{HighScore: highScore}
}

// AddScore adds points and notifies the UI
func (g *GameState) AddScore(world *ecs.World, delta int) {
	if delta == 0 {
		return
	}
	g.Score += delta
	world.EmitEvent(ScoreEvent{Score: g.Score, Delta: delta})
}

// Stats returns the current run summary
func (g *GameState) Stats() RunStats {
	high := g.HighScore
	if g.Score > high {
		high = g.Score
	}
	return RunStats{
		Score:        g.Score,
		Distance:     g.Distance,
		PaintedWalls: g.PaintedWalls,
		Collected:    g.Collected,
		HighScore:    high,
		NewHighScore: g.Score > g.HighScore,
		PlayTime:     g.PlayTime,
	}
}

// EndGame makes the run terminal. Only the first call emits GameOverEvent.
func (g *GameState) EndGame(world *ecs.World) bool {
	if g.GameOver {
		return false
	}
	g.GameOver = true
	world.EmitEvent(SoundEvent{ID: SoundGameOver})
	world.EmitEvent(GameOverEvent{Stats: g.Stats()})
	return true
}
