package components

import (
	"errors"
	"fmt"
)

// AIBehavior selects the state machine an AI entity runs
type AIBehavior string

const (
	BehaviorPatrol AIBehavior = "patrol"
	BehaviorChase  AIBehavior = "chase"
	BehaviorGuard  AIBehavior = "guard"
)

// AI state labels
const (
	AIStateIdle      = "idle"
	AIStateMoving    = "moving"
	AIStateTurning   = "turning"
	AIStateChasing   = "chasing"
	AIStateAlert     = "alert"
	AIStatePursuing  = "pursuing"
	AIStateReturning = "returning"
)

// ErrInvalidAIConfig is returned when an AI configuration has unusable values
var ErrInvalidAIConfig = errors.New("invalid ai config")

// PatrolConfig drives the patrol state machine
type PatrolConfig struct {
	Speed     float64 `yaml:"speed"`
	Range     float64 `yaml:"range"`      // Max horizontal distance from the start point
	IdleDelay float64 `yaml:"idle_delay"` // Seconds to wait before the first move
}

// ChaseConfig drives the chase state machine
type ChaseConfig struct {
	Speed float64 `yaml:"speed"`
	Range float64 `yaml:"range"` // Chase while the player is closer than this
}

// GuardConfig drives the guard state machine
type GuardConfig struct {
	Speed       float64 `yaml:"speed"`
	AlertRadius float64 `yaml:"alert_radius"`
	GuardRadius float64 `yaml:"guard_radius"`
}

// DefaultPatrolConfig returns the stock patrol tuning
func DefaultPatrolConfig() PatrolConfig {
	return PatrolConfig{Speed: 80, Range: 120, IdleDelay: 1.0}
}

// DefaultChaseConfig returns the stock chase tuning
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{Speed: 120, Range: 300}
}

// DefaultGuardConfig returns the stock guard tuning
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{Speed: 140, AlertRadius: 250, GuardRadius: 350}
}

// withDefaults fills zero fields from the defaults
func (c PatrolConfig) withDefaults() PatrolConfig {
	d := DefaultPatrolConfig()
	if c.Speed == 0 {
		c.Speed = d.Speed
	}
	if c.Range == 0 {
		c.Range = d.Range
	}
	if c.IdleDelay == 0 {
		c.IdleDelay = d.IdleDelay
	}
	return c
}

// Validate reports unusable patrol values
func (c PatrolConfig) Validate() error {
	if c.Speed < 0 || c.Range < 0 || c.IdleDelay < 0 {
		return fmt.Errorf("%w: patrol values must be non-negative", ErrInvalidAIConfig)
	}
	return nil
}

func (c ChaseConfig) withDefaults() ChaseConfig {
	d := DefaultChaseConfig()
	if c.Speed == 0 {
		c.Speed = d.Speed
	}
	if c.Range == 0 {
		c.Range = d.Range
	}
	return c
}

// Validate reports unusable chase values
func (c ChaseConfig) Validate() error {
	if c.Speed < 0 || c.Range < 0 {
		return fmt.Errorf("%w: chase values must be non-negative", ErrInvalidAIConfig)
	}
	return nil
}

func (c GuardConfig) withDefaults() GuardConfig {
	d := DefaultGuardConfig()
	if c.Speed == 0 {
		c.Speed = d.Speed
	}
	if c.AlertRadius == 0 {
		c.AlertRadius = d.AlertRadius
	}
	if c.GuardRadius == 0 {
		c.GuardRadius = d.GuardRadius
	}
	return c
}

// Validate reports unusable guard values
func (c GuardConfig) Validate() error {
	if c.Speed < 0 || c.AlertRadius < 0 || c.GuardRadius < 0 {
		return fmt.Errorf("%w: guard values must be non-negative", ErrInvalidAIConfig)
	}
	if c.GuardRadius < c.AlertRadius {
		return fmt.Errorf("%w: guard radius %.0f is smaller than alert radius %.0f",
			ErrInvalidAIConfig, c.GuardRadius, c.AlertRadius)
	}
	return nil
}

// AIPoint is an optional movement target
type AIPoint struct {
	X, Y float64
}

// AIControllerComponent stores AI behavior information
type AIControllerComponent struct {
	Behavior AIBehavior
	Patrol   PatrolConfig
	Chase    ChaseConfig
	Guard    GuardConfig

	State     string
	Timer     float64
	Target    *AIPoint
	Direction float64 // -1 left, 1 right
	// Spawn point, used as the patrol origin and the guard return target
	HomeX, HomeY float64
}

// NewPatrolAI creates a patrolling controller anchored at x,y
func NewPatrolAI(cfg PatrolConfig, x, y float64) (*AIControllerComponent, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &AIControllerComponent{
		Behavior: BehaviorPatrol, Patrol: cfg,
		State: AIStateIdle, Direction: 1, HomeX: x, HomeY: y,
	}, nil
}

// NewChaseAI creates a chasing controller anchored at x,y
func NewChaseAI(cfg ChaseConfig, x, y float64) (*AIControllerComponent, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &AIControllerComponent{
		Behavior: BehaviorChase, Chase: cfg,
		State: AIStateIdle, Direction: -1, HomeX: x, HomeY: y,
	}, nil
}

// NewGuardAI creates a guarding controller anchored at x,y
func NewGuardAI(cfg GuardConfig, x, y float64) (*AIControllerComponent, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &AIControllerComponent{
		Behavior: BehaviorGuard, Guard: cfg,
		State: AIStateIdle, Direction: -1, HomeX: x, HomeY: y,
	}, nil
}

// SetState switches state and restarts the state timer
func (a *AIControllerComponent) SetState(state string) {
	a.State = state
	a.Timer = 0
}
