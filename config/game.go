package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
)

// ErrInvalidConfig is returned by Validate for unusable tunables
var ErrInvalidConfig = errors.New("invalid config")

// PaintRate is the paint progress a wall gains per second of spraying
const PaintRate = 50.0

// Physics tunables
type Physics struct {
	Gravity         float64 `yaml:"gravity"`
	GroundY         float64 `yaml:"ground_y"`
	LeaveGroundVY   float64 `yaml:"leave_ground_vy"`  // Upward speed needed to leave the ground
	HardLandingVY   float64 `yaml:"hard_landing_vy"`  // Landing speed that triggers the landing effect
	MaxDeltaTime    float64 `yaml:"max_delta_time"`   // Tick clamp in seconds
	ShakeOnCrash    float64 `yaml:"shake_on_crash"`   // Camera shake magnitude
	ShakeDuration   float64 `yaml:"shake_duration"`   // Camera shake length in seconds
	InvulnerableHit float64 `yaml:"invulnerable_hit"` // Seconds of invulnerability after a hit
}

// Player tunables
type Player struct {
	StartX        float64 `yaml:"start_x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	DuckHeight    float64 `yaml:"duck_height"`
	Health        int     `yaml:"health"`
	JumpForce     float64 `yaml:"jump_force"`
	MoveSpeed     float64 `yaml:"move_speed"`
	MaxSprayPower float64 `yaml:"max_spray_power"`
	SprayRegen    float64 `yaml:"spray_regen"`
}

// World generation tunables
type World struct {
	SpawnLookahead    float64 `yaml:"spawn_lookahead"`
	BuildingLookahead float64 `yaml:"building_lookahead"`
	CleanupBehind     float64 `yaml:"cleanup_behind"`
	PatternSpacing    float64 `yaml:"pattern_spacing"`
	PatternJitter     float64 `yaml:"pattern_jitter"`
	FirstPatternX     float64 `yaml:"first_pattern_x"`
	BuildingMinWidth  float64 `yaml:"building_min_width"`
	BuildingMaxWidth  float64 `yaml:"building_max_width"`
	BuildingGapMin    float64 `yaml:"building_gap_min"`
	BuildingGapMax    float64 `yaml:"building_gap_max"`
	StreetArtChance   float64 `yaml:"street_art_chance"`
	StreetArtRequired float64 `yaml:"street_art_required"`
}

// AI tunables per behavior kind
type AI struct {
	Patrol components.PatrolConfig `yaml:"patrol"`
	Chase  components.ChaseConfig  `yaml:"chase"`
	Guard  components.GuardConfig  `yaml:"guard"`
}

// Storage settings
type Storage struct {
	Dir string `yaml:"dir"` // Empty keeps progress in memory only
}

// Game holds every gameplay tunable
type Game struct {
	Seed    string  `yaml:"seed"` // Empty seeds from the clock
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	World   World   `yaml:"world"`
	AI      AI      `yaml:"ai"`
	Storage Storage `yaml:"storage"`
	Assets  string  `yaml:"assets"` // Asset directory for sprites and sounds
}

// Default returns the stock tuning
func Default() *Game {
	return &Game{
		Physics: Physics{
			Gravity:         1800,
			GroundY:         500,
			LeaveGroundVY:   50,
			HardLandingVY:   100,
			MaxDeltaTime:    0.1,
			ShakeOnCrash:    8,
			ShakeDuration:   0.3,
			InvulnerableHit: 1.5,
		},
		Player: Player{
			StartX:        100,
			Width:         40,
			Height:        64,
			DuckHeight:    32,
			Health:        3,
			JumpForce:     720,
			MoveSpeed:     260,
			MaxSprayPower: 100,
			SprayRegen:    5,
		},
		World: World{
			SpawnLookahead:    800,
			BuildingLookahead: 1200,
			CleanupBehind:     400,
			PatternSpacing:    350,
			PatternJitter:     250,
			FirstPatternX:     700,
			BuildingMinWidth:  120,
			BuildingMaxWidth:  280,
			BuildingGapMin:    40,
			BuildingGapMax:    160,
			StreetArtChance:   0.3,
			StreetArtRequired: 25,
		},
		AI: AI{
			Patrol: components.DefaultPatrolConfig(),
			Chase:  components.DefaultChaseConfig(),
			Guard:  components.DefaultGuardConfig(),
		},
		Assets: "assets",
	}
}

// Load reads tunables from a YAML file on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Game, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports tunables the simulation cannot run with
func (g *Game) Validate() error {
	switch {
	case g.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case g.Physics.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: max_delta_time must be positive", ErrInvalidConfig)
	case g.Player.Health <= 0:
		return fmt.Errorf("%w: player health must be positive", ErrInvalidConfig)
	case g.Player.MoveSpeed <= 0:
		return fmt.Errorf("%w: move_speed must be positive", ErrInvalidConfig)
	case g.Player.DuckHeight <= 0 || g.Player.DuckHeight > g.Player.Height:
		return fmt.Errorf("%w: duck_height must be in (0, height]", ErrInvalidConfig)
	case g.World.SpawnLookahead <= 0 || g.World.BuildingLookahead <= 0:
		return fmt.Errorf("%w: lookahead distances must be positive", ErrInvalidConfig)
	case g.World.PatternSpacing <= 0:
		return fmt.Errorf("%w: pattern_spacing must be positive", ErrInvalidConfig)
	case g.World.BuildingGapMax < g.World.BuildingGapMin:
		return fmt.Errorf("%w: building_gap_max below building_gap_min", ErrInvalidConfig)
	case g.World.BuildingMinWidth <= 0 || g.World.BuildingMaxWidth < g.World.BuildingMinWidth:
		return fmt.Errorf("%w: building widths must be positive and ordered", ErrInvalidConfig)
	case g.World.StreetArtChance < 0 || g.World.StreetArtChance > 1:
		return fmt.Errorf("%w: street_art_chance must be in [0, 1]", ErrInvalidConfig)
	case g.World.StreetArtRequired <= 0:
		return fmt.Errorf("%w: street_art_required must be positive", ErrInvalidConfig)
	case g.PaintReach() < g.World.StreetArtRequired:
		return fmt.Errorf("%w: street_art_required %.1f exceeds the %.1f paint one pass over the narrowest wall gives",
			ErrInvalidConfig, g.World.StreetArtRequired, g.PaintReach())
	}

	if err := g.AI.Patrol.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := g.AI.Chase.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := g.AI.Guard.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// PaintReach returns the paint progress a running player can put on the
// narrowest wall in one pass. One max tick is subtracted for tick granularity.
func (g *Game) PaintReach() float64 {
	overlap := (g.World.BuildingMinWidth+g.Player.Width)/g.Player.MoveSpeed - g.Physics.MaxDeltaTime
	return overlap * PaintRate
}

// RandSeed turns the configured seed phrase into an RNG seed. An empty phrase
// uses the clock.
func (g *Game) RandSeed() int64 {
	if g.Seed == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(g.Seed))
}
