package data

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
)

//go:embed templates.yaml
var defaultTemplates []byte

// ErrInvalidTemplate is returned when a template library fails validation
var ErrInvalidTemplate = errors.New("invalid template")

// Placement types inside a pattern
const (
	PlacementObstacle    = "obstacle"
	PlacementCollectible = "collectible"
)

// ObstacleTemplate describes an obstacle kind
type ObstacleTemplate struct {
	Width  float64               `yaml:"width"`
	Height float64               `yaml:"height"`
	Damage int                   `yaml:"damage"`
	Sunk   bool                  `yaml:"sunk"`   // Top edge sits on the ground line
	Flying bool                  `yaml:"flying"` // Ignores gravity
	AI     components.AIBehavior `yaml:"ai"`     // Empty for static obstacles
	Color  string                `yaml:"color"`  // Fallback color in hex format (e.g. "#00FF00")
}

// CollectibleTemplate describes a pickup kind
type CollectibleTemplate struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Value  int     `yaml:"value"`
	Color  string  `yaml:"color"`
}

// BuildingTemplate describes a background building kind
type BuildingTemplate struct {
	Kind  string `yaml:"kind"`
	Color string `yaml:"color"`
}

// Placement is one entity of a pattern, relative to the spawn cursor
type Placement struct {
	Type   string  `yaml:"type"`
	Kind   string  `yaml:"kind"`
	DX     float64 `yaml:"dx"`
	Height float64 `yaml:"height"` // Gap between the ground line and the entity's bottom edge
}

// PatternTemplate is a fixed arrangement of obstacles and collectibles
type PatternTemplate struct {
	ID          string      `yaml:"id"`
	Weight      int         `yaml:"weight"`
	MinDistance float64     `yaml:"min_distance"` // Run distance before the pattern may appear
	Placements  []Placement `yaml:"placements"`
}

// Library holds every template the spawners and the world generator use
type Library struct {
	Obstacles    map[string]ObstacleTemplate    `yaml:"obstacles"`
	Collectibles map[string]CollectibleTemplate `yaml:"collectibles"`
	Buildings    []BuildingTemplate             `yaml:"buildings"`
	Patterns     []PatternTemplate              `yaml:"patterns"`
}

// LoadDefault parses the embedded template library
func LoadDefault() (*Library, error) {
	return Parse(defaultTemplates)
}

// LoadFile parses a template library from disk
func LoadFile(path string) (*Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML template library
func Parse(raw []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(raw, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Validate ensures every pattern refers to known kinds and has a usable weight
func (l *Library) Validate() error {
	if len(l.Patterns) == 0 {
		return fmt.Errorf("%w: no patterns", ErrInvalidTemplate)
	}
	if len(l.Buildings) == 0 {
		return fmt.Errorf("%w: no buildings", ErrInvalidTemplate)
	}
	for kind, t := range l.Obstacles {
		if t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("%w: obstacle %s has no size", ErrInvalidTemplate, kind)
		}
		switch t.AI {
		case "", components.BehaviorPatrol, components.BehaviorChase, components.BehaviorGuard:
		default:
			return fmt.Errorf("%w: obstacle %s has unknown ai %q", ErrInvalidTemplate, kind, t.AI)
		}
	}
	for kind, t := range l.Collectibles {
		if t.Width <= 0 || t.Height <= 0 {
			return fmt.Errorf("%w: collectible %s has no size", ErrInvalidTemplate, kind)
		}
	}

	seen := make(map[string]bool, len(l.Patterns))
	for _, p := range l.Patterns {
		if p.ID == "" || seen[p.ID] {
			return fmt.Errorf("%w: pattern id %q is empty or duplicated", ErrInvalidTemplate, p.ID)
		}
		seen[p.ID] = true
		if p.Weight <= 0 {
			return fmt.Errorf("%w: pattern %s needs a positive weight", ErrInvalidTemplate, p.ID)
		}
		for _, pl := range p.Placements {
			switch pl.Type {
			case PlacementObstacle:
				if _, ok := l.Obstacles[pl.Kind]; !ok {
					return fmt.Errorf("%w: pattern %s uses unknown obstacle %q", ErrInvalidTemplate, p.ID, pl.Kind)
				}
			case PlacementCollectible:
				if _, ok := l.Collectibles[pl.Kind]; !ok {
					return fmt.Errorf("%w: pattern %s uses unknown collectible %q", ErrInvalidTemplate, p.ID, pl.Kind)
				}
			default:
				return fmt.Errorf("%w: pattern %s has placement type %q", ErrInvalidTemplate, p.ID, pl.Type)
			}
		}
	}
	return nil
}

// Pattern returns the pattern with the given id
func (l *Library) Pattern(id string) (PatternTemplate, bool) {
	for _, p := range l.Patterns {
		if p.ID == id {
			return p, true
		}
	}
	return PatternTemplate{}, false
}

// ParseHexColor parses a color in the "#rrggbb" format
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}
