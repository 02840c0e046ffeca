package components

import (
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// Define component IDs for our game
const (
	Transform ecs.ComponentID = iota
	Velocity
	Physics
	Collider
	Sprite
	Animation
	Health
	PlayerController
	AIController
	Collectible
	Particle
	Obstacle
	StreetArt
	Camera // Camera component for viewport management

	componentCount
)

// compile-time guard: the enumeration must fit the entity component table
var _ [ecs.MaxComponents - componentCount]struct{}

// Entity tags
const (
	TagPlayer      = "player"
	TagObstacle    = "obstacle"
	TagCollectible = "collectible"
	TagStreetArt   = "streetart"
	TagBuilding    = "building"
	TagParticle    = "particle"
	TagCamera      = "camera"
	TagEnemy       = "enemy"
)

// Action is one of the player inputs polled once per tick
type Action int

const (
	ActionJump Action = iota
	ActionDuck
	ActionSpray
)

func (a Action) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionDuck:
		return "duck"
	case ActionSpray:
		return "spray"
	default:
		return "unknown"
	}
}
