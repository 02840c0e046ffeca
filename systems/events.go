package systems

import (
	"image/color"

	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// Event type constants
const (
	EventSound       ecs.EventType = "sound"
	EventEffect      ecs.EventType = "effect"
	EventShake       ecs.EventType = "shake"
	EventScore       ecs.EventType = "score"
	EventHealth      ecs.EventType = "health"
	EventSpray       ecs.EventType = "spray"
	EventCollect     ecs.EventType = "collect"
	EventPaint       ecs.EventType = "paint"
	EventAchievement ecs.EventType = "achievement"
	EventGameOver    ecs.EventType = "game_over"
	EventPause       ecs.EventType = "pause"
)

// Sound ids passed to the audio collaborator
const (
	SoundJump        = "jump"
	SoundLand        = "land"
	SoundCrash       = "crash"
	SoundCoin        = "coin"
	SoundSprayCan    = "spray_can"
	SoundPowerUp     = "power_up"
	SoundSpray       = "spray"
	SoundPainted     = "painted"
	SoundAchievement = "achievement"
	SoundGameOver    = "game_over"
)

// EffectKind selects a particle pattern
type EffectKind string

const (
	EffectJump    EffectKind = "jump"
	EffectLanding EffectKind = "landing"
	EffectSpray   EffectKind = "spray"
	EffectCrash   EffectKind = "crash"
	EffectCollect EffectKind = "collect"
)

// SoundEvent asks the audio collaborator to play a sound
type SoundEvent struct {
	ID string
}

// Type returns the event type
func (e SoundEvent) Type() ecs.EventType {
	return EventSound
}

// EffectEvent requests a particle effect at a world position
type EffectEvent struct {
	Kind EffectKind
	X, Y float64
	Tint color.Color // Optional, overrides the pattern color
}

// Type returns the event type
func (e EffectEvent) Type() ecs.EventType {
	return EventEffect
}

// ShakeEvent is a screen-shake impulse for the camera
type ShakeEvent struct {
	Magnitude float64
	Duration  float64
}

// Type returns the event type
func (e ShakeEvent) Type() ecs.EventType {
	return EventShake
}

// ScoreEvent is emitted when the score changes
type ScoreEvent struct {
	Score int
	Delta int
}

// Type returns the event type
func (e ScoreEvent) Type() ecs.EventType {
	return EventScore
}

// HealthEvent is emitted when the player's health changes
type HealthEvent struct {
	Current int
	Max     int
}

// Type returns the event type
func (e HealthEvent) Type() ecs.EventType {
	return EventHealth
}

// SprayEvent is emitted when the player's spray power crosses a whole unit
type SprayEvent struct {
	Power float64
	Max   float64
}

// Type returns the event type
func (e SprayEvent) Type() ecs.EventType {
	return EventSpray
}

// CollectEvent is emitted when the player picks something up
type CollectEvent struct {
	EntityID ecs.EntityID
	Kind     string
	Value    int
}

// Type returns the event type
func (e CollectEvent) Type() ecs.EventType {
	return EventCollect
}

// PaintEvent is emitted when a wall becomes fully painted
type PaintEvent struct {
	EntityID ecs.EntityID
	Total    int // Walls painted this run
}

// Type returns the event type
func (e PaintEvent) Type() ecs.EventType {
	return EventPaint
}

// AchievementEvent is emitted once when an achievement unlocks
type AchievementEvent struct {
	ID          string
	Name        string
	Description string
}

// Type returns the event type
func (e AchievementEvent) Type() ecs.EventType {
	return EventAchievement
}

// GameOverEvent is emitted once when the run ends
type GameOverEvent struct {
	Stats RunStats
}

// Type returns the event type
func (e GameOverEvent) Type() ecs.EventType {
	return EventGameOver
}

// PauseEvent is emitted when the run is paused or resumed
type PauseEvent struct {
	Paused bool
	Stats  RunStats
}

// Type returns the event type
func (e PauseEvent) Type() ecs.EventType {
	return EventPause
}
