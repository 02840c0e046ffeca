package components

import (
	"image/color"

	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// TransformComponent stores entity position (top-left corner) and size
type TransformComponent struct {
	X, Y     float64
	W, H     float64
	Rotation float64 // Radians
	Scale    float64
	// Position before the last physics integration
	PrevX, PrevY float64
}

// NewTransformComponent creates a transform at x,y with the given size
func NewTransformComponent(x, y, w, h float64) *TransformComponent {
	return &TransformComponent{
		X: x, Y: y,
		W: w, H: h,
		Scale: 1,
		PrevX: x, PrevY: y,
	}
}

// Bottom returns the y coordinate of the lower edge
func (t *TransformComponent) Bottom() float64 {
	return t.Y + t.H
}

// CenterX returns the horizontal center
func (t *TransformComponent) CenterX() float64 {
	return t.X + t.W/2
}

// CenterY returns the vertical center
func (t *TransformComponent) CenterY() float64 {
	return t.Y + t.H/2
}

// VelocityComponent stores linear velocity and its limits
type VelocityComponent struct {
	VX, VY       float64
	MaxVX, MaxVY float64 // Zero means uncapped
	Friction     float64 // Per-second damping factor applied on ground, 1 disables it
	GravityScale float64
}

// NewVelocityComponent creates a velocity component with gravity enabled
func NewVelocityComponent(vx, vy float64) *VelocityComponent {
	return &VelocityComponent{
		VX:           vx,
		VY:           vy,
		Friction:     1,
		GravityScale: 1,
	}
}

// PhysicsComponent stores rigid body state against the ground line
type PhysicsComponent struct {
	Static      bool
	Bounce      float64 // Fraction of vertical speed kept on landing
	Grounded    bool
	OnGround    bool
	LastGroundY float64
}

// ColliderComponent is an axis-aligned box relative to the transform
type ColliderComponent struct {
	W, H             float64
	OffsetX, OffsetY float64
	Trigger          bool   // Triggers report overlaps but never block
	Layer            string // Collision layer, e.g. "player", "hazard", "pickup"
	Tags             map[string]bool
}

// NewColliderComponent creates a collider matching a w by h box
func NewColliderComponent(w, h float64, layer string) *ColliderComponent {
	return &ColliderComponent{
		W:     w,
		H:     h,
		Layer: layer,
		Tags:  make(map[string]bool),
	}
}

// Bounds returns the world-space box of the collider for a transform
func (c *ColliderComponent) Bounds(t *TransformComponent) (left, top, right, bottom float64) {
	left = t.X + c.OffsetX
	top = t.Y + c.OffsetY
	return left, top, left + c.W, top + c.H
}

// Sprite render layers
const (
	LayerSky        = 0
	LayerBuildings  = 2
	LayerGround     = 4
	LayerPickups    = 5
	LayerObstacles  = 6
	LayerPlayer     = 8
	LayerParticles  = 9
	LayerForeground = 10
)

// SpriteComponent stores rendering information
type SpriteComponent struct {
	Kind    string // Visual kind, e.g. "player", "barrier", "building_brick"
	Frame   string // Current frame id within the kind
	Layer   int    // 0 (back) to 10 (front)
	Visible bool
	Opacity float64
	FlipX   bool
	FlipY   bool
	Tint    color.Color // Optional
}

// NewSpriteComponent creates a visible, opaque sprite
func NewSpriteComponent(kind, frame string, layer int) *SpriteComponent {
	return &SpriteComponent{
		Kind:    kind,
		Frame:   frame,
		Layer:   ClampLayer(layer),
		Visible: true,
		Opacity: 1,
	}
}

// ClampLayer forces a render layer into the 0-10 range
func ClampLayer(layer int) int {
	if layer < LayerSky {
		return LayerSky
	}
	if layer > LayerForeground {
		return LayerForeground
	}
	return layer
}

// AnimationComponent plays a sequence of sprite frames
type AnimationComponent struct {
	Frames        []string
	FrameDuration float64 // Seconds per frame
	Loop          bool
	Index         int
	Elapsed       float64
	Playing       bool
	OnComplete    func() // Fired once when a non-looping animation ends
}

// NewAnimationComponent creates a playing animation
func NewAnimationComponent(frames []string, frameDuration float64, loop bool) *AnimationComponent {
	return &AnimationComponent{
		Frames:        frames,
		FrameDuration: frameDuration,
		Loop:          loop,
		Playing:       len(frames) > 0,
	}
}

// Play restarts the animation with a new frame sequence
func (a *AnimationComponent) Play(frames []string, frameDuration float64, loop bool, onComplete func()) {
	a.Frames = frames
	a.FrameDuration = frameDuration
	a.Loop = loop
	a.Index = 0
	a.Elapsed = 0
	a.Playing = len(frames) > 0
	a.OnComplete = onComplete
}

// CurrentFrame returns the frame id at the current index
func (a *AnimationComponent) CurrentFrame() string {
	if len(a.Frames) == 0 {
		return ""
	}
	return a.Frames[a.Index]
}

// CameraComponent tracks the viewport position for side scrolling
type CameraComponent struct {
	X, Y   float64      // Top-left position of the camera in the world
	Target ecs.EntityID // Entity that the camera follows (usually the player)
	// Horizontal screen position the target is held at
	LeadX float64
	// Screen shake
	ShakeMagnitude float64
	ShakeTime      float64
	ShakeX, ShakeY float64
}

// NewCameraComponent creates a new camera component that follows the specified target
func NewCameraComponent(target ecs.EntityID, leadX float64) *CameraComponent {
	return &CameraComponent{
		Target: target,
		LeadX:  leadX,
	}
}

// Shake starts a shake impulse; a stronger impulse replaces a weaker one
func (c *CameraComponent) Shake(magnitude, duration float64) {
	if magnitude < c.ShakeMagnitude && c.ShakeTime > 0 {
		return
	}
	c.ShakeMagnitude = magnitude
	c.ShakeTime = duration
}
