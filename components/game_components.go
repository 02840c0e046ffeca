package components

// HealthComponent stores hit points. Current stays within [0, Max].
type HealthComponent struct {
	Current          int
	Max              int
	Invulnerable     bool
	InvulnerableTime float64 // Seconds of invulnerability left
}

// NewHealthComponent creates a full health component
func NewHealthComponent(max int) *HealthComponent {
	if max < 0 {
		max = 0
	}
	return &HealthComponent{Current: max, Max: max}
}

// TakeDamage subtracts damage unless the entity is invulnerable.
// Returns true when the damage was applied.
func (h *HealthComponent) TakeDamage(amount int) bool {
	if h.Invulnerable || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return true
}

// Heal restores health up to Max
func (h *HealthComponent) Heal(amount int) {
	if amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// SetInvulnerable grants invulnerability for the given number of seconds.
// A longer remaining window is kept.
func (h *HealthComponent) SetInvulnerable(seconds float64) {
	h.Invulnerable = true
	if seconds > h.InvulnerableTime {
		h.InvulnerableTime = seconds
	}
}

// Tick counts down invulnerability, clearing the flag at zero
func (h *HealthComponent) Tick(dt float64) {
	if !h.Invulnerable {
		return
	}
	h.InvulnerableTime -= dt
	if h.InvulnerableTime <= 0 {
		h.InvulnerableTime = 0
		h.Invulnerable = false
	}
}

// IsDead reports whether health is exhausted
func (h *HealthComponent) IsDead() bool {
	return h.Current <= 0
}

// PlayerActions are edge-triggered per-tick inputs
type PlayerActions struct {
	Jump  bool
	Duck  bool
	Spray bool
}

// PlayerControllerComponent stores player tunables and state
type PlayerControllerComponent struct {
	JumpForce     float64
	MoveSpeed     float64
	SprayPower    float64
	MaxSprayPower float64
	SprayRegen    float64 // Spray power per second
	StandHeight   float64 // Default collider height
	DuckHeight    float64 // Collider height while ducking

	Actions PlayerActions

	IsJumping  bool
	IsDucking  bool
	IsSpraying bool
}

// SetAction sets one action flag
func (p *PlayerControllerComponent) SetAction(action Action, held bool) {
	switch action {
	case ActionJump:
		p.Actions.Jump = held
	case ActionDuck:
		p.Actions.Duck = held
	case ActionSpray:
		p.Actions.Spray = held
	}
}

// ResetActions clears all action flags
func (p *PlayerControllerComponent) ResetActions() {
	p.Actions = PlayerActions{}
}

// AddSprayPower changes spray power, clamped to [0, MaxSprayPower]
func (p *PlayerControllerComponent) AddSprayPower(amount float64) {
	p.SprayPower += amount
	if p.SprayPower > p.MaxSprayPower {
		p.SprayPower = p.MaxSprayPower
	}
	if p.SprayPower < 0 {
		p.SprayPower = 0
	}
}

// Collectible kinds
const (
	CollectibleCoin     = "coin"
	CollectibleSprayCan = "spray_can"
	CollectiblePowerUp  = "power_up"
)

// CollectibleComponent marks a pickup
type CollectibleComponent struct {
	Kind      string
	Value     int
	Collected bool
}

// ParticleTrailCapacity bounds the trail of recent particle positions
const ParticleTrailCapacity = 8

// TrailPoint is one recorded particle position
type TrailPoint struct {
	X, Y float64
}

// ParticleComponent stores a short-lived particle
type ParticleComponent struct {
	Lifetime        float64
	InitialLifetime float64
	FadeOut         bool

	trail [ParticleTrailCapacity]TrailPoint
	head  int
	size  int
}

// NewParticleComponent creates a particle living for lifetime seconds
func NewParticleComponent(lifetime float64, fadeOut bool) *ParticleComponent {
	return &ParticleComponent{
		Lifetime:        lifetime,
		InitialLifetime: lifetime,
		FadeOut:         fadeOut,
	}
}

// PushTrail records a position, dropping the oldest past capacity
func (p *ParticleComponent) PushTrail(x, y float64) {
	p.trail[p.head] = TrailPoint{X: x, Y: y}
	p.head = (p.head + 1) % ParticleTrailCapacity
	if p.size < ParticleTrailCapacity {
		p.size++
	}
}

// Trail returns the recorded positions, oldest first
func (p *ParticleComponent) Trail() []TrailPoint {
	points := make([]TrailPoint, 0, p.size)
	start := (p.head - p.size + ParticleTrailCapacity) % ParticleTrailCapacity
	for i := 0; i < p.size; i++ {
		points = append(points, p.trail[(start+i)%ParticleTrailCapacity])
	}
	return points
}

// LifeRatio returns remaining lifetime as a fraction in [0, 1]
func (p *ParticleComponent) LifeRatio() float64 {
	if p.InitialLifetime <= 0 {
		return 0
	}
	ratio := p.Lifetime / p.InitialLifetime
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// ObstacleComponent damages the player once
type ObstacleComponent struct {
	Kind   string
	Damage int
	Hit    bool // One-shot damage latch
}

// StreetArtComponent is a paintable wall
type StreetArtComponent struct {
	Painted  bool
	Progress float64
	Required float64
}

// Percent returns paint progress in [0, 1]
func (s *StreetArtComponent) Percent() float64 {
	if s.Required <= 0 || s.Painted {
		return 1
	}
	if s.Progress >= s.Required {
		return 1
	}
	return s.Progress / s.Required
}
