package render

import (
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
	"github.com/noamm-opencalw/chromatic-rush-game/systems"
)

// HUD mirrors the UI notifications of a run. It only observes events.
type HUD struct {
	Score     int
	Health    int
	MaxHealth int
	Spray     float64
	MaxSpray  float64
	Paused    bool
	Final     *systems.RunStats // Set once the run is over

	subs  map[ecs.EventType]ecs.SubscriptionID
	world *ecs.World
}

// NewHUD creates a HUD seeded with the starting values
func NewHUD(health int, spray float64) *HUD {
	return &HUD{
		Health:    health,
		MaxHealth: health,
		Spray:     spray,
		MaxSpray:  spray,
	}
}

// Initialize subscribes the HUD to the UI events of a world
func (h *HUD) Initialize(world *ecs.World) {
	if h.world != nil {
		return
	}
	h.world = world
	events := world.GetEventManager()
	h.subs = map[ecs.EventType]ecs.SubscriptionID{
		systems.EventScore: events.Subscribe(systems.EventScore, func(event ecs.Event) {
			h.Score = event.(systems.ScoreEvent).Score
		}),
		systems.EventHealth: events.Subscribe(systems.EventHealth, func(event ecs.Event) {
			e := event.(systems.HealthEvent)
			h.Health, h.MaxHealth = e.Current, e.Max
		}),
		systems.EventSpray: events.Subscribe(systems.EventSpray, func(event ecs.Event) {
			e := event.(systems.SprayEvent)
			h.Spray, h.MaxSpray = e.Power, e.Max
		}),
		systems.EventPause: events.Subscribe(systems.EventPause, func(event ecs.Event) {
			h.Paused = event.(systems.PauseEvent).Paused
		}),
		systems.EventGameOver: events.Subscribe(systems.EventGameOver, func(event ecs.Event) {
			stats := event.(systems.GameOverEvent).Stats
			h.Final = &stats
		}),
	}
}

// Close drops the event subscriptions
func (h *HUD) Close() {
	if h.world == nil {
		return
	}
	events := h.world.GetEventManager()
	for eventType, id := range h.subs {
		events.Unsubscribe(eventType, id)
	}
	h.subs = nil
	h.world = nil
}
