package systems

import (
	"fmt"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
)

// DefaultToastTTL is how long a toast stays on screen
const DefaultToastTTL = 2.5

// MessageLog stores game messages shown as toasts on the HUD
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int

	subs  map[ecs.EventType]ecs.SubscriptionID
	world *ecs.World
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 32,
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(text string, kind MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: text, Type: kind, TTL: DefaultToastTTL})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// Update ages the toasts and drops expired ones
func (ml *MessageLog) Update(dt float64) {
	kept := ml.Messages[:0]
	for _, m := range ml.Messages {
		m.TTL -= dt
		if m.TTL > 0 {
			kept = append(kept, m)
		}
	}
	ml.Messages = kept
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// Initialize subscribes the log to the notification events
func (ml *MessageLog) Initialize(world *ecs.World) {
	if ml.world != nil {
		return
	}
	ml.world = world
	events := world.GetEventManager()
	ml.subs = map[ecs.EventType]ecs.SubscriptionID{
		EventAchievement: events.Subscribe(EventAchievement, func(event ecs.Event) {
			a := event.(AchievementEvent)
			ml.Add(fmt.Sprintf("Achievement: %s", a.Name), MessageTypeAchievement)
		}),
		EventPaint: events.Subscribe(EventPaint, func(event ecs.Event) {
			p := event.(PaintEvent)
			ml.Add(fmt.Sprintf("Wall painted! +%d (%d total)", PaintedWallReward, p.Total), MessageTypeArt)
		}),
		EventHealth: events.Subscribe(EventHealth, func(event ecs.Event) {
			h := event.(HealthEvent)
			ml.Add(fmt.Sprintf("Ouch! %d/%d", h.Current, h.Max), MessageTypeDamage)
		}),
		EventCollect: events.Subscribe(EventCollect, func(event ecs.Event) {
			c := event.(CollectEvent)
			if c.Kind == components.CollectiblePowerUp {
				ml.Add("Power up! Invulnerable", MessageTypeScore)
			}
		}),
		EventPause: events.Subscribe(EventPause, func(event ecs.Event) {
			if event.(PauseEvent).Paused {
				ml.Add("Paused", MessageTypeSystem)
			}
		}),
		EventGameOver: events.Subscribe(EventGameOver, func(event ecs.Event) {
			stats := event.(GameOverEvent).Stats
			ml.Add(fmt.Sprintf("Game over: %d points", stats.Score), MessageTypeSystem)
			if stats.NewHighScore {
				ml.Add("New high score!", MessageTypeAchievement)
			}
		}),
	}
}

// Close drops the event subscriptions
func (ml *MessageLog) Close() {
	if ml.world == nil {
		return
	}
	events := ml.world.GetEventManager()
	for eventType, id := range ml.subs {
		events.Unsubscribe(eventType, id)
	}
	ml.subs = nil
	ml.world = nil
}
