package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
)

// DefaultBindings maps each action to the keys that trigger it
var DefaultBindings = map[components.Action][]ebiten.Key{
	components.ActionJump:  {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	components.ActionDuck:  {ebiten.KeyArrowDown, ebiten.KeyS},
	components.ActionSpray: {ebiten.KeyF, ebiten.KeyX, ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
}

// Keyboard reads player actions from the ebiten keyboard state
type Keyboard struct {
	bindings map[components.Action][]ebiten.Key
}

// NewKeyboard creates a keyboard source. nil bindings use DefaultBindings.
func NewKeyboard(bindings map[components.Action][]ebiten.Key) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{bindings: bindings}
}

// IsHeld reports whether any key bound to the action is pressed
func (k *Keyboard) IsHeld(action components.Action) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// PausePressed reports a fresh press of P or Escape
func (k *Keyboard) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// MutePressed reports a fresh press of M
func (k *Keyboard) MutePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

// RestartPressed reports a fresh press of Enter
func (k *Keyboard) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
