package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/noamm-opencalw/chromatic-rush-game/components"
	"github.com/noamm-opencalw/chromatic-rush-game/config"
	"github.com/noamm-opencalw/chromatic-rush-game/ecs"
	"github.com/noamm-opencalw/chromatic-rush-game/session"
	"github.com/noamm-opencalw/chromatic-rush-game/systems"
)

// SpriteSource returns the image of a sprite kind and frame, or nil
type SpriteSource interface {
	Sprite(kind, frame string) *ebiten.Image
}

var (
	skyColor     = color.RGBA{24, 20, 48, 255}
	groundColor  = color.RGBA{48, 44, 56, 255}
	fallbackTint = color.RGBA{220, 220, 220, 255}
	overlayColor = color.RGBA{0, 0, 0, 160}
	barBack      = color.RGBA{40, 40, 40, 255}
	healthColor  = color.RGBA{230, 70, 70, 255}
	sprayColor   = color.RGBA{64, 224, 255, 255}
	paintColor   = color.RGBA{255, 64, 160, 255}
)

// Renderer draws a session's entities, HUD and toasts
type Renderer struct {
	sprites SpriteSource
	groundY float64
}

// NewRenderer creates a renderer. A nil source draws every sprite as a
// tinted rectangle.
func NewRenderer(sprites SpriteSource, groundY float64) *Renderer {
	return &Renderer{sprites: sprites, groundY: groundY}
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image, s *session.Session, hud *HUD) {
	screen.Fill(skyColor)

	camX, camY := s.CameraOffset()
	r.drawGround(screen, camY)
	r.drawEntities(screen, s.World, camX, camY)
	r.drawHUD(screen, hud)
	r.drawToasts(screen, s.Messages)

	switch {
	case hud.Final != nil:
		r.drawGameOver(screen, *hud.Final)
	case hud.Paused:
		r.drawPaused(screen, s.Stats())
	}
}

func (r *Renderer) drawGround(screen *ebiten.Image, camY float64) {
	y := float32(r.groundY - camY)
	vector.DrawFilledRect(screen, 0, y, config.ScreenWidth, config.ScreenHeight-y, groundColor, false)
}

// drawable pairs an entity with its render components
type drawable struct {
	entity    *ecs.Entity
	transform *components.TransformComponent
	sprite    *components.SpriteComponent
}

// drawEntities draws every visible sprite, back layers first. Entities that
// share a layer keep their insertion order.
func (r *Renderer) drawEntities(screen *ebiten.Image, world *ecs.World, camX, camY float64) {
	entities := world.Query(components.Transform, components.Sprite)
	list := make([]drawable, 0, len(entities))
	for _, entity := range entities {
		sprite := components.GetSprite(entity)
		if !sprite.Visible || sprite.Opacity <= 0 {
			continue
		}
		list = append(list, drawable{entity: entity, transform: components.GetTransform(entity), sprite: sprite})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return components.ClampLayer(list[i].sprite.Layer) < components.ClampLayer(list[j].sprite.Layer)
	})

	for _, d := range list {
		x := d.transform.X - camX
		y := d.transform.Y - camY
		if x+d.transform.W < 0 || x > config.ScreenWidth {
			continue
		}

		if particle := components.GetParticle(d.entity); particle != nil {
			r.drawTrail(screen, particle, d.sprite, camX, camY)
		}
		r.drawSprite(screen, d, x, y)

		if art := components.GetStreetArt(d.entity); art != nil && !art.Painted && art.Progress > 0 {
			r.drawBar(screen, x, y-8, d.transform.W, 4, art.Percent(), paintColor)
		}
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, d drawable, x, y float64) {
	tint := d.sprite.Tint
	if tint == nil {
		tint = fallbackTint
	}

	var img *ebiten.Image
	if r.sprites != nil {
		img = r.sprites.Sprite(d.sprite.Kind, d.sprite.Frame)
	}
	if img == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(d.transform.W), float32(d.transform.H),
			withAlpha(tint, d.sprite.Opacity), false)
		return
	}

	bounds := img.Bounds()
	scale := d.transform.Scale
	if scale == 0 {
		scale = 1
	}
	sx := d.transform.W / float64(bounds.Dx()) * scale
	sy := d.transform.H / float64(bounds.Dy()) * scale

	op := &ebiten.DrawImageOptions{}
	// Flip and rotate around the image center
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	if d.sprite.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	if d.sprite.FlipY {
		op.GeoM.Scale(1, -1)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(d.transform.Rotation)
	op.GeoM.Translate(x+d.transform.W/2, y+d.transform.H/2)

	if d.sprite.Tint != nil {
		op.ColorScale.ScaleWithColor(d.sprite.Tint)
	}
	op.ColorScale.ScaleAlpha(float32(d.sprite.Opacity))
	screen.DrawImage(img, op)
}

func (r *Renderer) drawTrail(screen *ebiten.Image, particle *components.ParticleComponent, sprite *components.SpriteComponent, camX, camY float64) {
	trail := particle.Trail()
	tint := sprite.Tint
	if tint == nil {
		tint = fallbackTint
	}
	for i, p := range trail {
		alpha := sprite.Opacity * float64(i+1) / float64(len(trail)+1) * 0.5
		vector.DrawFilledRect(screen, float32(p.X-camX-1), float32(p.Y-camY-1), 2, 2, withAlpha(tint, alpha), false)
	}
}

func (r *Renderer) drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, fill color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), barBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fill, false)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, hud *HUD) {
	x, y := config.HUDMargin, config.HUDMargin
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", hud.Score), x, y)
	y += config.HUDLineHeight

	ebitenutil.DebugPrintAt(screen, "HP", x, y)
	if hud.MaxHealth > 0 {
		r.drawBar(screen, float64(x+24), float64(y+4), 100, 8, float64(hud.Health)/float64(hud.MaxHealth), healthColor)
	}
	y += config.HUDLineHeight

	ebitenutil.DebugPrintAt(screen, "SP", x, y)
	if hud.MaxSpray > 0 {
		r.drawBar(screen, float64(x+24), float64(y+4), 100, 8, hud.Spray/hud.MaxSpray, sprayColor)
	}
}

func (r *Renderer) drawToasts(screen *ebiten.Image, log *systems.MessageLog) {
	y := config.HUDMargin
	for _, m := range log.RecentMessages(config.ToastLines) {
		x := config.ScreenWidth - config.HUDMargin - 7*len(m.Text) - 10
		vector.DrawFilledRect(screen, float32(x), float32(y+4), 6, 6, m.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, m.Text, x+10, y)
		y += config.HUDLineHeight
	}
}

func (r *Renderer) drawPaused(screen *ebiten.Image, stats systems.RunStats) {
	r.drawOverlay(screen, "PAUSED", stats, "P to resume")
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, stats systems.RunStats) {
	title := "GAME OVER"
	if stats.NewHighScore {
		title = "GAME OVER - NEW HIGH SCORE"
	}
	r.drawOverlay(screen, title, stats, "ENTER to run again")
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, title string, stats systems.RunStats, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)
	lines := []string{
		title,
		"",
		fmt.Sprintf("Score      %d", stats.Score),
		fmt.Sprintf("High score %d", stats.HighScore),
		fmt.Sprintf("Distance   %.0f", stats.Distance),
		fmt.Sprintf("Walls      %d", stats.PaintedWalls),
		fmt.Sprintf("Pickups    %d", stats.Collected),
		"",
		hint,
	}
	y := config.ScreenHeight/2 - len(lines)*config.HUDLineHeight/2
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.ScreenWidth/2-90, y)
		y += config.HUDLineHeight
	}
}

// withAlpha scales a color's alpha by opacity
func withAlpha(c color.Color, opacity float64) color.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * opacity),
		G: uint16(float64(g) * opacity),
		B: uint16(float64(b) * opacity),
		A: uint16(float64(a) * opacity),
	}
}
