package mural

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxFrameDelta caps per-tick elapsed time. A backgrounded or stalled
// window otherwise produces one huge jump when ticks resume.
const maxFrameDelta = 40 * time.Millisecond

// fadeInDuration is how long the whole composition takes to fade up
// from black after construction, in seconds of animation time.
const fadeInDuration float32 = 1.8

// Composition is one running instance of the animation: it owns the
// scene, the clock, and the running flag, and implements [ebiten.Game].
// Construct it with [New] (it starts running immediately) and either
// hand it to [Run] or drive it from your own ebiten loop. All methods
// must be called from the game loop's goroutine.
type Composition struct {
	scene *Scene
	rend  renderer
	pal   Palette

	clock     float64 // seconds of animation time, frozen while paused
	lastTick  time.Time
	running   bool
	destroyed bool

	fade  *gween.Tween
	alpha float64

	// ShowFPS overlays the actual frame and tick rates when set.
	ShowFPS bool

	// ScreenshotDir is where Screenshot writes PNG captures.
	ScreenshotDir string

	screenshotQueue []string
	touchBuf        []ebiten.TouchID
}

// New creates a composition for a surface of the given logical size and
// populates its scene. The composition is running as soon as New
// returns; the first Update tick starts the clock.
func New(width, height int) *Composition {
	pal := DefaultPalette()
	w, h := float64(width), float64(height)
	return &Composition{
		scene:         newScene(w, h, pal),
		rend:          renderer{width: w, height: h},
		pal:           pal,
		running:       true,
		fade:          gween.New(0, 1, fadeInDuration, ease.OutQuad),
		ScreenshotDir: "screenshots",
	}
}

// Update advances the composition by one tick. Ebiten calls this once
// per display frame. A pointer click or a touch toggles pause/resume
// even while paused; the tick chain always stays armed so resuming is
// instantaneous. After Destroy, Update reports [ebiten.Termination] so
// a loop owned by mural stops scheduling frames.
func (c *Composition) Update() error {
	if c.destroyed {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.Toggle()
	}
	c.touchBuf = inpututil.AppendJustPressedTouchIDs(c.touchBuf[:0])
	if len(c.touchBuf) > 0 {
		c.Toggle()
	}

	dt := c.tick(time.Now())
	if c.running {
		c.advance(dt)
	}
	return nil
}

// tick computes the capped elapsed time since the previous tick, in
// seconds, and re-arms the clock reference. It runs even while paused
// so the elapsed-time accounting stays correct across a resume.
func (c *Composition) tick(now time.Time) float64 {
	var dt time.Duration
	if !c.lastTick.IsZero() {
		dt = now.Sub(c.lastTick)
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}
	}
	c.lastTick = now
	return dt.Seconds()
}

// advance moves the global clock, the fade tween, and every scene
// record forward by dt seconds. Sole mutator of all kinematic state.
func (c *Composition) advance(dt float64) {
	c.clock += dt
	a, _ := c.fade.Update(float32(dt))
	c.alpha = float64(a)
	c.scene.step(dt, c.clock, c.rend.width, c.rend.height)
}

// Draw renders the full frame at the current clock. While paused the
// same frame is redrawn unchanged (the surface is cleared every frame,
// so skipping the redraw would blank it); after Destroy nothing is
// drawn at all.
func (c *Composition) Draw(screen *ebiten.Image) {
	if c.destroyed {
		return
	}
	c.rend.alpha = c.alpha
	c.rend.drawFrame(screen, c.scene, c.clock)
	if c.ShowFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, 8)
	}
	c.flushScreenshots(screen)
}

// Layout reports the logical surface size. Ebiten calls this on start
// and on every resize; the composition adopts the new bounds for its
// wrap and spawn geometry. Device-pixel scaling is ebiten's concern.
func (c *Composition) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		c.rend.width = float64(outsideWidth)
		c.rend.height = float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Pause freezes the clock and all record mutation. Idempotent; a no-op
// after Destroy.
func (c *Composition) Pause() {
	if c.destroyed {
		return
	}
	c.running = false
}

// Resume restarts the clock. The tick reference resets to now so time
// spent paused never shows up as one large jump. Idempotent; a no-op
// after Destroy.
func (c *Composition) Resume() {
	if c.destroyed {
		return
	}
	c.running = true
	c.lastTick = time.Now()
}

// Toggle flips between running and paused, resetting the tick reference
// in both directions.
func (c *Composition) Toggle() {
	if c.destroyed {
		return
	}
	c.running = !c.running
	c.lastTick = time.Now()
}

// Destroy permanently stops the composition and releases its scene. No
// later tick mutates a record or issues a drawing command, and every
// other operation becomes a no-op. When mural owns the window, the game
// loop exits on the next tick.
func (c *Composition) Destroy() {
	c.destroyed = true
	c.running = false
	c.scene = nil
}

// Running reports whether the composition is advancing.
func (c *Composition) Running() bool {
	return c.running && !c.destroyed
}

// Destroyed reports whether Destroy has been called.
func (c *Composition) Destroyed() bool {
	return c.destroyed
}

// Clock returns the seconds of animation time elapsed while running.
func (c *Composition) Clock() float64 {
	return c.clock
}
