package mural

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the standalone window created by [Run].
// The zero value gives a resizable 1280x800 window titled "mural".
type RunConfig struct {
	Title         string
	Width, Height int
	Fullscreen    bool
	ShowFPS       bool
	ScreenshotDir string
}

// Run creates a window, builds a composition covering it, and drives
// the animation loop until the composition is destroyed or the window
// closes. If no drawing surface can be acquired the error is returned
// immediately; the composition cannot run without one.
func Run(cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 800
	}
	title := cfg.Title
	if title == "" {
		title = "mural"
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	c := New(w, h)
	c.ShowFPS = cfg.ShowFPS
	if cfg.ScreenshotDir != "" {
		c.ScreenshotDir = cfg.ScreenshotDir
	}

	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("mural: run: %w", err)
	}
	return nil
}
