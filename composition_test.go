package mural

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewStartsRunning(t *testing.T) {
	c := New(1000, 800)
	if !c.Running() {
		t.Error("composition should be running after New")
	}
	if c.Destroyed() {
		t.Error("composition should not be destroyed after New")
	}
	if c.Clock() != 0 {
		t.Errorf("clock = %v, want 0 before the first tick", c.Clock())
	}
	if c.scene == nil {
		t.Fatal("scene not populated")
	}
}

func TestPauseIdempotent(t *testing.T) {
	c := New(1000, 800)
	c.Pause()
	c.Pause()
	if c.Running() {
		t.Error("composition should stay paused after double Pause")
	}
	c.Resume()
	c.Resume()
	if !c.Running() {
		t.Error("composition should stay running after double Resume")
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	c := New(1000, 800)
	c.Toggle()
	c.Toggle()
	if !c.Running() {
		t.Error("double Toggle from running should end running")
	}

	c.Pause()
	c.Toggle()
	c.Toggle()
	if c.Running() {
		t.Error("double Toggle from paused should end paused")
	}
}

func TestResumeResetsTickReference(t *testing.T) {
	c := New(1000, 800)
	old := time.Now().Add(-time.Hour)
	c.lastTick = old
	c.Resume()
	if !c.lastTick.After(old) {
		t.Error("Resume did not reset the tick reference")
	}

	c.lastTick = old
	c.Toggle()
	if !c.lastTick.After(old) {
		t.Error("Toggle did not reset the tick reference")
	}
}

func TestTickCapsElapsedTime(t *testing.T) {
	c := New(1000, 800)
	now := time.Now()

	// First tick has no reference: dt is zero.
	if dt := c.tick(now); dt != 0 {
		t.Errorf("first tick dt = %v, want 0", dt)
	}

	// Half a second of wall time caps at maxFrameDelta.
	c.lastTick = now.Add(-500 * time.Millisecond)
	if dt := c.tick(now); dt != maxFrameDelta.Seconds() {
		t.Errorf("capped dt = %v, want %v", dt, maxFrameDelta.Seconds())
	}

	// A normal frame passes through uncapped.
	c.lastTick = now.Add(-16 * time.Millisecond)
	if dt := c.tick(now); dt != 0.016 {
		t.Errorf("dt = %v, want 0.016", dt)
	}
}

func TestAdvanceMovesClockAndScene(t *testing.T) {
	c := New(1000, 800)
	g := c.scene.Groups[0]
	if g.RotSpeed == 0 {
		g.RotSpeed = 0.2
	}
	before := g.Rotation

	c.advance(0.25)
	c.advance(0.25)

	if c.Clock() != 0.5 {
		t.Errorf("clock = %v, want 0.5", c.Clock())
	}
	if g.Rotation == before {
		t.Error("scene did not advance with the clock")
	}
	if c.alpha <= 0 {
		t.Errorf("fade alpha = %v, want > 0 after advancing", c.alpha)
	}
}

func TestFadeReachesFullAlpha(t *testing.T) {
	c := New(1000, 800)
	for i := 0; i < 300; i++ {
		c.advance(1.0 / 60)
	}
	if c.alpha != 1 {
		t.Errorf("alpha = %v after 5s, want 1", c.alpha)
	}
}

func TestDestroyStopsEverything(t *testing.T) {
	c := New(1000, 800)
	sc := c.scene
	shape := sc.Shapes[0]
	x, y := shape.X, shape.Y

	c.Destroy()

	if c.Running() || !c.Destroyed() {
		t.Fatal("composition should be stopped and destroyed")
	}
	if c.scene != nil {
		t.Error("scene not released by Destroy")
	}

	// Lifecycle operations become no-ops.
	c.Resume()
	c.Toggle()
	if c.Running() {
		t.Error("lifecycle operations should be no-ops after Destroy")
	}
	c.Screenshot("after-destroy")
	if len(c.screenshotQueue) != 0 {
		t.Error("Screenshot should be a no-op after Destroy")
	}

	// The next scheduled tick terminates the loop without mutating
	// any released record.
	if err := c.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Destroy = %v, want ebiten.Termination", err)
	}
	if shape.X != x || shape.Y != y {
		t.Error("record mutated after Destroy")
	}
}

func TestPausedAdvanceOnlyWhenRunning(t *testing.T) {
	c := New(1000, 800)
	c.Pause()

	// The scheduler still ticks while paused, but without advancing.
	dt := c.tick(time.Now())
	if c.running {
		t.Fatal("unexpected running state")
	}
	if dt < 0 {
		t.Fatalf("dt = %v", dt)
	}
	if c.Clock() != 0 {
		t.Errorf("clock = %v while paused, want 0", c.Clock())
	}
}

func TestLayoutAdoptsLogicalSize(t *testing.T) {
	c := New(1000, 800)
	w, h := c.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("Layout = (%d, %d), want (640, 480)", w, h)
	}
	if c.rend.width != 640 || c.rend.height != 480 {
		t.Errorf("renderer bounds = (%v, %v), want (640, 480)", c.rend.width, c.rend.height)
	}

	// Degenerate sizes are ignored for bounds.
	c.Layout(0, 0)
	if c.rend.width != 640 || c.rend.height != 480 {
		t.Error("renderer adopted a degenerate size")
	}
}
