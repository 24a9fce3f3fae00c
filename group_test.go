package mural

import (
	"math"
	"testing"
)

func TestNewGroupChildCount(t *testing.T) {
	pal := DefaultPalette()
	for i := 0; i < 100; i++ {
		g := NewGroup(testW, testH, pal)
		if n := len(g.Children); n < 5 || n > 10 {
			t.Fatalf("child count = %d, want in [5, 10]", n)
		}
	}
}

func TestNewGroupRanges(t *testing.T) {
	pal := DefaultPalette()
	for i := 0; i < 100; i++ {
		g := NewGroup(testW, testH, pal)
		if g.Scale < 0.7 || g.Scale > 1.4 {
			t.Fatalf("scale = %v, want in [0.7, 1.4]", g.Scale)
		}
		if g.RotSpeed < -0.35 || g.RotSpeed > 0.35 {
			t.Fatalf("rotSpeed = %v, want in [-0.35, 0.35]", g.RotSpeed)
		}
		for j, c := range g.Children {
			if c.Size < 6 || c.Size > 26 {
				t.Fatalf("child %d size = %v, want in [6, 26]", j, c.Size)
			}
		}
	}
}

func TestGroupStepMutatesOnlyRotation(t *testing.T) {
	g := NewGroup(testW, testH, DefaultPalette())
	x, y, scale := g.X, g.Y, g.Scale
	children := make([]Child, len(g.Children))
	copy(children, g.Children)

	g.step(0.5)
	g.step(0.5)

	want := g.RotSpeed * 1.0
	if math.Abs(g.Rotation-want) > 1e-12 {
		t.Errorf("rotation = %v, want %v", g.Rotation, want)
	}
	if g.X != x || g.Y != y || g.Scale != scale {
		t.Error("group center or scale changed during step")
	}
	for i, c := range g.Children {
		if c != children[i] {
			t.Fatalf("child %d mutated: %+v -> %+v", i, children[i], c)
		}
	}
}

func TestChildPulseDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		a := childPulse(1.25, i)
		b := childPulse(1.25, i)
		if a != b {
			t.Fatalf("childPulse(1.25, %d) not deterministic: %v vs %v", i, a, b)
		}
	}
	// Staggered phases: different children pulse differently at the same t.
	if childPulse(1.0, 0) == childPulse(1.0, 1) {
		t.Error("children 0 and 1 pulse identically, want staggered phases")
	}
}
