package mural

import (
	"math"
	"math/rand/v2"
)

// Child pulse constants: drawn child sizes breathe around their fixed
// base size, staggered by child index.
const (
	childPulseAmp     = 0.12
	childPulseFreq    = 1.6
	childPulseStagger = 0.7
)

// Group is a rigid cluster of child primitives rotating and scaling
// together about a shared center. Children's local coordinates are fixed
// at creation; only the group's own rotation evolves.
type Group struct {
	X, Y     float64
	Rotation float64
	RotSpeed float64
	Scale    float64
	Children []Child
}

// Child is a simplified primitive expressed in its group's local frame.
// Children get a single flat fill plus an optional flat outline, no
// gradient and no rotation of their own.
type Child struct {
	Kind        ShapeKind
	X, Y        float64
	Size        float64
	Fill        Color
	Stroke      Color
	StrokeWidth float64
}

// NewGroup returns a group at a random inset center with 5-10 children,
// uniform scale in [0.7, 1.4], and angular speed in [-0.35, 0.35] rad/s.
func NewGroup(w, h float64, pal Palette) *Group {
	x, y := spawnPoint(w, h)
	g := &Group{
		X:        x,
		Y:        y,
		RotSpeed: Range{-0.35, 0.35}.Random(),
		Scale:    Range{0.7, 1.4}.Random(),
	}

	n := 5 + rand.IntN(6) // 5..10
	g.Children = make([]Child, n)
	for i := range g.Children {
		c := Child{
			Kind: ShapeKind(rand.IntN(3)),
			X:    Range{-90, 90}.Random(),
			Y:    Range{-90, 90}.Random(),
			Size: Range{6, 26}.Random(),
			Fill: Translucent(pal.Pick(), Range{0.5, 0.95}.Random()),
		}
		if rand.Float64() < 0.3 {
			c.Stroke = Translucent(pal.Pick(), 0.7)
			c.StrokeWidth = Range{1, 2}.Random()
		}
		g.Children[i] = c
	}
	return g
}

// step advances only the group's rotation; the center, scale, and every
// child stay rigid.
func (g *Group) step(dt float64) {
	g.Rotation += g.RotSpeed * dt
}

// childPulse returns the drawn size multiplier for child i at animation
// time t.
func childPulse(t float64, i int) float64 {
	return 1 + childPulseAmp*math.Sin(childPulseFreq*t+float64(i)*childPulseStagger)
}
