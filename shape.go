package mural

import (
	"math"
	"math/rand/v2"
)

// ShapeKind tags the variant of a Shape record. Exactly one variant's
// size fields are meaningful, selected by Kind.
type ShapeKind uint8

const (
	KindCircle ShapeKind = iota
	KindTriangle
	KindRect
)

// spawnInset keeps initial positions away from the surface edges: every
// record spawns at least this fraction of each dimension inside them.
const spawnInset = 0.08

// Per-kind pulse constants. Amplitude is the fraction of the base size,
// frequency is in radians per second of animation time.
const (
	circlePulseAmp    = 0.06
	circlePulseFreq   = 0.9
	trianglePulseAmp  = 0.05
	trianglePulseFreq = 1.1
	rectPulseAmp      = 0.04
	rectPulseFreq     = 0.8
)

// triangleDriftPhase is the horizontal-drift phase shared by every
// triangle. The drift is a sinusoid about the spawn anchor; triangles
// carry no per-record phase.
const triangleDriftPhase = 0.0

const (
	triangleDriftSpan = 24.0 // horizontal sweep amplitude in pixels
	triangleDriftFreq = 0.7
)

// wobbleBobSpan is the peak vertical bob velocity of a circle in pixels
// per second. Each circle bobs at its own Wobble frequency, offset by
// its Phase, on top of its base drift.
const wobbleBobSpan = 6.0

// Shape is one top-level drawable primitive: a circle, triangle, or
// rectangle with randomized kinematics. Records are mutated in place by
// step each frame and drawn by the renderer with a time-varying pulse
// and gradient fill.
type Shape struct {
	Kind ShapeKind

	X, Y   float64
	Radius float64 // circle
	Size   float64 // triangle, distance from centroid to each vertex
	W, H   float64 // rect

	Fill        Color
	Stroke      Color
	StrokeWidth float64 // 0 means no outline
	Fade        float64 // gradient endpoint opacity, in [0.05, 0.6]

	VX, VY   float64
	Rotation float64
	RotSpeed float64
	Phase    float64
	Wobble   float64 // parallax oscillation frequency coefficient
	Skew     float64 // rect horizontal shear

	anchorX float64 // triangle drift center
}

// NewCircle returns a circle with attributes sampled from the fixed
// ranges: radius in [18, 120], velocity in [-18, 18] px/s per axis, and
// a spawn position inset from the surface edges. Circles wrap toroidally
// once in motion.
func NewCircle(w, h float64, pal Palette) *Shape {
	x, y := spawnPoint(w, h)
	s := &Shape{
		Kind:     KindCircle,
		X:        x,
		Y:        y,
		Radius:   Range{18, 120}.Random(),
		VX:       Range{-18, 18}.Random(),
		VY:       Range{-18, 18}.Random(),
		RotSpeed: Range{-0.3, 0.3}.Random(),
		Phase:    Range{0, 2 * math.Pi}.Random(),
		Wobble:   Range{0.5, 1.6}.Random(),
	}
	s.paint(pal)
	return s
}

// NewTriangle returns a triangle with size in [24, 90] that sinks or
// rises vertically while sweeping horizontally about its spawn anchor
// with the fixed drift phase.
func NewTriangle(w, h float64, pal Palette) *Shape {
	x, y := spawnPoint(w, h)
	s := &Shape{
		Kind:     KindTriangle,
		X:        x,
		Y:        y,
		Size:     Range{24, 90}.Random(),
		VY:       Range{-14, 14}.Random(),
		RotSpeed: Range{-0.6, 0.6}.Random(),
		Wobble:   Range{0.5, 1.6}.Random(),
		anchorX:  x,
	}
	s.paint(pal)
	return s
}

// NewRect returns a rectangle with width in [30, 110], height in
// [20, 80], and a slight shear in [-0.15, 0.15].
func NewRect(w, h float64, pal Palette) *Shape {
	x, y := spawnPoint(w, h)
	s := &Shape{
		Kind:     KindRect,
		X:        x,
		Y:        y,
		W:        Range{30, 110}.Random(),
		H:        Range{20, 80}.Random(),
		VX:       Range{-10, 10}.Random(),
		VY:       Range{-10, 10}.Random(),
		RotSpeed: Range{-0.4, 0.4}.Random(),
		Phase:    Range{0, 2 * math.Pi}.Random(),
		Wobble:   Range{0.5, 1.6}.Random(),
		Skew:     Range{-0.15, 0.15}.Random(),
	}
	s.paint(pal)
	return s
}

// paint assigns the fill, gradient endpoint, and the optional outline
// shared by every shape kind.
func (s *Shape) paint(pal Palette) {
	s.Fill = Translucent(pal.Pick(), Range{0.65, 0.95}.Random())
	s.Fade = Range{0.05, 0.6}.Random()
	if rand.Float64() < 0.4 {
		s.Stroke = Translucent(pal.Pick(), 0.8)
		s.StrokeWidth = Range{1, 3}.Random()
	}
}

// spawnPoint returns a random position inset spawnInset from every edge
// of a w-by-h surface.
func spawnPoint(w, h float64) (float64, float64) {
	x := Range{w * spawnInset, w * (1 - spawnInset)}.Random()
	y := Range{h * spawnInset, h * (1 - spawnInset)}.Random()
	return x, y
}

// step advances the shape's kinematic fields by dt seconds at absolute
// animation time t, within a surface of the given logical size. Rotation
// accumulates monotonically; trig is periodic so no wraparound is
// needed. Positions wrap toroidally, checked every frame before the
// shape is drawn.
func (s *Shape) step(dt, t, w, h float64) {
	s.Rotation += s.RotSpeed * dt

	switch s.Kind {
	case KindCircle:
		s.X += s.VX * dt
		s.Y += (s.VY + math.Sin(t*s.Wobble+s.Phase)*wobbleBobSpan) * dt
		s.X = wrapAxis(s.X, s.Radius, w)
		s.Y = wrapAxis(s.Y, s.Radius, h)
	case KindTriangle:
		s.Y += s.VY * dt
		s.X = s.anchorX + math.Sin(triangleDriftFreq*t+triangleDriftPhase)*triangleDriftSpan
		s.Y = wrapAxis(s.Y, s.Size, h)
	case KindRect:
		s.X += s.VX * dt
		s.Y += s.VY * dt
		pad := math.Max(s.W, s.H) / 2
		s.X = wrapAxis(s.X, pad, w)
		s.Y = wrapAxis(s.Y, pad, h)
	}
}

// wrapAxis teleports v to the opposite edge once it exits
// [-pad, limit+pad], preserving whatever velocity brought it there.
func wrapAxis(v, pad, limit float64) float64 {
	if v > limit+pad {
		return -pad
	}
	if v < -pad {
		return limit + pad
	}
	return v
}

// pulseScale returns the time-varying size multiplier at animation time
// t. Pure in t and the record, so repeated calls agree exactly.
func (s *Shape) pulseScale(t float64) float64 {
	switch s.Kind {
	case KindCircle:
		return 1 + circlePulseAmp*math.Sin(circlePulseFreq*t+s.Phase)
	case KindTriangle:
		return 1 + trianglePulseAmp*math.Sin(trianglePulseFreq*t+s.Phase)
	default:
		return 1 + rectPulseAmp*math.Sin(rectPulseFreq*t+s.Phase)
	}
}
