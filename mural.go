package mural

import (
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when vertex colors are built for submission.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range sampled by the generators.
type Range struct {
	Min, Max float64
}

// Random returns a uniformly distributed float64 in [Min, Max).
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// withAlpha returns the color with its alpha replaced by a, clamped to [0, 1].
func (c Color) withAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// toNRGBA converts to straight-alpha 8-bit color, the form expected by
// the ebiten vector package.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
