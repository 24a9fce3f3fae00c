package mural

import (
	"math"
	"math/rand/v2"
)

// strokeJitter bounds the random offset applied to every wavy-line
// vertex, on both axes.
const strokeJitter = 40.0

// Stroke is a hand-drawn-looking polyline. Its points are generated once
// at creation and never resized; only a time-varying global offset is
// applied at draw time.
type Stroke struct {
	Points []Vec2
	Color  Color
	Width  float64
	Drift  float64 // amplitude of the global draw offset in pixels
	Phase  float64
}

// NewStroke returns a stroke centered at a random inset position, with
// width in [1.5, 4] and drift in [4, 16].
func NewStroke(w, h float64, pal Palette) *Stroke {
	cx, cy := spawnPoint(w, h)
	return &Stroke{
		Points: wavyLine(Vec2{X: cx, Y: cy}, 1),
		Color:  Translucent(pal.Pick(), Range{0.25, 0.7}.Random()),
		Width:  Range{1.5, 4}.Random(),
		Drift:  Range{4, 16}.Random(),
		Phase:  Range{0, 2 * math.Pi}.Random(),
	}
}

// wavyLine builds a jittered polyline around the given center: a random
// length in [120, 420] (scaled by scale) along a random direction,
// subdivided into 3-8 segments, every vertex offset by up to
// ±strokeJitter on both axes.
func wavyLine(center Vec2, scale float64) []Vec2 {
	length := Range{120, 420}.Random() * scale
	dir := Range{0, 2 * math.Pi}.Random()
	segs := 3 + rand.IntN(6) // 3..8 segments, 4..9 points

	dx, dy := math.Cos(dir), math.Sin(dir)
	start := Vec2{X: center.X - dx*length/2, Y: center.Y - dy*length/2}

	pts := make([]Vec2, segs+1)
	for i := range pts {
		t := float64(i) / float64(segs)
		pts[i] = Vec2{
			X: start.X + dx*length*t + Range{-strokeJitter, strokeJitter}.Random(),
			Y: start.Y + dy*length*t + Range{-strokeJitter, strokeJitter}.Random(),
		}
	}
	return pts
}

// offset returns the stroke's global draw offset at animation time t.
// Pure in t and the record; the point sequence is never touched.
func (st *Stroke) offset(t float64) (float64, float64) {
	ox := math.Sin(0.7*t+st.Phase) * st.Drift
	oy := math.Cos(0.5*t+st.Phase) * st.Drift * 0.6
	return ox, oy
}
