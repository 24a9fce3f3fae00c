package mural

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fixed decorative constants. Positions are ratios of the surface size;
// everything else is in pixels, seconds, or [0, 1] alpha.
const (
	hatchSpacing = 90.0
	hatchAlpha   = 0.035

	ringXRatio   = 0.72
	ringYRatio   = 0.30
	ringRadius   = 0.18 // of min(w, h)
	ringTicks    = 48
	ringSpin     = 0.15 // rad/s
	ringAlpha    = 0.10
	ringWidth    = 10.0

	accentXRatio = 0.82
	accentYRatio = 0.14

	signXRatio = 0.88
	signYRatio = 0.94

	parallaxSpan = 8.0

	circleSegments = 36
)

var (
	washTop    = ParseHex("#141220")
	washBottom = ParseHex("#221E33")
	overlayInk = ParseHex("#EDEAE0")
)

// --- White pixel singleton (no sync.Once — mural is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// All gradient meshes sample it; per-vertex colors do the rest.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// renderer issues all drawing for one composition. It owns scratch
// buffers reused across frames, so the steady state allocates nothing.
type renderer struct {
	width, height float64
	alpha         float64 // whole-frame fade modulation, set per frame

	verts   []ebiten.Vertex
	inds    []uint16
	sortBuf []*Shape
}

// drawFrame renders one full frame at animation time t. The order is
// load-bearing: background wash, hatch overlay, the rotating ring, all
// groups, all strokes, the depth-sorted shapes, then the two fixed
// overlays.
func (r *renderer) drawFrame(dst *ebiten.Image, sc *Scene, t float64) {
	r.drawBackground(dst)
	r.drawHatch(dst)
	r.drawRing(dst, t)
	for _, g := range sc.Groups {
		r.drawGroup(dst, g, t)
	}
	for _, st := range sc.Strokes {
		r.drawStroke(dst, st, t)
	}
	r.sortShapesByDepth(sc.Shapes)
	for _, s := range r.sortBuf {
		r.drawShape(dst, s, t)
	}
	r.drawAccent(dst)
	r.drawSignature(dst)
}

// sortShapesByDepth rebuilds the painter's-algorithm draw order: shapes
// sorted ascending by current vertical position, so lower shapes paint
// over higher ones. Positions move every tick, so the order is rebuilt
// every frame into a reusable scratch buffer. Stable insertion sort:
// zero allocations and optimal for a nearly sorted list.
func (r *renderer) sortShapesByDepth(shapes []*Shape) {
	n := len(shapes)
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]*Shape, n)
	}
	r.sortBuf = r.sortBuf[:n]
	copy(r.sortBuf, shapes)
	for i := 1; i < n; i++ {
		key := r.sortBuf[i]
		j := i - 1
		for j >= 0 && r.sortBuf[j].Y > key.Y {
			r.sortBuf[j+1] = r.sortBuf[j]
			j--
		}
		r.sortBuf[j+1] = key
	}
}

// --- Layer 1-3: background, hatch, ring ---

// drawBackground fills the surface with a vertical two-stop wash.
func (r *renderer) drawBackground(dst *ebiten.Image) {
	r.reset()
	r.appendVertex(0, 0, washTop)
	r.appendVertex(r.width, 0, washTop)
	r.appendVertex(r.width, r.height, washBottom)
	r.appendVertex(0, r.height, washBottom)
	r.inds = append(r.inds, 0, 1, 2, 0, 2, 3)
	r.submit(dst)
}

// drawHatch lays a soft 45-degree hatch across the whole surface.
func (r *renderer) drawHatch(dst *ebiten.Image) {
	clr := r.tint(overlayInk.withAlpha(hatchAlpha))
	for x := -r.height; x < r.width; x += hatchSpacing {
		vector.StrokeLine(dst,
			float32(x), 0,
			float32(x+r.height), float32(r.height),
			1, clr, true)
	}
}

// drawRing draws the large translucent ring as a circle of arc ticks
// that rotate together, with every sixth tick left open.
func (r *renderer) drawRing(dst *ebiten.Image, t float64) {
	cx := r.width * ringXRatio
	cy := r.height * ringYRatio
	rad := math.Min(r.width, r.height) * ringRadius
	rot := t * ringSpin
	clr := r.tint(overlayInk.withAlpha(ringAlpha))

	step := 2 * math.Pi / ringTicks
	for i := 0; i < ringTicks; i++ {
		if i%6 == 5 {
			continue
		}
		a0 := rot + float64(i)*step
		a1 := a0 + step*0.72
		vector.StrokeLine(dst,
			float32(cx+math.Cos(a0)*rad), float32(cy+math.Sin(a0)*rad),
			float32(cx+math.Cos(a1)*rad), float32(cy+math.Sin(a1)*rad),
			ringWidth, clr, true)
	}
}

// --- Layer 4: groups ---

// groupTransform composes the group's translate, rotate, and uniform
// scale into one affine matrix.
func groupTransform(g *Group) [6]float64 {
	sin, cos := math.Sincos(g.Rotation)
	return [6]float64{cos * g.Scale, sin * g.Scale, -sin * g.Scale, cos * g.Scale, g.X, g.Y}
}

// childRectCorners returns the world-space corners of a rect child at
// time t. The geometry is built in group-local coordinates and mapped
// through the group transform, so the cluster stays rigid: the corners
// tilt with the group's rotation rather than staying axis-aligned.
func childRectCorners(m [6]float64, c *Child, t float64, i int) [4]Vec2 {
	sz := c.Size * childPulse(t, i)
	hw, hh := sz, sz*0.7
	locals := [4]Vec2{
		{c.X - hw, c.Y - hh},
		{c.X + hw, c.Y - hh},
		{c.X + hw, c.Y + hh},
		{c.X - hw, c.Y + hh},
	}
	var out [4]Vec2
	for j, p := range locals {
		out[j].X, out[j].Y = apply(m, p.X, p.Y)
	}
	return out
}

// childTriangleVertices returns the world-space vertices of a triangle
// child at time t, group-local geometry mapped through the group
// transform like childRectCorners.
func childTriangleVertices(m [6]float64, c *Child, t float64, i int) [3]Vec2 {
	sz := c.Size * childPulse(t, i)
	locals := [3]Vec2{
		{c.X, c.Y - sz},
		{c.X + sz*0.866, c.Y + sz*0.5},
		{c.X - sz*0.866, c.Y + sz*0.5},
	}
	var out [3]Vec2
	for j, p := range locals {
		out[j].X, out[j].Y = apply(m, p.X, p.Y)
	}
	return out
}

// drawGroup establishes the group's transform (translate, rotate,
// uniform scale) and draws each child with a further translate only.
// Child geometry carries no independent rotation and so inherits the
// group's. Children get a single flat fill plus an optional flat outline; their
// drawn size pulses with time while their local geometry stays fixed.
func (r *renderer) drawGroup(dst *ebiten.Image, g *Group, t float64) {
	m := groupTransform(g)

	for i := range g.Children {
		c := &g.Children[i]

		switch c.Kind {
		case KindCircle:
			cx, cy := apply(m, c.X, c.Y)
			sz := c.Size * g.Scale * childPulse(t, i)
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(sz), r.tint(c.Fill), true)
			if c.StrokeWidth > 0 {
				vector.StrokeCircle(dst, float32(cx), float32(cy), float32(sz), float32(c.StrokeWidth), r.tint(c.Stroke), true)
			}
		case KindRect:
			q := childRectCorners(m, c, t, i)
			r.reset()
			for _, p := range q {
				r.appendVertex(p.X, p.Y, c.Fill)
			}
			r.inds = append(r.inds, 0, 1, 2, 0, 2, 3)
			r.submit(dst)
			if c.StrokeWidth > 0 {
				w := float32(c.StrokeWidth)
				clr := r.tint(c.Stroke)
				for j := range q {
					k := (j + 1) % len(q)
					vector.StrokeLine(dst, float32(q[j].X), float32(q[j].Y), float32(q[k].X), float32(q[k].Y), w, clr, true)
				}
			}
		case KindTriangle:
			v := childTriangleVertices(m, c, t, i)
			r.reset()
			for _, p := range v {
				r.appendVertex(p.X, p.Y, c.Fill)
			}
			r.inds = append(r.inds, 0, 1, 2)
			r.submit(dst)
			if c.StrokeWidth > 0 {
				r.strokeTriangle(dst, v[0].X, v[0].Y, v[1].X, v[1].Y, v[2].X, v[2].Y, c.StrokeWidth, c.Stroke)
			}
		}
	}
}

// --- Layer 5: strokes ---

// drawStroke renders the polyline shifted by the stroke's global
// time-varying offset. The point sequence itself is never mutated.
func (r *renderer) drawStroke(dst *ebiten.Image, st *Stroke, t float64) {
	ox, oy := st.offset(t)
	clr := r.tint(st.Color)
	for i := 0; i < len(st.Points)-1; i++ {
		p, q := st.Points[i], st.Points[i+1]
		vector.StrokeLine(dst,
			float32(p.X+ox), float32(p.Y+oy),
			float32(q.X+ox), float32(q.Y+oy),
			float32(st.Width), clr, true)
	}
}

// --- Layer 6: shapes ---

// drawShape dispatches on the shape's kind after applying the parallax
// oscillation: shapes lower on the surface swing a little farther,
// approximating depth. The offset is draw-only; the record's position
// is not touched here.
func (r *renderer) drawShape(dst *ebiten.Image, s *Shape, t float64) {
	px := math.Sin(t*0.6*s.Wobble+s.Phase) * parallaxSpan * (s.Y / r.height)
	x, y := s.X+px, s.Y

	switch s.Kind {
	case KindCircle:
		r.drawCircle(dst, s, x, y, t)
	case KindTriangle:
		r.drawTriangle(dst, s, x, y, t)
	case KindRect:
		r.drawRect(dst, s, x, y, t)
	}
}

// drawCircle fills a radial gradient disc, solid fill at the center
// fading to the shape's gradient endpoint at the rim.
func (r *renderer) drawCircle(dst *ebiten.Image, s *Shape, x, y, t float64) {
	pr := s.Radius * s.pulseScale(t)
	r.fillCircleFan(dst, x, y, pr, s.Fill, s.Fill.withAlpha(s.Fade))
	if s.StrokeWidth > 0 {
		vector.StrokeCircle(dst, float32(x), float32(y), float32(pr), float32(s.StrokeWidth), r.tint(s.Stroke), true)
	}
}

// drawTriangle fills a rotated triangle, apex solid and base faded.
func (r *renderer) drawTriangle(dst *ebiten.Image, s *Shape, x, y, t float64) {
	sz := s.Size * s.pulseScale(t)
	m := transformAt(x, y, s.Rotation)
	ax, ay := apply(m, 0, -sz)
	bx, by := apply(m, sz*0.866, sz*0.5)
	cx, cy := apply(m, -sz*0.866, sz*0.5)

	faded := s.Fill.withAlpha(s.Fade)
	r.reset()
	r.appendVertex(ax, ay, s.Fill)
	r.appendVertex(bx, by, faded)
	r.appendVertex(cx, cy, faded)
	r.inds = append(r.inds, 0, 1, 2)
	r.submit(dst)

	if s.StrokeWidth > 0 {
		r.strokeTriangle(dst, ax, ay, bx, by, cx, cy, s.StrokeWidth, s.Stroke)
	}
}

// drawRect fills a rotated, sheared quad with a top-to-bottom gradient.
func (r *renderer) drawRect(dst *ebiten.Image, s *Shape, x, y, t float64) {
	pulse := s.pulseScale(t)
	hw, hh := s.W/2*pulse, s.H/2*pulse
	m := transformAt(x, y, s.Rotation)
	corner := func(lx, ly float64) (float64, float64) {
		return apply(m, lx+s.Skew*ly, ly)
	}
	x0, y0 := corner(-hw, -hh)
	x1, y1 := corner(hw, -hh)
	x2, y2 := corner(hw, hh)
	x3, y3 := corner(-hw, hh)

	faded := s.Fill.withAlpha(s.Fade)
	r.reset()
	r.appendVertex(x0, y0, s.Fill)
	r.appendVertex(x1, y1, s.Fill)
	r.appendVertex(x2, y2, faded)
	r.appendVertex(x3, y3, faded)
	r.inds = append(r.inds, 0, 1, 2, 0, 2, 3)
	r.submit(dst)

	if s.StrokeWidth > 0 {
		w := float32(s.StrokeWidth)
		clr := r.tint(s.Stroke)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), w, clr, true)
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), w, clr, true)
		vector.StrokeLine(dst, float32(x2), float32(y2), float32(x3), float32(y3), w, clr, true)
		vector.StrokeLine(dst, float32(x3), float32(y3), float32(x0), float32(y0), w, clr, true)
	}
}

// --- Layer 7-8: fixed overlays ---

// drawAccent draws the small concentric-circle motif near the top right.
func (r *renderer) drawAccent(dst *ebiten.Image) {
	cx := float32(r.width * accentXRatio)
	cy := float32(r.height * accentYRatio)
	ring := r.tint(overlayInk.withAlpha(0.3))
	for _, rad := range [...]float32{9, 16, 24} {
		vector.StrokeCircle(dst, cx, cy, rad, 1.5, ring, true)
	}
	vector.DrawFilledCircle(dst, cx, cy, 3, r.tint(ParseHex("#E8573F").withAlpha(0.6)), true)
}

// drawSignature draws the zigzag signature mark near the bottom right.
func (r *renderer) drawSignature(dst *ebiten.Image) {
	cx := r.width * signXRatio
	cy := r.height * signYRatio
	clr := r.tint(overlayInk.withAlpha(0.5))

	marks := [...]Vec2{{-18, 6}, {-8, -4}, {0, 5}, {9, -3}, {18, 4}}
	for i := 0; i < len(marks)-1; i++ {
		vector.StrokeLine(dst,
			float32(cx+marks[i].X), float32(cy+marks[i].Y),
			float32(cx+marks[i+1].X), float32(cy+marks[i+1].Y),
			2, clr, true)
	}
	vector.DrawFilledCircle(dst, float32(cx+25), float32(cy+2), 2, clr, true)
}

// --- Mesh plumbing ---

// reset clears the scratch vertex and index buffers for the next mesh.
func (r *renderer) reset() {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

// appendVertex appends a premultiplied vertex at (x, y), mapped to the
// center of the shared white pixel. The frame fade is baked in here so
// every fill and gradient stop dims together.
func (r *renderer) appendVertex(x, y float64, c Color) {
	a := float32(clamp01(c.A * r.alpha))
	r.verts = append(r.verts, ebiten.Vertex{
		DstX: float32(x), DstY: float32(y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	})
}

// submit flushes the scratch mesh to the destination image.
func (r *renderer) submit(dst *ebiten.Image) {
	if len(r.inds) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	dst.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), op)
}

// fillCircleFan draws a radial gradient disc as a triangle fan: the
// center vertex carries the inner color, the rim the outer one.
func (r *renderer) fillCircleFan(dst *ebiten.Image, cx, cy, radius float64, inner, outer Color) {
	r.reset()
	r.appendVertex(cx, cy, inner)
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		r.appendVertex(cx+math.Cos(a)*radius, cy+math.Sin(a)*radius, outer)
	}
	for i := 1; i <= circleSegments; i++ {
		r.inds = append(r.inds, 0, uint16(i), uint16(i+1))
	}
	r.submit(dst)
}

// strokeTriangle outlines a triangle with three line segments.
func (r *renderer) strokeTriangle(dst *ebiten.Image, ax, ay, bx, by, cx, cy, width float64, clr Color) {
	w := float32(width)
	c := r.tint(clr)
	vector.StrokeLine(dst, float32(ax), float32(ay), float32(bx), float32(by), w, c, true)
	vector.StrokeLine(dst, float32(bx), float32(by), float32(cx), float32(cy), w, c, true)
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(ax), float32(ay), w, c, true)
}

// tint converts a color to straight-alpha NRGBA with the frame fade
// applied, for the vector package's fill and stroke calls.
func (r *renderer) tint(c Color) color.NRGBA {
	return c.withAlpha(c.A * r.alpha).toNRGBA()
}

// --- Affine helpers ---

// transformAt composes translate(x, y) · rotate(rot) into a single
// affine matrix. Layout: [a, b, c, d, tx, ty].
func transformAt(x, y, rot float64) [6]float64 {
	sin, cos := math.Sincos(rot)
	return [6]float64{cos, sin, -sin, cos, x, y}
}

// apply maps a local point through an affine matrix.
func apply(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
