package mural

// Fixed population of every scene. Records are created once at startup
// and live until the composition is destroyed; nothing is ever added or
// removed in between.
const (
	numCircles   = 9
	numTriangles = 8
	numRects     = 6
	numStrokes   = 5
	numGroups    = 3
)

// Scene holds every live record for one composition. Exactly one Scene
// exists per composition; independent compositions never share records.
type Scene struct {
	Shapes  []*Shape
	Strokes []*Stroke
	Groups  []*Group
}

// newScene populates a scene for a surface of the given logical size.
func newScene(w, h float64, pal Palette) *Scene {
	sc := &Scene{
		Shapes:  make([]*Shape, 0, numCircles+numTriangles+numRects),
		Strokes: make([]*Stroke, 0, numStrokes),
		Groups:  make([]*Group, 0, numGroups),
	}
	for range numCircles {
		sc.Shapes = append(sc.Shapes, NewCircle(w, h, pal))
	}
	for range numTriangles {
		sc.Shapes = append(sc.Shapes, NewTriangle(w, h, pal))
	}
	for range numRects {
		sc.Shapes = append(sc.Shapes, NewRect(w, h, pal))
	}
	for range numStrokes {
		sc.Strokes = append(sc.Strokes, NewStroke(w, h, pal))
	}
	for range numGroups {
		sc.Groups = append(sc.Groups, NewGroup(w, h, pal))
	}
	return sc
}

// step advances every record's kinematic fields by dt seconds at
// absolute animation time t. Strokes carry no mutable kinematics; their
// motion is a pure function of t applied at draw time.
func (sc *Scene) step(dt, t, w, h float64) {
	for _, s := range sc.Shapes {
		s.step(dt, t, w, h)
	}
	for _, g := range sc.Groups {
		g.step(dt)
	}
}
