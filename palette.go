package mural

import "math/rand/v2"

// Palette is a fixed, ordered set of hex color tokens shared by every
// generator. Read-only after construction.
type Palette []string

// DefaultPalette returns the eight tokens every composition draws from.
func DefaultPalette() Palette {
	return Palette{
		"#E8573F", // coral
		"#F2B741", // amber
		"#3C91E6", // cobalt
		"#2EC4B6", // teal
		"#9B5DE5", // violet
		"#F15BB5", // magenta
		"#EDEAE0", // bone
		"#27233A", // ink
	}
}

// Pick returns a uniformly random token from the palette.
func (p Palette) Pick() string {
	return p[rand.IntN(len(p))]
}

// ParseHex converts a hex token to a fully opaque Color. Both 6-digit
// ("#E8573F") and 3-digit shorthand ("#EC4", expanded by digit doubling)
// forms are accepted, with or without the leading "#". Malformed tokens
// degrade to opaque black rather than failing; nothing validates colors
// again at draw time.
func ParseHex(tok string) Color {
	if len(tok) > 0 && tok[0] == '#' {
		tok = tok[1:]
	}

	var r, g, b int
	var ok bool
	switch len(tok) {
	case 3:
		var rn, gn, bn int
		rn, ok = hexNibble(tok[0])
		if ok {
			gn, ok = hexNibble(tok[1])
		}
		if ok {
			bn, ok = hexNibble(tok[2])
		}
		r, g, b = rn*17, gn*17, bn*17
	case 6:
		r, ok = hexByte(tok[0], tok[1])
		if ok {
			g, ok = hexByte(tok[2], tok[3])
		}
		if ok {
			b, ok = hexByte(tok[4], tok[5])
		}
	}
	if !ok {
		return Color{A: 1}
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// Translucent returns the token's color with the given opacity applied,
// clamped to [0, 1].
func Translucent(tok string, opacity float64) Color {
	return ParseHex(tok).withAlpha(opacity)
}

func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (int, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h*16 + l, ok1 && ok2
}
