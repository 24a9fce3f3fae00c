package mural

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want Color
	}{
		{"white", "#FFFFFF", Color{1, 1, 1, 1}},
		{"black shorthand", "#000", Color{0, 0, 0, 1}},
		{"no marker", "3C91E6", Color{0x3C / 255.0, 0x91 / 255.0, 0xE6 / 255.0, 1}},
		{"shorthand doubling", "#EC4", Color{0xEE / 255.0, 0xCC / 255.0, 0x44 / 255.0, 1}},
		{"lowercase", "#e8573f", Color{0xE8 / 255.0, 0x57 / 255.0, 0x3F / 255.0, 1}},
		{"malformed length", "#FFFF", Color{0, 0, 0, 1}},
		{"malformed digits", "#GGGGGG", Color{0, 0, 0, 1}},
		{"empty", "", Color{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHex(tt.tok)
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTranslucent(t *testing.T) {
	if got := Translucent("#FFFFFF", 1.0); got != (Color{1, 1, 1, 1}) {
		t.Errorf("full-opacity white = %v", got)
	}
	if got := Translucent("#000", 0.5); got != (Color{0, 0, 0, 0.5}) {
		t.Errorf("half-opacity black = %v", got)
	}
	// Opacity clamps to [0, 1].
	if got := Translucent("#FFF", 1.5); got.A != 1 {
		t.Errorf("alpha = %v, want clamped to 1", got.A)
	}
	if got := Translucent("#FFF", -0.5); got.A != 0 {
		t.Errorf("alpha = %v, want clamped to 0", got.A)
	}
}

func TestDefaultPaletteSize(t *testing.T) {
	pal := DefaultPalette()
	if len(pal) != 8 {
		t.Fatalf("palette size = %d, want 8", len(pal))
	}
	// Every token parses to a non-black color (guards against typos).
	for _, tok := range pal[:6] {
		if c := ParseHex(tok); c.R == 0 && c.G == 0 && c.B == 0 {
			t.Errorf("token %q parsed to black", tok)
		}
	}
}

func TestPalettePickReturnsMember(t *testing.T) {
	pal := DefaultPalette()
	seen := map[string]bool{}
	for _, tok := range pal {
		seen[tok] = true
	}
	for i := 0; i < 100; i++ {
		if tok := pal.Pick(); !seen[tok] {
			t.Fatalf("Pick returned %q, not a palette member", tok)
		}
	}
}

func TestColorToNRGBA(t *testing.T) {
	got := Color{1, 1, 1, 1}.toNRGBA()
	if got.R != 255 || got.G != 255 || got.B != 255 || got.A != 255 {
		t.Errorf("white = %v, want 255s", got)
	}
	got = Color{0, 0, 0, 0.5}.toNRGBA()
	if got.A != 128 {
		t.Errorf("half alpha = %d, want 128", got.A)
	}
}
