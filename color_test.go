package vtcore

import "testing"

func TestColorResolveIndexedFallback(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		fg   bool
		want RGB565
	}{
		{"named black", Indexed(ColorBlack), true, palette16[ColorBlack]},
		{"named bright white", Indexed(ColorBrightWhite), false, palette16[ColorBrightWhite]},
		{"indexed 200 fg falls back to white", Indexed(200), true, whiteRGB565},
		{"indexed 200 bg falls back to black", Indexed(200), false, defaultBgRGB565},
		{"default fg", DefaultFg, true, defaultFgRGB565},
		{"default bg", DefaultBg, false, defaultBgRGB565},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.resolve(tt.fg); got != tt.want {
				t.Errorf("resolve(%v, fg=%v) = %v, want %v", tt.c, tt.fg, got, tt.want)
			}
		})
	}
}

func TestStyleResolveReverseSwapsFgBg(t *testing.T) {
	s := Style{Fg: Indexed(ColorRed), Bg: Indexed(ColorBlue), Reverse: true}
	fg, bg := s.resolveFgBg()
	if fg != palette16[ColorBlue] || bg != palette16[ColorRed] {
		t.Errorf("reverse swap failed: fg=%v bg=%v", fg, bg)
	}
}

func TestStyleResolveBoldPromotesDefaultFgToWhite(t *testing.T) {
	s := Style{Fg: DefaultFg, Bg: DefaultBg, Bold: true}
	fg, _ := s.resolveFgBg()
	if fg != whiteRGB565 {
		t.Errorf("bold default fg = %v, want white", fg)
	}

	// Bold does not alter a color that does not resolve to the default
	// light gray.
	s2 := Style{Fg: Indexed(ColorRed), Bg: DefaultBg, Bold: true}
	fg2, _ := s2.resolveFgBg()
	if fg2 != palette16[ColorRed] {
		t.Errorf("bold altered a non-default fg: %v", fg2)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	packed := packRGB(0xF8, 0xFC, 0xF8)
	r, g, b := packed.RGB()
	if r != 0xFF && r != 0xF8 {
		t.Errorf("unexpected red channel: %x", r)
	}
	if g < 0xF8 {
		t.Errorf("unexpected green channel: %x", g)
	}
	if b < 0xF0 {
		t.Errorf("unexpected blue channel: %x", b)
	}
}
