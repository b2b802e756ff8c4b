package vtcore

import "testing"

// recordingAdapter captures draw calls for assertions without touching
// any real pixel buffer.
type recordingAdapter struct {
	clears     int
	fills      []Rect
	texts      []string
	lines      int
	pixels     int
	scrollSets int
}

func (a *recordingAdapter) Clear(c RGB565) error {
	a.clears++
	return nil
}
func (a *recordingAdapter) FillSolid(r Rect, c RGB565) error {
	a.fills = append(a.fills, r)
	return nil
}
func (a *recordingAdapter) DrawText(s string, p Point, style TextStyle) error {
	a.texts = append(a.texts, s)
	return nil
}
func (a *recordingAdapter) DrawLine(p0, p1 Point, stroke int, c RGB565) error {
	a.lines++
	return nil
}
func (a *recordingAdapter) DrawPixel(p Point, c RGB565) error {
	a.pixels++
	return nil
}
func (a *recordingAdapter) SetVerticalScrollRegion(top, bottom int) error {
	a.scrollSets++
	return nil
}

var _ DisplayAdapter = (*recordingAdapter)(nil)

func TestRendererFullRepaintClearsOnFirstPaint(t *testing.T) {
	m := newTestModel(4, 8)
	a := &recordingAdapter{}
	r := NewRenderer()

	r.Paint(m, a)

	if a.clears != 1 {
		t.Errorf("clears = %d, want 1 on the initial full repaint", a.clears)
	}
	if m.fullRepaint {
		t.Error("fullRepaint should be cleared after Paint")
	}
}

func TestRendererSkipsCleanRowsAfterFirstPaint(t *testing.T) {
	m := newTestModel(4, 8)
	a := &recordingAdapter{}
	r := NewRenderer()

	r.Paint(m, a) // first paint: full repaint, every row visited
	firstFills := len(a.fills)

	a2 := &recordingAdapter{}
	r.Paint(m, a2) // nothing changed since; all rows clean now
	// Only the unconditional cursor fill should remain; every row was
	// skipped since none are dirty and fullRepaint is now false.
	if len(a2.fills) != 1 {
		t.Errorf("second paint filled %d rects, want 1 (just the cursor)", len(a2.fills))
	}
	if firstFills == 0 {
		t.Error("first full-repaint pass should have painted at least one cell")
	}
}

func TestRendererRepaintsOnlyDirtyRowAfterEdit(t *testing.T) {
	m := newTestModel(4, 8)
	r := NewRenderer()
	r.Paint(m, &recordingAdapter{}) // settle: clear all dirty flags

	m.Print("x") // dirties only row 0

	a := &recordingAdapter{}
	r.Paint(m, a)
	// One row's worth of cells (8 cols) plus the unconditional cursor
	// fill should have been issued; other three rows must have been
	// skipped since they're clean.
	want := m.cols + 1
	if len(a.fills) != want {
		t.Errorf("fills = %d, want %d (one dirty row + cursor)", len(a.fills), want)
	}
}

func TestRendererDrawsUnderlineForUnderlinedCell(t *testing.T) {
	m := newTestModel(2, 4)
	m.Print("\x1b[4mA")

	a := &recordingAdapter{}
	NewRenderer().Paint(m, a)

	if a.lines == 0 {
		t.Error("expected at least one DrawLine call for the underline")
	}
}

func TestRendererCursorAlwaysDrawnAsFilledRect(t *testing.T) {
	m := newTestModel(2, 4)
	a := &recordingAdapter{}
	NewRenderer().Paint(m, a)

	// The cursor cell is filled unconditionally, on top of whatever
	// dirty-row fills already happened.
	if len(a.fills) == 0 {
		t.Fatal("expected at least the cursor fill")
	}
	last := a.fills[len(a.fills)-1]
	cw := m.font.cellWidth()
	ch := m.font.cellHeight()
	want := Rect{X: m.cursorX * cw, Y: m.cursorY * ch, W: cw, H: ch}
	if last != want {
		t.Errorf("last fill = %+v, want cursor rect %+v", last, want)
	}
}

func TestPaintBoxGlyphDrawsLinesNotText(t *testing.T) {
	a := &recordingAdapter{}
	paintBoxGlyph(a, 0x2500, Rect{X: 0, Y: 0, W: 8, H: 13}, whiteRGB565)

	if a.lines == 0 {
		t.Error("expected at least one DrawLine for U+2500")
	}
	if len(a.texts) != 0 {
		t.Error("box-drawing glyphs must never go through DrawText")
	}
}

func TestPaintBoxGlyphShadeUsesPixels(t *testing.T) {
	a := &recordingAdapter{}
	paintBoxGlyph(a, 0x2592, Rect{X: 0, Y: 0, W: 8, H: 13}, whiteRGB565)

	if a.pixels == 0 {
		t.Error("expected DrawPixel calls for the 50% shade glyph")
	}
}

func TestPaintBoxGlyphFullBlockFills(t *testing.T) {
	a := &recordingAdapter{}
	paintBoxGlyph(a, 0x2588, Rect{X: 0, Y: 0, W: 8, H: 13}, whiteRGB565)

	if len(a.fills) != 1 {
		t.Errorf("fills = %d, want 1 for the full block", len(a.fills))
	}
}

func TestIsBoxDrawingRange(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{0x2500, true},
		{0x259F, true},
		{0x24FF, false},
		{0x25A0, false},
		{'A', false},
	}
	for _, c := range cases {
		if got := isBoxDrawing(c.r); got != c.want {
			t.Errorf("isBoxDrawing(%#x) = %v, want %v", c.r, got, c.want)
		}
	}
}
