package vtcore

import (
	"golang.org/x/image/font"
)

// Renderer repaints a Model's dirty rows into a DisplayAdapter. It
// never propagates an adapter error: every draw call's error is
// swallowed, per the model's failure semantics — a transient SPI
// failure must not wedge the painter loop.
type Renderer struct{}

// NewRenderer constructs a Renderer. It carries no state of its own;
// all state lives in the Model it paints from.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Paint runs one paint cycle against adapter. The caller must not hold
// m's lock; Paint acquires it itself for the duration of the cycle.
func (rnd *Renderer) Paint(m *Model, adapter DisplayAdapter) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cw := m.font.cellWidth()
	ch := m.font.cellHeight()

	if m.fullRepaint {
		_ = adapter.Clear(defaultBgRGB565)
	}

	for y := 0; y < m.rows; y++ {
		row, clearDirty := m.sourceRow(y)
		if !row.Dirty && !m.fullRepaint {
			continue
		}

		for x := 0; x < m.cols; x++ {
			cell := row.Cells[x]
			fg, bg := cell.Style.resolveFgBg()
			rect := Rect{X: x * cw, Y: y * ch, W: cw, H: ch}

			_ = adapter.FillSolid(rect, bg)
			drawGlyph(adapter, m.font.Face, cell.Codepoint, rect, fg)

			if cell.Style.Underline {
				_ = adapter.DrawLine(
					Point{rect.X, rect.Y + rect.H - 1},
					Point{rect.X + rect.W - 1, rect.Y + rect.H - 1},
					1, fg,
				)
			}
		}

		clearDirty()
	}

	m.fullRepaint = false

	// Cursor is drawn every cycle, unconditionally, without tracking or
	// dirtying its previous position — a known visual artifact: after a
	// move that writes nothing (CR, LF, cursor motion), the previous
	// cursor cell keeps the white block and its glyph is not redrawn
	// until its row is re-dirtied.
	cursorRect := Rect{X: m.cursorX * cw, Y: m.cursorY * ch, W: cw, H: ch}
	_ = adapter.FillSolid(cursorRect, whiteRGB565)
}

// drawGlyph draws a single cell's glyph: procedural box-drawing if the
// codepoint is in U+2500-U+259F, nothing if it's a space, otherwise the
// monospace text routine.
func drawGlyph(adapter DisplayAdapter, face font.Face, r rune, rect Rect, fg RGB565) {
	if isBoxDrawing(r) {
		paintBoxGlyph(adapter, r, rect, fg)
		return
	}
	if r == ' ' || r == 0 {
		return
	}

	baseline := rect.Y + rect.H
	if face != nil {
		baseline = rect.Y + face.Metrics().Ascent.Ceil()
	}
	_ = adapter.DrawText(string(r), Point{rect.X, baseline}, TextStyle{Color: fg})
}
