package vtcore

// Box-drawing glyphs (U+2500-U+259F) have no representation in a fixed
// monospace bitmap font, so the renderer synthesizes them from geometric
// primitives against the cell rectangle instead of drawing text. These
// recipes are deliberately simple and approximate, not pixel-perfect
// reproductions of a real box-drawing font.
const (
	boxRangeStart = 0x2500
	boxRangeEnd   = 0x259F
)

// isBoxDrawing reports whether r falls in the procedural box-drawing range.
func isBoxDrawing(r rune) bool {
	return r >= boxRangeStart && r <= boxRangeEnd
}

// paintBoxGlyph draws r into rect using fg, assuming isBoxDrawing(r).
// Unlisted codepoints in range fall back to an inset rectangle outline.
func paintBoxGlyph(adapter DisplayAdapter, r rune, rect Rect, fg RGB565) {
	cx := rect.X + rect.W/2
	cy := rect.Y + rect.H/2
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W-1, rect.Y+rect.H-1

	switch r {
	case 0x2500: // light horizontal
		adapter.DrawLine(Point{x0, cy}, Point{x1, cy}, 1, fg)
	case 0x2501: // heavy horizontal
		adapter.DrawLine(Point{x0, cy}, Point{x1, cy}, 2, fg)
	case 0x2502: // light vertical
		adapter.DrawLine(Point{cx, y0}, Point{cx, y1}, 1, fg)
	case 0x2503: // heavy vertical
		adapter.DrawLine(Point{cx, y0}, Point{cx, y1}, 2, fg)

	case 0x250C: // down and right
		adapter.DrawLine(Point{cx, cy}, Point{cx, y1}, 1, fg)
		adapter.DrawLine(Point{cx, cy}, Point{x1, cy}, 1, fg)
	case 0x2510: // down and left
		adapter.DrawLine(Point{cx, cy}, Point{cx, y1}, 1, fg)
		adapter.DrawLine(Point{cx, cy}, Point{x0, cy}, 1, fg)
	case 0x2514: // up and right
		adapter.DrawLine(Point{cx, cy}, Point{cx, y0}, 1, fg)
		adapter.DrawLine(Point{cx, cy}, Point{x1, cy}, 1, fg)
	case 0x2518: // up and left
		adapter.DrawLine(Point{cx, cy}, Point{cx, y0}, 1, fg)
		adapter.DrawLine(Point{cx, cy}, Point{x0, cy}, 1, fg)

	case 0x251C: // tee right: full vertical, half right
		adapter.DrawLine(Point{cx, y0}, Point{cx, y1}, 1, fg)
		adapter.DrawLine(Point{cx, cy}, Point{x1, cy}, 1, fg)
	case 0x2524: // tee left: full vertical, half left
		adapter.DrawLine(Point{cx, y0}, Point{cx, y1}, 1, fg)
		adapter.DrawLine(Point{cx, cy}, Point{x0, cy}, 1, fg)
	case 0x252C: // tee down: full horizontal, half down
		adapter.DrawLine(Point{x0, cy}, Point{x1, cy}, 1, fg)
		adapter.DrawLine(Point{cx, cy}, Point{cx, y1}, 1, fg)
	case 0x2534: // tee up: full horizontal, half up
		adapter.DrawLine(Point{x0, cy}, Point{x1, cy}, 1, fg)
		adapter.DrawLine(Point{cx, cy}, Point{cx, y0}, 1, fg)

	case 0x253C: // full cross
		adapter.DrawLine(Point{x0, cy}, Point{x1, cy}, 1, fg)
		adapter.DrawLine(Point{cx, y0}, Point{cx, y1}, 1, fg)

	case 0x2550: // double horizontal
		adapter.DrawLine(Point{x0, cy - 1}, Point{x1, cy - 1}, 1, fg)
		adapter.DrawLine(Point{x0, cy + 1}, Point{x1, cy + 1}, 1, fg)
	case 0x2551: // double vertical
		adapter.DrawLine(Point{cx - 1, y0}, Point{cx - 1, y1}, 1, fg)
		adapter.DrawLine(Point{cx + 1, y0}, Point{cx + 1, y1}, 1, fg)

	case 0x2554: // double down+right
		adapter.DrawLine(Point{cx - 1, cy}, Point{cx - 1, y1}, 1, fg)
		adapter.DrawLine(Point{cx + 1, cy + 1}, Point{cx + 1, y1}, 1, fg)
		adapter.DrawLine(Point{cx, cy - 1}, Point{x1, cy - 1}, 1, fg)
		adapter.DrawLine(Point{cx + 1, cy + 1}, Point{x1, cy + 1}, 1, fg)
	case 0x2557: // double down+left
		adapter.DrawLine(Point{cx + 1, cy}, Point{cx + 1, y1}, 1, fg)
		adapter.DrawLine(Point{cx - 1, cy + 1}, Point{cx - 1, y1}, 1, fg)
		adapter.DrawLine(Point{x0, cy - 1}, Point{cx, cy - 1}, 1, fg)
		adapter.DrawLine(Point{x0, cy + 1}, Point{cx - 1, cy + 1}, 1, fg)
	case 0x255A: // double up+right
		adapter.DrawLine(Point{cx - 1, y0}, Point{cx - 1, cy}, 1, fg)
		adapter.DrawLine(Point{cx + 1, y0}, Point{cx + 1, cy - 1}, 1, fg)
		adapter.DrawLine(Point{cx, cy + 1}, Point{x1, cy + 1}, 1, fg)
		adapter.DrawLine(Point{cx + 1, cy - 1}, Point{x1, cy - 1}, 1, fg)
	case 0x255D: // double up+left
		adapter.DrawLine(Point{cx + 1, y0}, Point{cx + 1, cy}, 1, fg)
		adapter.DrawLine(Point{cx - 1, y0}, Point{cx - 1, cy - 1}, 1, fg)
		adapter.DrawLine(Point{x0, cy + 1}, Point{cx, cy + 1}, 1, fg)
		adapter.DrawLine(Point{x0, cy - 1}, Point{cx - 1, cy - 1}, 1, fg)

	case 0x256D: // rounded down+right
		paintRoundedCorner(adapter, rect, cornerDownRight, fg)
	case 0x256E: // rounded down+left
		paintRoundedCorner(adapter, rect, cornerDownLeft, fg)
	case 0x2570: // rounded up+right
		paintRoundedCorner(adapter, rect, cornerUpRight, fg)
	case 0x256F: // rounded up+left
		paintRoundedCorner(adapter, rect, cornerUpLeft, fg)

	case 0x2580: // upper half block
		adapter.FillSolid(Rect{x0, y0, rect.W, rect.H / 2}, fg)
	case 0x2584: // lower half block
		adapter.FillSolid(Rect{x0, cy, rect.W, rect.H - rect.H/2}, fg)
	case 0x2588: // full block
		adapter.FillSolid(rect, fg)

	case 0x2591, 0x2592, 0x2593: // shade 25%/50%/75%
		paintShade(adapter, rect, r, fg)

	default:
		// Inset rectangle outline for any other codepoint in the range.
		adapter.DrawLine(Point{x0 + 1, y0 + 1}, Point{x1 - 1, y0 + 1}, 1, fg)
		adapter.DrawLine(Point{x0 + 1, y1 - 1}, Point{x1 - 1, y1 - 1}, 1, fg)
		adapter.DrawLine(Point{x0 + 1, y0 + 1}, Point{x0 + 1, y1 - 1}, 1, fg)
		adapter.DrawLine(Point{x1 - 1, y0 + 1}, Point{x1 - 1, y1 - 1}, 1, fg)
	}
}

type cornerDir int

const (
	cornerDownRight cornerDir = iota
	cornerDownLeft
	cornerUpRight
	cornerUpLeft
)

// paintRoundedCorner draws a quarter-arc plus the two half-lines
// extending from its endpoints to the cell edges, per §4.6's rounded
// corner recipe (U+256D/256E/2570/256F).
func paintRoundedCorner(adapter DisplayAdapter, rect Rect, dir cornerDir, fg RGB565) {
	cx := rect.X + rect.W/2
	cy := rect.Y + rect.H/2
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W-1, rect.Y+rect.H-1
	radius := rect.W / 2
	if rect.H/2 < radius {
		radius = rect.H / 2
	}
	if radius < 1 {
		radius = 1
	}

	switch dir {
	case cornerDownRight:
		drawQuarterArc(adapter, cx+radius, cy+radius, radius, true, true, fg)
		adapter.DrawLine(Point{cx, cy + radius}, Point{cx, y1}, 1, fg)
		adapter.DrawLine(Point{cx + radius, cy}, Point{x1, cy}, 1, fg)
	case cornerDownLeft:
		drawQuarterArc(adapter, cx-radius, cy+radius, radius, false, true, fg)
		adapter.DrawLine(Point{cx, cy + radius}, Point{cx, y1}, 1, fg)
		adapter.DrawLine(Point{cx - radius, cy}, Point{x0, cy}, 1, fg)
	case cornerUpRight:
		drawQuarterArc(adapter, cx+radius, cy-radius, radius, true, false, fg)
		adapter.DrawLine(Point{cx, y0}, Point{cx, cy - radius}, 1, fg)
		adapter.DrawLine(Point{cx + radius, cy}, Point{x1, cy}, 1, fg)
	case cornerUpLeft:
		drawQuarterArc(adapter, cx-radius, cy-radius, radius, false, false, fg)
		adapter.DrawLine(Point{cx, y0}, Point{cx, cy - radius}, 1, fg)
		adapter.DrawLine(Point{cx - radius, cy}, Point{x0, cy}, 1, fg)
	}
}

// drawQuarterArc plots the ring of pixels at distance ~radius from
// (centerX, centerY), restricted to the quadrant away from the limbs
// (left==true picks the -dx side, up==true picks the -dy side).
func drawQuarterArc(adapter DisplayAdapter, centerX, centerY, radius int, left, up bool, fg RGB565) {
	inner := radius - 1
	if inner < 0 {
		inner = 0
	}
	for dy := 0; dy <= radius; dy++ {
		for dx := 0; dx <= radius; dx++ {
			d := dx*dx + dy*dy
			if d < inner*inner || d > radius*radius {
				continue
			}
			px, py := centerX, centerY
			if left {
				px -= dx
			} else {
				px += dx
			}
			if up {
				py -= dy
			} else {
				py += dy
			}
			adapter.DrawPixel(Point{px, py}, fg)
		}
	}
}

// paintShade fills the cell with a per-pixel checker pattern approximating
// 25%, 50%, or 75% gray density.
func paintShade(adapter DisplayAdapter, rect Rect, r rune, fg RGB565) {
	for py := 0; py < rect.H; py++ {
		for px := 0; px < rect.W; px++ {
			var lit bool
			switch r {
			case 0x2591: // 25%
				lit = px%2 == 0 && py%2 == 0
			case 0x2592: // 50%
				lit = (px+py)%2 == 0
			case 0x2593: // 75%
				lit = !(px%2 == 0 && py%2 == 0)
			}
			if lit {
				adapter.DrawPixel(Point{rect.X + px, rect.Y + py}, fg)
			}
		}
	}
}
