package vtcore

// Point is a 2D integer coordinate, origin top-left, y-down.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned pixel rectangle, origin top-left, y-down.
type Rect struct {
	X, Y, W, H int
}

// TextStyle carries the attributes a DrawText call needs to render a
// glyph run: the color to draw in.
type TextStyle struct {
	Color RGB565
}

// DisplayAdapter is the thin interface the renderer paints through. A
// host application implements this over real SPI/GPIO panel hardware;
// ImageAdapter is a reference implementation for tests and previews.
// Every method returns an error per Go's I/O-interface idiom, but the
// Renderer swallows every error it sees — no draw failure is fatal.
type DisplayAdapter interface {
	Clear(c RGB565) error
	FillSolid(r Rect, c RGB565) error
	DrawText(s string, p Point, style TextStyle) error
	DrawLine(p0, p1 Point, stroke int, c RGB565) error
	DrawPixel(p Point, c RGB565) error
	// SetVerticalScrollRegion is best-effort; callers should ignore errors.
	SetVerticalScrollRegion(top, bottom int) error
}
