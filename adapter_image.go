package vtcore

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageAdapter is a DisplayAdapter backed by an in-memory image.RGBA
// framebuffer. It has no hardware dependency and is useful for tests
// and for previewing output without a real SPI panel.
type ImageAdapter struct {
	Img  *image.RGBA
	Face font.Face
}

// NewImageAdapter allocates a w×h framebuffer drawn with face.
func NewImageAdapter(w, h int, face font.Face) *ImageAdapter {
	return &ImageAdapter{
		Img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		Face: face,
	}
}

func toNRGBA(c RGB565) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (a *ImageAdapter) Clear(c RGB565) error {
	col := toNRGBA(c)
	b := a.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a.Img.SetRGBA(x, y, col)
		}
	}
	return nil
}

func (a *ImageAdapter) FillSolid(r Rect, c RGB565) error {
	col := toNRGBA(c)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if image.Pt(x, y).In(a.Img.Bounds()) {
				a.Img.SetRGBA(x, y, col)
			}
		}
	}
	return nil
}

func (a *ImageAdapter) DrawPixel(p Point, c RGB565) error {
	if image.Pt(p.X, p.Y).In(a.Img.Bounds()) {
		a.Img.SetRGBA(p.X, p.Y, toNRGBA(c))
	}
	return nil
}

func (a *ImageAdapter) DrawLine(p0, p1 Point, stroke int, c RGB565) error {
	// Bresenham-free axis-aligned/diagonal stepper: sufficient for the
	// short horizontal/vertical/diagonal strokes box-drawing needs.
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		return a.strokePixel(p0, stroke, c)
	}
	for i := 0; i <= steps; i++ {
		x := p0.X + dx*i/steps
		y := p0.Y + dy*i/steps
		if err := a.strokePixel(Point{x, y}, stroke, c); err != nil {
			return err
		}
	}
	return nil
}

func (a *ImageAdapter) strokePixel(p Point, stroke int, c RGB565) error {
	if stroke < 1 {
		stroke = 1
	}
	half := stroke / 2
	for oy := -half; oy <= half; oy++ {
		for ox := -half; ox <= half; ox++ {
			if err := a.DrawPixel(Point{p.X + ox, p.Y + oy}, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *ImageAdapter) DrawText(s string, p Point, style TextStyle) error {
	if a.Face == nil {
		return nil
	}
	d := &font.Drawer{
		Dst:  a.Img,
		Src:  image.NewUniform(toNRGBA(style.Color)),
		Face: a.Face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(s)
	return nil
}

func (a *ImageAdapter) SetVerticalScrollRegion(top, bottom int) error {
	// No hardware scroll window to configure on a software framebuffer;
	// accepted for interface conformance and always succeeds.
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var _ DisplayAdapter = (*ImageAdapter)(nil)
