package vtcore

import (
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Font carries the monospace cell metrics the grid and renderer derive
// rows/cols and pixel geometry from.
type Font struct {
	Face        font.Face
	CharWidth   int
	CharHeight  int
	CharSpacing int
}

// DefaultFont returns the built-in basicfont.Face7x13 metrics: the
// closest fixed-width face available without requiring the host to
// supply a PROFONT_10-class TTF/OTF at runtime.
func DefaultFont() Font {
	face := basicfont.Face7x13
	adv, _ := face.GlyphAdvance('M')
	w := adv.Ceil()
	if w == 0 {
		w = 7
	}
	return Font{
		Face:       face,
		CharWidth:  w,
		CharHeight: face.Metrics().Height.Ceil(),
	}
}

// LoadFont loads a TrueType or OpenType font from a file path and
// derives cell metrics from it at the given point size.
func LoadFont(path string, size float64) (Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return Font{}, err
	}
	defer f.Close()
	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Font{}, err
	}
	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a font from raw TrueType/OpenType bytes.
func LoadFontFromBytes(data []byte, size float64) (Font, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return Font{}, err
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return Font{}, err
	}
	adv, _ := face.GlyphAdvance('M')
	w := adv.Ceil()
	return Font{
		Face:       face,
		CharWidth:  w,
		CharHeight: face.Metrics().Height.Ceil(),
	}, nil
}

// cellWidth and cellHeight are the pixel dimensions of one grid cell.
func (f Font) cellWidth() int  { return f.CharWidth + f.CharSpacing }
func (f Font) cellHeight() int { return f.CharHeight }
