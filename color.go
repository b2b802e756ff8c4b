package vtcore

// ColorKind tags which variant a Color holds.
type ColorKind uint8

const (
	ColorDefaultFg ColorKind = iota
	ColorDefaultBg
	ColorIndexed
	ColorRGB
)

// Color is a closed tagged variant over the 16 named ANSI colors (as
// Indexed(0..15)), the default fg/bg, an indexed palette entry, and a
// direct 24-bit color. There is no open extension point: the panel only
// ever needs these four shapes.
type Color struct {
	Kind  ColorKind
	Index uint8 // valid when Kind == ColorIndexed
	R, G, B uint8 // valid when Kind == ColorRGB
}

// Named ANSI color indices (0-7 normal, 8-15 bright), used as
// Color{Kind: ColorIndexed, Index: ColorBlack, ...} etc.
const (
	ColorBlack uint8 = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// DefaultFg is the sentinel Color for "use the terminal default foreground".
var DefaultFg = Color{Kind: ColorDefaultFg}

// DefaultBg is the sentinel Color for "use the terminal default background".
var DefaultBg = Color{Kind: ColorDefaultBg}

// Indexed returns a Color referring to palette entry n.
func Indexed(n uint8) Color {
	return Color{Kind: ColorIndexed, Index: n}
}

// RGB returns a direct 24-bit Color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Style is the per-cell attribute record: colors plus the three boolean
// attributes the CORE's SGR handling supports.
type Style struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Underline bool
	Reverse   bool
}

// DefaultStyle is fg=DefaultFg, bg=DefaultBg, all attribute flags false.
var DefaultStyle = Style{Fg: DefaultFg, Bg: DefaultBg}

// palette16 holds the RGB565-packed values for the 16 named colors,
// a standard VGA-derived ANSI palette truncated to 5-6-5.
var palette16 = [16]RGB565{
	packRGB(0, 0, 0),       // Black
	packRGB(205, 49, 49),   // Red
	packRGB(13, 188, 121),  // Green
	packRGB(229, 229, 16),  // Yellow
	packRGB(36, 114, 200),  // Blue
	packRGB(188, 63, 188),  // Magenta
	packRGB(17, 168, 205),  // Cyan
	packRGB(229, 229, 229), // White
	packRGB(102, 102, 102), // Bright Black
	packRGB(241, 76, 76),   // Bright Red
	packRGB(35, 209, 139),  // Bright Green
	packRGB(245, 245, 67),  // Bright Yellow
	packRGB(59, 142, 234),  // Bright Blue
	packRGB(214, 112, 214), // Bright Magenta
	packRGB(41, 184, 219),  // Bright Cyan
	packRGB(255, 255, 255), // Bright White
}

// defaultFgRGB565 is light gray; defaultBgRGB565 is black.
var (
	defaultFgRGB565 = packRGB(229, 229, 229)
	defaultBgRGB565 = packRGB(0, 0, 0)
	whiteRGB565     = packRGB(255, 255, 255)
)

// resolve converts a Color to its RGB565 pixel value. Indexed(n) with
// n >= 16 falls back to white for fg, black for bg — there is no color
// cube or grayscale ramp, unlike a full 256-color terminal palette.
func (c Color) resolve(fg bool) RGB565 {
	switch c.Kind {
	case ColorDefaultFg:
		return defaultFgRGB565
	case ColorDefaultBg:
		return defaultBgRGB565
	case ColorIndexed:
		if int(c.Index) < len(palette16) {
			return palette16[c.Index]
		}
		if fg {
			return whiteRGB565
		}
		return defaultBgRGB565
	case ColorRGB:
		return packRGB(c.R, c.G, c.B)
	default:
		if fg {
			return defaultFgRGB565
		}
		return defaultBgRGB565
	}
}

// resolveFgBg resolves a Style's effective foreground/background,
// applying reverse-video swap and the bold-promotes-gray-to-white rule.
func (s Style) resolveFgBg() (fg, bg RGB565) {
	fg = s.Fg.resolve(true)
	bg = s.Bg.resolve(false)

	if s.Reverse {
		fg, bg = bg, fg
	}

	if s.Bold && fg == defaultFgRGB565 {
		fg = whiteRGB565
	}

	return fg, bg
}
