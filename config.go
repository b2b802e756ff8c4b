package vtcore

// Panel geometry: the fixed SPI panel this module targets is 320×320
// pixels at 16-bit RGB565.
const (
	PanelWidth  = 320
	PanelHeight = 320
)

// DefaultMaxScrollback is the default scrollback capacity (rows).
const DefaultMaxScrollback = 200

// DefaultPaintIntervalMillis is the painter's default wake cadence.
const DefaultPaintIntervalMillis = 200
