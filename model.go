package vtcore

import "sync"

// Model is the terminal's cell grid, cursor, and current style, driven
// by the parser's callbacks on one side and read by the Renderer on
// the other. All mutation happens while mu is held; grid, current
// style, and cursor are touched only by the parser-driver path (single
// producer) and by the renderer (only to clear per-row dirty flags and
// fullRepaint).
type Model struct {
	mu sync.Mutex

	grid       *Grid
	scrollback *Scrollback

	viewportOffset int

	cursorX, cursorY int
	style            Style

	font Font

	rows, cols int

	fullRepaint bool

	parser *Parser
	logger Logger

	paintIntervalMillis int
}

// Option configures a Model during construction.
type Option func(*Model)

// WithSize sets the grid's row/column count directly. If not supplied,
// size is derived from WithFont's metrics and the panel dimensions.
func WithSize(rows, cols int) Option {
	return func(m *Model) {
		if rows > 0 {
			m.rows = rows
		}
		if cols > 0 {
			m.cols = cols
		}
	}
}

// WithFont sets the font used for cell geometry. Defaults to DefaultFont().
func WithFont(f Font) Option {
	return func(m *Model) {
		m.font = f
	}
}

// WithMaxScrollback sets the scrollback capacity. Defaults to DefaultMaxScrollback.
func WithMaxScrollback(n int) Option {
	return func(m *Model) {
		m.scrollback = newScrollback(n)
	}
}

// WithPaintInterval sets the Painter's default wake cadence in
// milliseconds for callers that construct a Painter via NewPainter
// without overriding it explicitly.
func WithPaintInterval(millis int) Option {
	return func(m *Model) {
		if millis > 0 {
			m.paintIntervalMillis = millis
		}
	}
}

// WithLogger sets the diagnostic logger. Defaults to NoopLogger.
func WithLogger(l Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// New constructs a Model. rows/cols default to being derived from the
// font's cell metrics and the fixed panel dimensions if WithSize isn't
// given.
func New(opts ...Option) *Model {
	m := &Model{
		font:                DefaultFont(),
		logger:              NoopLogger{},
		paintIntervalMillis: DefaultPaintIntervalMillis,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rows == 0 || m.cols == 0 {
		cw := m.font.cellWidth()
		ch := m.font.cellHeight()
		if cw < 1 {
			cw = 1
		}
		if ch < 1 {
			ch = 1
		}
		if m.cols == 0 {
			m.cols = PanelWidth / cw
		}
		if m.rows == 0 {
			m.rows = PanelHeight / ch
		}
	}
	if m.scrollback == nil {
		m.scrollback = newScrollback(DefaultMaxScrollback)
	}
	m.grid = newGrid(m.rows, m.cols)
	m.style = DefaultStyle
	m.parser = NewParser(m)
	m.fullRepaint = true
	return m
}

// FeedBytes ingests terminal output, driving the parser which in turn
// mutates the grid. Infallible: no operation in the model returns an
// error to producers.
func (m *Model) FeedBytes(b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parser.Feed(b)
}

// Print ingests a string, equivalent to FeedBytes([]byte(s)).
func (m *Model) Print(s string) {
	m.FeedBytes([]byte(s))
}

// Clear is equivalent to CSI 2J followed by cursor home.
func (m *Model) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetViewportLocked()
	m.eraseDisplay(2)
}

// ScrollViewUp scrolls the viewport toward older scrollback by n rows.
func (m *Model) ScrollViewUp(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewportOffset = min(m.viewportOffset+n, m.scrollback.Len())
	m.fullRepaint = true
}

// ScrollViewDown scrolls the viewport toward the live tail by n rows.
func (m *Model) ScrollViewDown(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewportOffset = max(m.viewportOffset-n, 0)
	m.fullRepaint = true
}

// ResetView returns the viewport to the live tail.
func (m *Model) ResetView() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetViewportLocked()
}

// IncreaseFont and DecreaseFont are reserved hooks with no current
// behavior, matching the original firmware's own font-resizing stubs.
func (m *Model) IncreaseFont() {}
func (m *Model) DecreaseFont() {}

// Width returns the column count.
func (m *Model) Width() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cols
}

// Height returns the row count.
func (m *Model) Height() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// resetViewportLocked drops the scrollback view back to the live tail.
// Called by every producer-driven mutation per the model's invariant
// that viewport_offset resets before producer activity takes effect.
func (m *Model) resetViewportLocked() {
	if m.viewportOffset != 0 {
		m.viewportOffset = 0
		m.fullRepaint = true
	}
}

func (m *Model) scrollUp() {
	evicted := m.grid.scrollUp()
	m.scrollback.push(evicted.clone())
	m.fullRepaint = true
}

// --- Callbacks implementation ---
//
// These are invoked by Parser.Feed while m.mu is already held by
// FeedBytes/Print — they must never lock.

var _ Callbacks = (*Model)(nil)

// PrintRune writes a renderable Unicode scalar at the cursor, wrapping
// and scrolling as needed, per §4.2.
func (m *Model) PrintRune(r rune) {
	m.resetViewportLocked()

	if m.cursorY >= m.rows {
		m.scrollUp()
		m.cursorY = m.rows - 1
	}
	if m.cursorX >= m.cols {
		m.cursorX = 0
		m.cursorY++
		if m.cursorY >= m.rows {
			m.scrollUp()
			m.cursorY = m.rows - 1
		}
	}

	// Zero-width combining marks (runeWidth == 0) are dropped rather than
	// consuming a cell of their own, since the Cell model here has no
	// slot for combining accents. At column 0 there is no preceding cell,
	// so a zero-width scalar there is written like any other.
	if runeWidth(r) == 0 && m.cursorX > 0 {
		return
	}

	row := m.grid.row(m.cursorY)
	row.Cells[m.cursorX] = Cell{Codepoint: r, Style: m.style}
	row.Dirty = true
	m.cursorX++
}

// Execute handles a C0 control byte outside of an escape sequence.
func (m *Model) Execute(b byte) {
	m.resetViewportLocked()

	switch b {
	case 0x0A: // LF
		m.cursorY++
		if m.cursorY >= m.rows {
			m.scrollUp()
			m.cursorY = m.rows - 1
		}
	case 0x0D: // CR
		m.cursorX = 0
	case 0x08: // BS
		m.cursorX = max(m.cursorX-1, 0)
	default:
		// All other C0 bytes are ignored.
	}
}

// CSIDispatch interprets a complete CSI sequence per §4.2's table.
func (m *Model) CSIDispatch(params []int, intermediates []byte, ignore bool, final byte) {
	m.resetViewportLocked()

	if ignore || len(intermediates) > 0 {
		return
	}

	switch final {
	case 'A':
		n := intOrDefault(params, 0, 1)
		m.cursorY = max(m.cursorY-n, 0)
	case 'B':
		n := intOrDefault(params, 0, 1)
		m.cursorY = min(m.cursorY+n, m.rows-1)
	case 'C':
		n := intOrDefault(params, 0, 1)
		m.cursorX = min(m.cursorX+n, m.cols-1)
	case 'D':
		n := intOrDefault(params, 0, 1)
		m.cursorX = max(m.cursorX-n, 0)
	case 'H', 'f':
		row := intOrDefault(params, 0, 1)
		col := intOrDefault(params, 1, 1)
		m.cursorY = clamp(row-1, 0, m.rows-1)
		m.cursorX = clamp(col-1, 0, m.cols-1)
	case 'J':
		m.eraseDisplay(intOrDefault(params, 0, 0))
	case 'K':
		m.eraseLine(intOrDefault(params, 0, 0))
	case 'm':
		m.sgr(params)
	default:
		// Unrecognized final bytes are ignored, never fatal.
	}
}

// OSCDispatch and EscDispatch are accepted and ignored per §4.1.
func (m *Model) OSCDispatch(params [][]byte, bellTerminated bool)          {}
func (m *Model) EscDispatch(intermediates []byte, ignore bool, final byte) {}

// Hook, Put, and Unhook bracket a DCS sequence. The model has no use
// for device control strings; these exist only so the parser's DCS
// grammar has somewhere to dispatch to.
func (m *Model) Hook(params []int, intermediates []byte, ignore bool, final byte) {}
func (m *Model) Put(b byte)                                                       {}
func (m *Model) Unhook()                                                          {}

// eraseDisplay implements CSI J. Erased cells are written as space
// with current_style and their rows marked dirty.
func (m *Model) eraseDisplay(mode int) {
	switch mode {
	case 0: // cursor -> end of display
		m.grid.row(m.cursorY).clearRange(m.cursorX, m.cols-1, m.style)
		for y := m.cursorY + 1; y < m.rows; y++ {
			m.grid.row(y).clear(m.style)
		}
	case 1: // begin of display -> cursor, inclusive
		m.grid.row(m.cursorY).clearRange(0, m.cursorX, m.style)
		for y := 0; y < m.cursorY; y++ {
			m.grid.row(y).clear(m.style)
		}
	case 2: // entire display
		for y := 0; y < m.rows; y++ {
			m.grid.row(y).clear(m.style)
		}
		m.cursorX = 0
		m.cursorY = 0
		m.fullRepaint = true
	}
}

// eraseLine implements CSI K against the cursor's row.
func (m *Model) eraseLine(mode int) {
	row := m.grid.row(m.cursorY)
	switch mode {
	case 0: // cursor -> end of line
		row.clearRange(m.cursorX, m.cols-1, m.style)
	case 1: // beginning of line -> cursor, inclusive
		row.clearRange(0, m.cursorX, m.style)
	case 2: // entire line
		row.clear(m.style)
	}
}

// sgr applies a list of SGR parameters in order, per §4.2.
func (m *Model) sgr(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for _, p := range params {
		switch {
		case p == 0:
			m.style = DefaultStyle
		case p == 1:
			m.style.Bold = true
		case p == 22:
			m.style.Bold = false
		case p == 4:
			m.style.Underline = true
		case p == 24:
			m.style.Underline = false
		case p == 7:
			m.style.Reverse = true
		case p == 27:
			m.style.Reverse = false
		case p >= 30 && p <= 37:
			m.style.Fg = Indexed(uint8(p - 30))
		case p == 39:
			m.style.Fg = DefaultFg
		case p >= 40 && p <= 47:
			m.style.Bg = Indexed(uint8(p - 40))
		case p == 49:
			m.style.Bg = DefaultBg
		case p >= 90 && p <= 97:
			m.style.Fg = Indexed(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			m.style.Bg = Indexed(uint8(p - 100 + 8))
		default:
			// Unrecognized SGR parameters are ignored, never fatal.
		}
	}
}

// sourceRow resolves the row the renderer should draw for screen row y,
// per §4.3's viewport math, along with a clearDirty closure the
// renderer calls after painting it.
func (m *Model) sourceRow(y int) (row Row, clearDirty func()) {
	idx := m.scrollback.Len() - m.viewportOffset + y
	if idx >= 0 && idx < m.scrollback.Len() {
		sb := m.scrollback
		return sb.at(idx), func() { sb.clearDirty(idx) }
	}
	liveY := y - m.viewportOffset
	if liveY < 0 || liveY >= m.rows {
		return Row{Cells: make([]Cell, m.cols)}, func() {}
	}
	r := m.grid.row(liveY)
	return *r, func() { r.Dirty = false }
}
