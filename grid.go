package vtcore

// Grid is a fixed-size rows×cols cell buffer. It is never resized at
// runtime: rows and cols are derived once, at construction, from the
// panel size and the chosen font's cell metrics.
type Grid struct {
	rows, cols int
	rowsData   []Row
}

// newGrid allocates a rows×cols grid of blank, dirty rows.
func newGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols, rowsData: make([]Row, rows)}
	for i := range g.rowsData {
		g.rowsData[i] = newRow(cols)
	}
	return g
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// row returns a pointer to the live row at index i. i must be in [0, rows).
func (g *Grid) row(i int) *Row {
	return &g.rowsData[i]
}

// scrollUp pops the first row (returned by value, to be pushed onto
// scrollback by the caller), shifts all remaining rows up by one, and
// appends a fresh blank row at the tail. The fresh row always carries
// DefaultStyle, regardless of the current cursor style: a scrolled-in
// row is not an erase operation, it's new space that was never touched.
func (g *Grid) scrollUp() Row {
	evicted := g.rowsData[0]
	copy(g.rowsData, g.rowsData[1:])
	g.rowsData[g.rows-1] = newRow(g.cols)
	return evicted
}
