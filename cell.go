package vtcore

// Cell is a single grid position: a codepoint and the style it was
// written with.
type Cell struct {
	Codepoint rune
	Style     Style
}

// blankCell is what a cleared or freshly-allocated cell looks like.
var blankCell = Cell{Codepoint: ' ', Style: DefaultStyle}

// resetTo overwrites the cell with a space in the given style, the
// shape every erase operation and fresh-row allocation needs.
func (c *Cell) resetTo(style Style) {
	c.Codepoint = ' '
	c.Style = style
}
