package vtcore

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width PrintRune needs to decide whether
// a scalar consumes a cell of its own: 0 for zero-width combining marks
// and control characters, 1 or 2 otherwise.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}
