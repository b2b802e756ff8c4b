package vtcore

import "testing"

func TestNewGridDimensions(t *testing.T) {
	g := newGrid(24, 80)
	if g.Rows() != 24 || g.Cols() != 80 {
		t.Fatalf("dims = %dx%d, want 24x80", g.Rows(), g.Cols())
	}
	for y := 0; y < g.Rows(); y++ {
		if len(g.row(y).Cells) != 80 {
			t.Fatalf("row %d has %d cells, want 80", y, len(g.row(y).Cells))
		}
	}
}

func TestGridScrollUpEvictsTopRowAndAppendsFresh(t *testing.T) {
	g := newGrid(3, 4)
	g.row(0).Cells[0].Codepoint = 'a'
	g.row(1).Cells[0].Codepoint = 'b'
	g.row(2).Cells[0].Codepoint = 'c'

	evicted := g.scrollUp()

	if evicted.Cells[0].Codepoint != 'a' {
		t.Errorf("evicted row = %q, want 'a'", evicted.Cells[0].Codepoint)
	}
	if g.row(0).Cells[0].Codepoint != 'b' || g.row(1).Cells[0].Codepoint != 'c' {
		t.Error("rows did not shift up correctly")
	}
	if g.row(2).Cells[0] != blankCell {
		t.Error("appended tail row is not blank")
	}
}

func TestGridScrollUpFreshRowIsDefaultStyleAfterStyledRow(t *testing.T) {
	g := newGrid(2, 3)
	red := Style{Fg: Indexed(ColorRed)}
	g.row(0).Cells[0] = Cell{Codepoint: 'x', Style: red}

	g.scrollUp()

	for i, c := range g.row(1).Cells {
		if c != blankCell {
			t.Errorf("fresh row cell[%d] = %+v, want blankCell (DefaultStyle)", i, c)
		}
	}
}
