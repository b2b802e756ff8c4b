package vtcore

import "testing"

func TestNewRowIsBlankAndDirty(t *testing.T) {
	row := newRow(10)
	if len(row.Cells) != 10 {
		t.Fatalf("len(Cells) = %d, want 10", len(row.Cells))
	}
	if !row.Dirty {
		t.Error("new row must start dirty")
	}
	for i, c := range row.Cells {
		if c != blankCell {
			t.Errorf("cell %d = %+v, want blank", i, c)
		}
	}
}

func TestRowClearRange(t *testing.T) {
	row := newRow(5)
	for i := range row.Cells {
		row.Cells[i].Codepoint = 'x'
	}
	row.Dirty = false

	row.clearRange(1, 3, DefaultStyle)

	want := []rune{'x', ' ', ' ', ' ', 'x'}
	for i, w := range want {
		if row.Cells[i].Codepoint != w {
			t.Errorf("cell %d = %q, want %q", i, row.Cells[i].Codepoint, w)
		}
	}
	if !row.Dirty {
		t.Error("clearRange must mark the row dirty")
	}
}

func TestRowCloneIsIndependent(t *testing.T) {
	row := newRow(3)
	clone := row.clone()
	clone.Cells[0].Codepoint = 'z'
	if row.Cells[0].Codepoint == 'z' {
		t.Error("clone shares backing array with original")
	}
}
