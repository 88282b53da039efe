package grid

import (
	"testing"

	"github.com/wordgrid/engine/pkg/geom"
)

func TestFreeRangeAt_FullRowOnEmptyGrid(t *testing.T) {
	g := New(5, 1)
	r := g.FreeRangeAt(geom.Point{0, 0}, geom.Horizontal)
	if r.Length != 5 {
		t.Fatalf("FreeRangeAt on an empty row = length %d, want 5", r.Length)
	}
}

func TestFreeRangeAt_DegenerateMidRun(t *testing.T) {
	g := New(5, 1)
	r := g.FreeRangeAt(geom.Point{2, 0}, geom.Horizontal)
	if !r.Empty() {
		t.Fatalf("FreeRangeAt from a non-start cell should be degenerate, got %+v", r)
	}
}

func TestFreeRangeAt_AfterTerminatingWord(t *testing.T) {
	g := New(6, 1)
	g.TryPlace(geom.Point{0, 0}, geom.Horizontal, []rune("BAR"))

	r := g.FreeRangeAt(geom.Point{3, 0}, geom.Horizontal)
	if r.Length != 3 {
		t.Fatalf("FreeRangeAt after BAR = length %d, want 3 (cols 3..5)", r.Length)
	}
}

func TestFreeRangeContaining(t *testing.T) {
	g := New(6, 1)
	g.TryPlace(geom.Point{0, 0}, geom.Horizontal, []rune("BAR"))

	r := g.FreeRangeContaining(geom.Point{5, 0}, geom.Horizontal)
	if r.Origin != (geom.Point{3, 0}) || r.Length != 3 {
		t.Fatalf("FreeRangeContaining(5,0) = %+v, want origin (3,0) length 3", r)
	}
}

func TestRangeAfterAndBefore(t *testing.T) {
	g := New(8, 1)
	g.TryPlace(geom.Point{2, 0}, geom.Horizontal, []rune("CAT"))

	wordRange := g.WordRangeAt(geom.Point{2, 0}, geom.Horizontal)
	before := g.RangeBefore(wordRange)
	after := g.RangeAfter(wordRange)

	if before.Origin != (geom.Point{0, 0}) || before.Length != 2 {
		t.Errorf("RangeBefore = %+v, want origin (0,0) length 2", before)
	}
	if after.Origin != (geom.Point{5, 0}) || after.Length != 3 {
		t.Errorf("RangeAfter = %+v, want origin (5,0) length 3", after)
	}
}

func TestRangeAfter_ZeroAtGridEdge(t *testing.T) {
	g := New(3, 1)
	g.TryPlace(geom.Point{0, 0}, geom.Horizontal, []rune("CAT"))

	wordRange := g.WordRangeAt(geom.Point{0, 0}, geom.Horizontal)
	after := g.RangeAfter(wordRange)
	if !after.Empty() {
		t.Errorf("RangeAfter at grid edge should be empty, got %+v", after)
	}
}

func TestRangeBefore_ExcludesOccupiedCell(t *testing.T) {
	g := New(10, 1)
	g.TryPlace(geom.Point{0, 0}, geom.Horizontal, []rune("AB"))

	r := geom.Range{Origin: geom.Point{4, 0}, Dir: geom.Horizontal, Length: 1}
	before := g.RangeBefore(r)
	if before.Origin != (geom.Point{2, 0}) || before.Length != 2 {
		t.Fatalf("RangeBefore = %+v, want origin (2,0) length 2 (excluding AB's cells 0-1)", before)
	}
}

func TestRowAndColumnSlots(t *testing.T) {
	g := New(4, 3)
	slots := g.RowAndColumnSlots()

	if len(slots) != 7 {
		t.Fatalf("len(slots) = %d, want 7 (3 rows + 4 columns)", len(slots))
	}

	for i, s := range slots[:3] {
		if s.Dir != geom.Horizontal || s.Length != 4 || s.Origin.Y != i {
			t.Errorf("row slot %d = %+v, want Horizontal length 4 at y=%d", i, s, i)
		}
	}
	for i, s := range slots[3:] {
		if s.Dir != geom.Vertical || s.Length != 3 || s.Origin.X != i {
			t.Errorf("column slot %d = %+v, want Vertical length 3 at x=%d", i, s, i)
		}
	}
}
