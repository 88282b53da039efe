package grid

import "github.com/wordgrid/engine/pkg/geom"

// EventKind distinguishes the tokens of a print-event stream.
type EventKind int

const (
	Cross EventKind = iota
	VertBorder
	HorizBorder
	BlockCell
	Character
	Hint
	LineBreak
)

// Event is one token of a print-event stream. Which fields are meaningful
// depends on Kind: Border for Cross/VertBorder/HorizBorder, Char for
// Character, HintNumber for Hint.
type Event struct {
	Kind       EventKind
	Border     bool
	Char       rune
	HintNumber int
}

// Mode selects what a print-event stream reveals about letter cells.
type Mode int

const (
	// Solution emits the actual letter of every letter cell.
	Solution Mode = iota
	// Puzzle emits numbered hints at word-start cells and blanks elsewhere.
	Puzzle
)

// PrintEvents returns a lazy sequence of drawing tokens traversing the
// implicit (2W+1)x(2H+1) matrix of corners, border segments, and cells, in
// row-major order, with a LineBreak ending each visual row.
func (g *Grid) PrintEvents(mode Mode) func(yield func(Event) bool) {
	return func(yield func(Event) bool) {
		hints := 0
		for r := 0; r <= g.h; r++ {
			if !g.emitCornerRow(r, yield) {
				return
			}
			if !yield(Event{Kind: LineBreak}) {
				return
			}
			if r == g.h {
				continue
			}
			var ok bool
			hints, ok = g.emitCellRow(r, mode, hints, yield)
			if !ok {
				return
			}
			if !yield(Event{Kind: LineBreak}) {
				return
			}
		}
	}
}

func (g *Grid) emitCornerRow(r int, yield func(Event) bool) bool {
	for x := 0; x <= g.w; x++ {
		if !yield(Event{Kind: Cross, Border: g.crossJunction(x, r)}) {
			return false
		}
		if x < g.w {
			b := g.GetBorder(geom.Point{X: x, Y: r - 1}, geom.Vertical)
			if !yield(Event{Kind: HorizBorder, Border: b}) {
				return false
			}
		}
	}
	return true
}

// crossJunction reports whether the corner at (x, r) is a visible junction:
// more than one of its four adjacent border segments is a true boundary.
func (g *Grid) crossJunction(x, r int) bool {
	segments := [4]bool{
		g.GetBorder(geom.Point{X: x - 1, Y: r - 1}, geom.Horizontal), // above
		g.GetBorder(geom.Point{X: x - 1, Y: r}, geom.Horizontal),     // below
		g.GetBorder(geom.Point{X: x - 1, Y: r - 1}, geom.Vertical),   // left
		g.GetBorder(geom.Point{X: x, Y: r - 1}, geom.Vertical),       // right
	}
	count := 0
	for _, s := range segments {
		if s {
			count++
		}
	}
	return count > 1
}

func (g *Grid) emitCellRow(y int, mode Mode, hints int, yield func(Event) bool) (int, bool) {
	if !yield(Event{Kind: VertBorder, Border: g.GetBorder(geom.Point{X: -1, Y: y}, geom.Horizontal)}) {
		return hints, false
	}
	for x := 0; x < g.w; x++ {
		p := geom.Point{X: x, Y: y}
		c, _ := g.GetChar(p)

		switch {
		case c == Block:
			if !yield(Event{Kind: BlockCell}) {
				return hints, false
			}
		case mode == Solution:
			if !yield(Event{Kind: Character, Char: c}) {
				return hints, false
			}
		case g.HasWordStart(p, geom.Horizontal) || g.HasWordStart(p, geom.Vertical):
			hints++
			if !yield(Event{Kind: Hint, HintNumber: hints}) {
				return hints, false
			}
		default:
			if !yield(Event{Kind: Character, Char: ' '}) {
				return hints, false
			}
		}

		if !yield(Event{Kind: VertBorder, Border: g.GetBorder(p, geom.Horizontal)}) {
			return hints, false
		}
	}
	return hints, true
}
