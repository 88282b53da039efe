package grid

import "github.com/wordgrid/engine/pkg/geom"

// freeRunForward collects the points reachable forward from p (inclusive)
// while each is in the grid and bordered along dir, i.e. not yet joined into
// a word.
func (g *Grid) freeRunForward(p geom.Point, dir geom.Direction) []geom.Point {
	var pts []geom.Point
	cur := p
	for cur.InBounds(g.w, g.h) && g.GetBorder(cur, dir) {
		pts = append(pts, cur)
		cur = cur.Step(dir, 1)
	}
	return pts
}

// FreeRangeAt returns the free range starting at p, if p is the true
// beginning of one: either the grid edge precedes p, or the cell before p
// ends a word (it is bordered along dir while the cell before it is not). If
// p is not such a beginning, it returns a zero-length range anchored at p.
func (g *Grid) FreeRangeAt(p geom.Point, dir geom.Direction) geom.Range {
	prev := p.Step(dir, -1)
	isStart := !prev.InBounds(g.w, g.h)
	if !isStart {
		prev2 := prev.Step(dir, -1)
		isStart = g.GetBorder(prev, dir) && !g.GetBorder(prev2, dir)
	}
	if !isStart {
		return geom.Range{Origin: p, Dir: dir, Length: 0}
	}
	pts := g.freeRunForward(p, dir)
	return geom.Range{Origin: p, Dir: dir, Length: len(pts)}
}

// FreeRangeContaining returns the free range containing p, walking back to
// its true beginning first.
func (g *Grid) FreeRangeContaining(p geom.Point, dir geom.Direction) geom.Range {
	cur := p
	for {
		prev := cur.Step(dir, -1)
		if !prev.InBounds(g.w, g.h) {
			break
		}
		prev2 := prev.Step(dir, -1)
		if !g.GetBorder(prev, dir) || !g.GetBorder(prev2, dir) {
			break
		}
		cur = prev
	}
	return g.FreeRangeAt(cur, dir)
}

// RangeAfter returns the maximal free range immediately following r, possibly
// zero-length if r is followed by an occupied cell or the grid edge.
func (g *Grid) RangeAfter(r geom.Range) geom.Range {
	start := r.End()
	pts := g.freeRunForward(start, r.Dir)
	return geom.Range{Origin: start, Dir: r.Dir, Length: len(pts)}
}

// RangeBefore returns the maximal free range immediately preceding r,
// possibly zero-length if r is preceded by an occupied cell or the grid edge.
func (g *Grid) RangeBefore(r geom.Range) geom.Range {
	cur := r.Before()
	length := 0
	var origin geom.Point
	for {
		if !cur.InBounds(g.w, g.h) {
			break
		}
		prev := cur.Step(r.Dir, -1)
		if !g.GetBorder(cur, r.Dir) || !g.GetBorder(prev, r.Dir) {
			break
		}
		origin = cur
		length++
		cur = prev
	}
	if length == 0 {
		return geom.Range{Origin: r.Origin, Dir: r.Dir, Length: 0}
	}
	return geom.Range{Origin: origin, Dir: r.Dir, Length: length}
}

// RowAndColumnSlots returns one slot per full row and one per full column of
// a freshly constructed grid. It only makes sense to call this before any
// word has been placed: grid.New starts every internal border unclaimed, so
// each row/column is one maximal free range spanning its full length,
// producing a word-square-style layout with no black squares. Picking where
// to cut black squares and enforcing grid symmetry are out of scope here;
// callers that want a traditional crossword shape should block out cells
// before filling and call FreeRangeContaining per slot themselves instead.
func (g *Grid) RowAndColumnSlots() []geom.Range {
	slots := make([]geom.Range, 0, g.w+g.h)
	for y := 0; y < g.h; y++ {
		slots = append(slots, g.FreeRangeContaining(geom.Point{X: 0, Y: y}, geom.Horizontal))
	}
	for x := 0; x < g.w; x++ {
		slots = append(slots, g.FreeRangeContaining(geom.Point{X: x, Y: 0}, geom.Vertical))
	}
	return slots
}
