package grid

import "github.com/wordgrid/engine/pkg/geom"

func (g *Grid) wordStart(p geom.Point, dir geom.Direction) geom.Point {
	start := p
	for {
		prev := start.Step(dir, -1)
		if g.GetBorder(prev, dir) {
			return start
		}
		start = prev
	}
}

func (g *Grid) wordChars(start geom.Point, dir geom.Direction) []rune {
	var out []rune
	cur := start
	for {
		ch, ok := g.GetChar(cur)
		if !ok || ch == Block {
			break
		}
		out = append(out, ch)
		if g.GetBorder(cur, dir) {
			break
		}
		cur = cur.Step(dir, 1)
	}
	return out
}

// WordAt returns the maximal run of cells through p along dir that are
// joined by cleared borders, starting from its true beginning. It returns nil
// if p is out of the grid or holds Block, and a single letter if p is not
// joined to a neighbor along dir.
func (g *Grid) WordAt(p geom.Point, dir geom.Direction) []rune {
	c, ok := g.GetChar(p)
	if !ok || c == Block {
		return nil
	}
	return g.wordChars(g.wordStart(p, dir), dir)
}

// HasWordStart reports whether p is the first cell of an actual (length >= 2)
// word along dir.
func (g *Grid) HasWordStart(p geom.Point, dir geom.Direction) bool {
	c, ok := g.GetChar(p)
	if !ok || c == Block {
		return false
	}
	if !g.GetBorder(p.Step(dir, -1), dir) {
		return false
	}
	return len(g.wordChars(p, dir)) >= 2
}

// WordRangeAt returns the Range of the word passing through p along dir. If
// p holds no letter, or the run through p is shorter than 2, it returns a
// zero-length range anchored at p.
func (g *Grid) WordRangeAt(p geom.Point, dir geom.Direction) geom.Range {
	c, ok := g.GetChar(p)
	if !ok || c == Block {
		return geom.Range{Origin: p, Dir: dir, Length: 0}
	}
	start := g.wordStart(p, dir)
	chars := g.wordChars(start, dir)
	if len(chars) < 2 {
		return geom.Range{Origin: p, Dir: dir, Length: 0}
	}
	return geom.Range{Origin: start, Dir: dir, Length: len(chars)}
}

// WordRangeContaining is an alias for WordRangeAt: the word occupying a given
// range is found by its true beginning regardless of which of its cells p
// names.
func (g *Grid) WordRangeContaining(p geom.Point, dir geom.Direction) geom.Range {
	return g.WordRangeAt(p, dir)
}

// WordRanges yields the Range of every word currently placed in the grid, in
// row-major order, horizontal words before vertical words at a given start
// cell.
func (g *Grid) WordRanges() func(yield func(geom.Range) bool) {
	return func(yield func(geom.Range) bool) {
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				p := geom.Point{X: x, Y: y}
				for _, dir := range [2]geom.Direction{geom.Horizontal, geom.Vertical} {
					if !g.HasWordStart(p, dir) {
						continue
					}
					if !yield(g.WordRangeAt(p, dir)) {
						return
					}
				}
			}
		}
	}
}

// IsWordAllowed reports whether w (length >= 2) could be placed starting at
// p along dir: w is not already present, the run is properly bounded by
// borders before and after, and every cell w would occupy either already
// holds the matching letter or is Block.
func (g *Grid) IsWordAllowed(p geom.Point, dir geom.Direction, w []rune) bool {
	if len(w) < 2 {
		return false
	}
	if g.hasWord(w) {
		return false
	}
	if !g.GetBorder(p.Step(dir, -1), dir) {
		return false
	}
	last := p.Step(dir, len(w)-1)
	if !g.GetBorder(last, dir) {
		return false
	}
	for k, ch := range w {
		cur, ok := g.GetChar(p.Step(dir, k))
		if !ok {
			return false
		}
		if cur != ch && cur != Block {
			return false
		}
	}
	return true
}

// TryPlace places w starting at p along dir if allowed, returning whether it
// did. Placing a word clears the internal borders along its run and
// supersedes any shorter word sharing that same direction and overlapping
// cells; it never disturbs perpendicular words.
func (g *Grid) TryPlace(p geom.Point, dir geom.Direction, w []rune) bool {
	if !g.IsWordAllowed(p, dir, w) {
		return false
	}
	for k, ch := range w {
		q := p.Step(dir, k)
		if old := g.WordAt(q, dir); old != nil {
			g.deleteWord(old)
		}
		g.setChar(q, ch)
	}
	for k := 0; k < len(w)-1; k++ {
		g.setBorder(p.Step(dir, k), dir, false)
	}
	g.addWord(w)
	return true
}

// RemoveWord removes the word passing through p along dir, restoring its
// internal borders and blanking any cell that is not also part of a
// perpendicular word. It returns the removed letters, or nil if p names no
// word of length >= 2.
func (g *Grid) RemoveWord(p geom.Point, dir geom.Direction) []rune {
	w := g.WordAt(p, dir)
	if len(w) < 2 {
		return nil
	}
	start := g.wordStart(p, dir)
	perp := dir.Perpendicular()
	for k := range w {
		q := start.Step(dir, k)
		g.setBorder(q, dir, true)
		if g.BothBorders(q, perp) {
			g.setChar(q, Block)
		}
	}
	g.deleteWord(w)
	return w
}
