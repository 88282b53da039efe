// Package grid implements the crossword working grid: a rectangle of letter
// cells with independently tracked right/down borders, the set of words
// currently placed, and the traversal and print-event helpers built on top of
// that state.
package grid

import (
	"github.com/wordgrid/engine/pkg/geom"
)

// Block is the sentinel rune occupying a cell that holds no letter.
const Block = '#'

// Grid is a rectangular working surface of W*H cells. Each cell holds either
// a letter or Block. Between horizontally adjacent cells there is a "right
// border", and between vertically adjacent cells a "down border"; a true
// border means the two cells are not joined into a single word. Borders
// along the outer edge of the grid are implicit and always true.
//
// The zero value is not usable; construct with New.
type Grid struct {
	w, h        int
	chars       []rune
	rightBorder []bool
	downBorder  []bool
	words       map[string]struct{}
}

// New returns a W*H grid with every cell set to Block and every border set.
// W and H must both be at least 1; violating this is a programmer error.
func New(w, h int) *Grid {
	if w < 1 || h < 1 {
		panic("grid: width and height must each be at least 1")
	}
	g := &Grid{
		w:     w,
		h:     h,
		chars: make([]rune, w*h),
		words: make(map[string]struct{}),
	}
	for i := range g.chars {
		g.chars[i] = Block
	}
	if w > 1 {
		g.rightBorder = make([]bool, (w-1)*h)
	}
	if h > 1 {
		g.downBorder = make([]bool, w*(h-1))
	}
	for i := range g.rightBorder {
		g.rightBorder[i] = true
	}
	for i := range g.downBorder {
		g.downBorder[i] = true
	}
	return g
}

// Width returns W.
func (g *Grid) Width() int { return g.w }

// Height returns H.
func (g *Grid) Height() int { return g.h }

func (g *Grid) index(p geom.Point) int { return p.Y*g.w + p.X }

// GetChar returns the rune at p and whether p lies in the grid.
func (g *Grid) GetChar(p geom.Point) (rune, bool) {
	if !p.InBounds(g.w, g.h) {
		return 0, false
	}
	return g.chars[g.index(p)], true
}

func (g *Grid) setChar(p geom.Point, c rune) {
	if !p.InBounds(g.w, g.h) {
		return
	}
	g.chars[g.index(p)] = c
}

// GetBorder reports whether there is a border on the dir-side of p: the
// boundary between p and p.Step(dir, 1). Points outside the grid, and the
// outer edge of the grid itself, always report true.
func (g *Grid) GetBorder(p geom.Point, dir geom.Direction) bool {
	if !p.InBounds(g.w, g.h) {
		return true
	}
	switch dir {
	case geom.Horizontal:
		if p.X >= g.w-1 {
			return true
		}
		return g.rightBorder[p.Y*(g.w-1)+p.X]
	case geom.Vertical:
		if p.Y >= g.h-1 {
			return true
		}
		return g.downBorder[p.Y*g.w+p.X]
	default:
		return true
	}
}

func (g *Grid) setBorder(p geom.Point, dir geom.Direction, v bool) {
	if !p.InBounds(g.w, g.h) {
		return
	}
	switch dir {
	case geom.Horizontal:
		if p.X >= g.w-1 {
			return
		}
		g.rightBorder[p.Y*(g.w-1)+p.X] = v
	case geom.Vertical:
		if p.Y >= g.h-1 {
			return
		}
		g.downBorder[p.Y*g.w+p.X] = v
	}
}

// BothBorders reports whether p is bordered on both the dir-side and the
// opposite side, i.e. p is not joined to either neighbor along dir.
func (g *Grid) BothBorders(p geom.Point, dir geom.Direction) bool {
	return g.GetBorder(p, dir) && g.GetBorder(p.Step(dir, -1), dir)
}

func (g *Grid) hasWord(w []rune) bool {
	_, ok := g.words[string(w)]
	return ok
}

func (g *Grid) addWord(w []rune) { g.words[string(w)] = struct{}{} }

func (g *Grid) deleteWord(w []rune) {
	if len(w) == 0 {
		return
	}
	delete(g.words, string(w))
}

// IsEmpty reports whether the grid holds no letters at all.
func (g *Grid) IsEmpty() bool {
	return len(g.words) == 0 && g.BorderCount() == g.MaxBorderCount()
}

// IsFull reports whether every cell holds a letter.
func (g *Grid) IsFull() bool {
	for _, c := range g.chars {
		if c == Block {
			return false
		}
	}
	return true
}

// BorderCount returns the number of border flags currently set to true.
func (g *Grid) BorderCount() int {
	n := 0
	for _, b := range g.rightBorder {
		if b {
			n++
		}
	}
	for _, b := range g.downBorder {
		if b {
			n++
		}
	}
	return n
}

// MaxBorderCount returns the number of border slots the grid has, i.e. the
// border count of a freshly constructed grid of the same size.
func (g *Grid) MaxBorderCount() int {
	return len(g.rightBorder) + len(g.downBorder)
}
