package grid

// Snapshot is a flat, JSON-serializable view of a Grid's entire state:
// dimensions, letters, both border bitmaps, and the set of placed words. It
// exists so callers outside this package (persistence, transport) can save
// and restore a Grid without this package exposing its internal fields.
type Snapshot struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Chars       []rune   `json:"chars"`
	RightBorder []bool   `json:"rightBorder"`
	DownBorder  []bool   `json:"downBorder"`
	Words       []string `json:"words"`
}

// Snapshot captures g's current state.
func (g *Grid) Snapshot() Snapshot {
	words := make([]string, 0, len(g.words))
	for w := range g.words {
		words = append(words, w)
	}
	return Snapshot{
		Width:       g.w,
		Height:      g.h,
		Chars:       append([]rune(nil), g.chars...),
		RightBorder: append([]bool(nil), g.rightBorder...),
		DownBorder:  append([]bool(nil), g.downBorder...),
		Words:       words,
	}
}

// FromSnapshot reconstructs a Grid from a previously captured Snapshot.
func FromSnapshot(s Snapshot) *Grid {
	g := New(s.Width, s.Height)
	copy(g.chars, s.Chars)
	copy(g.rightBorder, s.RightBorder)
	copy(g.downBorder, s.DownBorder)
	for _, w := range s.Words {
		g.addWord([]rune(w))
	}
	return g
}
