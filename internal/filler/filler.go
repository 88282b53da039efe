// Package filler fills an empty or partially-filled grid with words drawn
// from a dictionary, backtracking over a caller-supplied slot order when a
// choice turns out to be a dead end.
package filler

import (
	"errors"
	"math/rand"
	"time"

	"github.com/wordgrid/engine/pkg/dictionary"
	"github.com/wordgrid/engine/pkg/geom"
	"github.com/wordgrid/engine/pkg/grid"
)

// ErrNoFill is returned by Fill when no arrangement of dictionary words
// satisfies every slot after exhausting Config.MaxRetries attempts.
var ErrNoFill = errors.New("filler: no valid fill found")

// Slot names one word-length position to fill: a (Point, Direction) pair
// exactly like any other geom.Range, typically drawn from
// grid.RowAndColumnSlots or a generator's own slot list.
type Slot = geom.Range

// Config controls the backtracking search.
type Config struct {
	// MaxRetries is the number of times Fill reshuffles the slot order and
	// restarts the search from scratch after a full backtracking pass fails.
	// Defaults to 100 when <= 0.
	MaxRetries int

	// OnStep, when non-nil, is called after every placement and every
	// backtrack with the grid in its post-mutation state, letting a caller
	// (internal/httpapi, cmd/gridgen fill) observe the search live instead
	// of only seeing the final result. It must not mutate g.
	OnStep func(g *grid.Grid)
}

// Fill places a word from dict into every slot in slots, backtracking on
// conflicts. slots is the caller's chosen fill order; Fill does not compute
// its own ordering, only reshuffles the given slice between retries. On
// success every slot holds a dictionary word and Fill returns nil; on
// exhaustion it returns ErrNoFill. After every failed attempt Fill removes
// the word lying along each slot, including words that were already there
// before the call, so a grid that started empty is left empty.
//
// A nil or empty slots succeeds vacuously without touching g.
func Fill(g *grid.Grid, dict *dictionary.Dictionary, slots []Slot, rng *rand.Rand, config Config) error {
	if g == nil || dict == nil {
		return errors.New("filler: grid and dictionary must not be nil")
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 100
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	order := append([]Slot(nil), slots...)

	for attempt := 0; attempt < config.MaxRetries; attempt++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		if err := fillRecursive(g, dict, order, 0, config.OnStep); err == nil {
			return nil
		}
		// fillRecursive backs out every placement it made before returning
		// an error, but clear defensively in case a slot was already filled
		// (e.g. from a previous caller-supplied partial fill) so retries
		// never compound leftover state across attempts.
		for _, slot := range order {
			g.RemoveWord(slot.Origin, slot.Dir)
		}
	}
	return ErrNoFill
}

func fillRecursive(g *grid.Grid, dict *dictionary.Dictionary, slots []Slot, index int, onStep func(*grid.Grid)) error {
	if index >= len(slots) {
		return nil
	}
	slot := slots[index]
	pattern := extractPattern(g, slot)

	var tryErr error = ErrNoFill
	dict.MatchingWords(pattern)(func(w []rune) bool {
		if !g.TryPlace(slot.Origin, slot.Dir, w) {
			return true
		}
		if onStep != nil {
			onStep(g)
		}
		if err := fillRecursive(g, dict, slots, index+1, onStep); err == nil {
			tryErr = nil
			return false
		}
		g.RemoveWord(slot.Origin, slot.Dir)
		if onStep != nil {
			onStep(g)
		}
		return true
	})
	return tryErr
}

// extractPattern reads the letters currently occupying slot, producing a
// dictionary.Wildcard at every still-empty cell.
func extractPattern(g *grid.Grid, slot geom.Range) []rune {
	pattern := make([]rune, slot.Length)
	for i, p := range slot.Points() {
		c, _ := g.GetChar(p)
		if c == grid.Block {
			pattern[i] = dictionary.Wildcard
		} else {
			pattern[i] = c
		}
	}
	return pattern
}
