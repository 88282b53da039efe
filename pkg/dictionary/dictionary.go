// Package dictionary builds an inverted length/n-gram index over a set of
// words and answers pattern queries against it: given a fixed-length pattern
// with wildcard positions, it enumerates dictionary words agreeing with the
// pattern everywhere it is not a wildcard, scanning as short a candidate
// list as it can find.
package dictionary

import (
	"math/rand"
	"time"
)

// Wildcard marks a "any letter" position in a pattern passed to
// MatchingWords. It is the dictionary package's own sentinel, independent of
// any block rune a caller's grid representation may use.
const Wildcard = '#'

// defaultMaxN is used when New is given maxN <= 0.
const defaultMaxN = 3

// Dictionary stores normalized words and an inverted index keyed by
// WordConstraint, built once at construction and read-only afterward: safe
// to share across any number of concurrent readers.
type Dictionary struct {
	words [][]rune
	lists map[WordConstraint][]int
	maxN  int
}

// New normalizes and deduplicates words, shuffles them with rng (or a
// process-default source if rng is nil), and builds the n-gram/length
// index. maxN <= 0 defaults to 3.
func New(words []string, maxN int, rng *rand.Rand) *Dictionary {
	if maxN <= 0 {
		maxN = defaultMaxN
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	seen := make(map[string]bool, len(words))
	var normalized [][]rune
	for _, raw := range words {
		norm, ok := normalize(raw)
		if !ok {
			continue
		}
		key := string(norm)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, norm)
	}

	rng.Shuffle(len(normalized), func(i, j int) {
		normalized[i], normalized[j] = normalized[j], normalized[i]
	})

	d := &Dictionary{
		words: normalized,
		lists: make(map[WordConstraint][]int),
		maxN:  maxN,
	}
	d.buildIndex()
	return d
}

func (d *Dictionary) buildIndex() {
	for i, w := range d.words {
		l := len(w)
		d.addToList(Length(l), i)

		maxN := d.maxN
		if l < maxN {
			maxN = l
		}
		for n := 1; n <= maxN; n++ {
			for p := 0; p+n <= l; p++ {
				gram := string(w[p : p+n])
				d.addToList(NgramAt(gram, p, l), i)
			}
		}
	}
}

func (d *Dictionary) addToList(c WordConstraint, idx int) {
	d.lists[c] = append(d.lists[c], idx)
}

// Contains reports whether w, taken as a normalized word rather than a
// pattern, is present in the dictionary.
func (d *Dictionary) Contains(w []rune) bool {
	found := false
	d.MatchingWords(w)(func([]rune) bool {
		found = true
		return false
	})
	return found
}

// MatchingWords returns a lazy sequence of every dictionary word whose
// length equals len(pattern) and whose letters agree with pattern at every
// non-Wildcard position.
func (d *Dictionary) MatchingWords(pattern []rune) func(yield func([]rune) bool) {
	candidates := d.candidates(pattern)
	return func(yield func([]rune) bool) {
		for _, idx := range candidates {
			w := d.words[idx]
			if matches(w, pattern) && !yield(w) {
				return
			}
		}
	}
}

// candidates selects the shortest plausible list of word indices to scan for
// pattern: it starts from the length bucket, then narrows using n-grams
// drawn from each maximal run of non-wildcard positions in the pattern.
func (d *Dictionary) candidates(pattern []rune) []int {
	l := len(pattern)
	best, ok := d.lists[Length(l)]
	if !ok {
		return nil
	}
	if len(best) == 0 {
		return best
	}

	for _, run := range nonWildcardRuns(pattern) {
		runLen := run.end - run.start
		n := d.maxN
		if runLen < n {
			n = runLen
		}
		if n < 1 {
			continue
		}
		// dp deliberately excludes 0 and stops short of the true upper
		// bound; this mirrors an observed quirk in the offset range this
		// index was modeled on rather than a chosen bound.
		for dp := 1; dp < runLen-n; dp++ {
			offset := run.start + dp
			gram := string(pattern[offset : offset+n])
			cand := d.lists[NgramAt(gram, offset, l)]
			if len(cand) < len(best) {
				best = cand
				if len(best) == 0 {
					return best
				}
			}
		}
	}
	return best
}

type charRun struct{ start, end int }

func nonWildcardRuns(pattern []rune) []charRun {
	var runs []charRun
	start := -1
	for i, c := range pattern {
		if c == Wildcard {
			if start >= 0 {
				runs = append(runs, charRun{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		runs = append(runs, charRun{start, len(pattern)})
	}
	return runs
}

func matches(word, pattern []rune) bool {
	if len(word) != len(pattern) {
		return false
	}
	for i, p := range pattern {
		if p == Wildcard {
			continue
		}
		if word[i] != p {
			return false
		}
	}
	return true
}
