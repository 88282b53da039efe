package dictionary

import (
	"math/rand"
	"testing"
)

func collectWords(seq func(yield func([]rune) bool)) []string {
	var out []string
	seq(func(w []rune) bool {
		out = append(out, string(w))
		return true
	})
	return out
}

func TestProperty_ContainsEveryInputWord(t *testing.T) {
	input := []string{"FOO", "FOOBAR", "FOE", "TOE"}
	d := New(input, 3, rand.New(rand.NewSource(1)))

	for _, w := range input {
		if !d.Contains([]rune(w)) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
}

func TestScenario_S5_MatchingWords(t *testing.T) {
	d := New([]string{"FOO", "FOOBAR", "FOE", "TOE"}, 3, rand.New(rand.NewSource(1)))

	cases := []struct {
		pattern string
		want    []string
	}{
		{"#OE", []string{"FOE", "TOE"}},
		{"F#E", []string{"FOE"}},
		{"T#O", nil},
		{"F###", nil},
		{"##", nil},
	}

	for _, c := range cases {
		got := collectWords(d.MatchingWords([]rune(c.pattern)))
		if !sameSet(got, c.want) {
			t.Errorf("MatchingWords(%q) = %v, want (unordered) %v", c.pattern, got, c.want)
		}
	}
}

func TestProperty_MatchingWordsOnlyExactLengthAndLetters(t *testing.T) {
	input := []string{"CAT", "CAR", "BAT", "CATS", "DOG"}
	d := New(input, 3, rand.New(rand.NewSource(2)))

	got := collectWords(d.MatchingWords([]rune("CA#")))
	want := map[string]bool{"CAT": true, "CAR": true}
	if len(got) != len(want) {
		t.Fatalf("MatchingWords(CA#) = %v, want exactly %v", got, want)
	}
	for _, w := range got {
		if !want[w] {
			t.Errorf("unexpected match %q", w)
		}
		if len(w) != 3 {
			t.Errorf("match %q has wrong length", w)
		}
	}
}

func TestNormalization_UmlautsAndRejection(t *testing.T) {
	d := New([]string{"Straße", "SIEß", "zoo", "hi!", "a"}, 3, rand.New(rand.NewSource(3)))

	for _, w := range []string{"STRASSE", "SIESS", "ZOO"} {
		if !d.Contains([]rune(w)) {
			t.Errorf("Contains(%q) = false, want true after normalization", w)
		}
	}
	for _, raw := range []string{"hi!", "a", "HI", "A"} {
		if d.Contains([]rune(raw)) {
			t.Errorf("Contains(%q) = true, want false (should have been dropped)", raw)
		}
	}
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, w := range a {
		counts[w]++
	}
	for _, w := range b {
		counts[w]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
