// Package wordsource loads raw word lists that feed dictionary.New. Loading
// and parsing word list files is a concern the core grid/dictionary
// algorithms don't need to know about; it lives here so cmd/gridgen can wire
// a file on disk to an in-memory dictionary without either package reaching
// across that boundary.
package wordsource

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FromFile reads one word per line from path. Blank lines and lines starting
// with '#' are skipped. A line may optionally carry a Broda-style
// "WORD;SCORE" suffix; only the text before the first ';' is kept, since
// this package has no notion of word scoring. Returns an error if the file
// cannot be opened or read.
func FromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordsource: failed to open %q: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordsource: error reading %q: %w", path, err)
	}
	return words, nil
}

// FromSlice returns a defensive copy of words, for callers that already have
// an in-memory word list (tests, embedded defaults) and want the same
// []string shape FromFile produces.
func FromSlice(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}
