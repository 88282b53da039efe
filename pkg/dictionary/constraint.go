package dictionary

// kind distinguishes the two shapes a WordConstraint can take.
type kind int

const (
	lengthKind kind = iota
	ngramKind
)

// WordConstraint is a hashable index key: either "length = L" or "the n-gram
// gram occurs at offset within a word of length L". Two constraints are
// equal iff all fields are equal, so WordConstraint is safe to use as a map
// key directly.
type WordConstraint struct {
	kind   kind
	length int
	gram   string
	offset int
}

// Length builds the constraint matching every word of length l.
func Length(l int) WordConstraint {
	return WordConstraint{kind: lengthKind, length: l}
}

// NgramAt builds the constraint matching every word of length totalLength
// that has gram at offset.
func NgramAt(gram string, offset, totalLength int) WordConstraint {
	return WordConstraint{kind: ngramKind, gram: gram, offset: offset, length: totalLength}
}
