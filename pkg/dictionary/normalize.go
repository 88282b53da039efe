package dictionary

import "strings"

var umlautDigraphs = strings.NewReplacer(
	"ä", "AE", "Ä", "AE",
	"ö", "OE", "Ö", "OE",
	"ü", "UE", "Ü", "UE",
	"ß", "SS",
)

// normalize trims, uppercases, and expands umlaut digraphs, then accepts the
// result only if every rune is ASCII alphabetic and it is at least 2 runes
// long. It reports false for anything it rejects.
func normalize(raw string) ([]rune, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = umlautDigraphs.Replace(s)

	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return nil, false
		}
	}
	if len(s) < 2 {
		return nil, false
	}
	return []rune(s), true
}
