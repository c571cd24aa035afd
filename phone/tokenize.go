package phone

import "strings"

// digraphs are the recognized multi-letter symbols, with and without tie
// bars. Longer forms are checked before shorter ones so a digraph is never
// split; the precedence list is fixed.
var digraphBases = []string{
	"tʃ", "dʒ", "ts", "dz", "tɕ", "dʑ", "ʈʂ", "ɖʐ", "pf",
}

// digraphMaps index digraph spellings by rune length, built at init time
// (longest-match lookup, cheapest first failure).
var digraphMaps map[int]map[string]bool
var maxDigraphRunes int

func init() {
	digraphMaps = make(map[int]map[string]bool)
	add := func(s string) {
		n := len([]rune(s))
		if digraphMaps[n] == nil {
			digraphMaps[n] = make(map[string]bool)
		}
		digraphMaps[n][s] = true
		if n > maxDigraphRunes {
			maxDigraphRunes = n
		}
	}
	for _, d := range digraphBases {
		add(d)
		r := []rune(d)
		// tie-bar spelling: first letter + U+0361 + rest
		add(string(r[:1]) + "͡" + string(r[1:]))
	}
}

// Tokenize splits transcription text into phones. Multi-letter symbols are
// matched longest-first from the fixed digraph list; combining diacritics
// and modifier letters attach to the preceding phone; whitespace separates
// but never produces a token. Stress and boundary marks come out as their
// own tokens so callers can strip or keep them.
func Tokenize(s string) []Phone {
	runes := []rune(s)
	var out []Phone
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == ' ' || r == '\t' || r == '\n' {
			i++
			continue
		}
		if isTrailingMark(r) && len(out) > 0 {
			out[len(out)-1] += Phone(r)
			i++
			continue
		}
		matched := false
		for n := maxDigraphRunes; n >= 2; n-- {
			if i+n > len(runes) {
				continue
			}
			key := string(runes[i : i+n])
			if digraphMaps[n][key] {
				out = append(out, Phone(key))
				i += n
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		out = append(out, Phone(r))
		i++
	}
	return out
}

// StripDelimiters removes phonemic slashes and phonetic brackets along with
// surrounding whitespace.
func StripDelimiters(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "/[]")
	return strings.TrimSpace(s)
}

// StripSuprasegmentals removes stress and syllable-boundary marks.
func StripSuprasegmentals(s string) string {
	return strings.NewReplacer(StressMark, "", SecStressMark, "", BoundaryMark, "").Replace(s)
}
