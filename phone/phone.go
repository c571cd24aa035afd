// Package phone models phonetic symbols as articulatory feature bundles and
// provides the distance functions used everywhere else in the engine.
//
// A Phone is a text symbol: one base IPA letter, optionally followed by
// combining diacritics or modifier letters, or one of the recognized
// affricate digraphs. Phones are immutable values compared by exact text
// equality; classification strips trailing diacritics so an annotated
// surface symbol (e.g. a dental or lowered variant) still resolves to its
// base letter's features.
package phone

import "strings"

// Phone represents a single phonetic symbol.
type Phone string

// Unknown is the reserved sentinel for a symbol that could not be resolved.
// It never appears in any feature table or inventory.
const Unknown Phone = "<unk>"

// Class tags a symbol with its broad articulatory category.
type Class int

const (
	ClassUnknown Class = iota
	ClassConsonant
	ClassVowel
)

func (c Class) String() string {
	switch c {
	case ClassConsonant:
		return "consonant"
	case ClassVowel:
		return "vowel"
	default:
		return "unknown"
	}
}

// Suprasegmental marks: stress, secondary stress, syllable boundary.
// These annotate structure rather than segments and are stripped before
// comparison.
const (
	StressMark    = "ˈ"
	SecStressMark = "ˌ"
	BoundaryMark  = "."
)

// IsSuprasegmental reports whether p is a stress or boundary mark rather
// than a segment.
func IsSuprasegmental(p Phone) bool {
	switch p {
	case StressMark, SecStressMark, BoundaryMark:
		return true
	}
	return false
}

// combining diacritics and modifier letters that may trail a base letter.
var trailingMarks = map[rune]bool{
	'̃': true, // nasalized
	'̪': true, // dental
	'̞': true, // lowered
	'̝': true, // raised
	'̥': true, // voiceless
	'̬': true, // voiced
	'̩': true, // syllabic
	'̚': true, // no audible release
	'͡': true, // tie bar
	'͜': true, // tie bar (below)
	'ʰ':      true, // aspirated
	'ʷ':      true, // labialized
	'ʲ':      true, // palatalized
	'ˠ':      true, // velarized
	'ˤ':      true, // pharyngealized
	'ⁿ':      true, // nasal release
	'ː':      true, // long
	'ˑ':      true, // half long
}

// isTrailingMark reports whether r attaches to the preceding base letter.
func isTrailingMark(r rune) bool {
	return trailingMarks[r]
}

// Base strips trailing diacritics and modifier letters, returning the bare
// symbol used for feature lookup. Tie bars inside digraphs are removed so
// "t͡ʃ" and "tʃ" resolve identically.
func Base(p Phone) Phone {
	var b strings.Builder
	for _, r := range p {
		if r == '͡' || r == '͜' {
			continue
		}
		if isTrailingMark(r) && b.Len() > 0 {
			continue
		}
		b.WriteRune(r)
	}
	return Phone(b.String())
}

// ClassOf classifies a symbol via the feature tables, ignoring diacritics.
func ClassOf(p Phone) Class {
	base := Base(p)
	if _, ok := consonants[base]; ok {
		return ClassConsonant
	}
	if _, ok := vowels[base]; ok {
		return ClassVowel
	}
	return ClassUnknown
}

// IsVowel reports whether p is a vowel symbol, ignoring diacritics.
func IsVowel(p Phone) bool { return ClassOf(p) == ClassVowel }

// IsConsonant reports whether p is a consonant symbol, ignoring diacritics.
func IsConsonant(p Phone) bool { return ClassOf(p) == ClassConsonant }

// Join concatenates a phone sequence back into transcription text.
func Join(seq []Phone) string {
	var b strings.Builder
	for _, p := range seq {
		b.WriteString(string(p))
	}
	return b.String()
}
