package phone

import "github.com/accentcoach/phonology-go/phonerr"

// FeatureBundle is an immutable sparse mapping from binary distinctive
// feature name to value. A feature is either +, - or unspecified (absent).
// Bundles support a mismatch-count distance and natural-class matching;
// their numeric scale is unrelated to the categorical Distance metric and
// the two must not be mixed in one computation.
type FeatureBundle struct {
	features map[string]bool
}

// UnknownFeatureDistance is returned by FeatureDistance when either symbol
// has no bundle. It is a sentinel, deliberately far outside the range a real
// bundle comparison can produce, so "unknown" is never mistaken for "very
// different".
const UnknownFeatureDistance = 999

// NewFeatureBundle builds a bundle from the feature names set to + and the
// names set to -. A name appearing in both lists is a structural error.
func NewFeatureBundle(plus, minus []string) (FeatureBundle, error) {
	m := make(map[string]bool, len(plus)+len(minus))
	for _, name := range plus {
		m[name] = true
	}
	for _, name := range minus {
		if v, ok := m[name]; ok && v {
			return FeatureBundle{}, phonerr.Configf("features", "feature %q specified as both + and -", name)
		}
		m[name] = false
	}
	return FeatureBundle{features: m}, nil
}

// Value returns the value of a feature and whether it is specified.
func (b FeatureBundle) Value(name string) (bool, bool) {
	v, ok := b.features[name]
	return v, ok
}

// Len returns the number of specified features.
func (b FeatureBundle) Len() int { return len(b.features) }

// Distance counts the features specified as definite in both bundles that
// disagree.
func (b FeatureBundle) Distance(other FeatureBundle) int {
	n := 0
	for name, v := range b.features {
		if ov, ok := other.features[name]; ok && ov != v {
			n++
		}
	}
	return n
}

// Matches reports whether no feature specified in b is contradicted in
// other. Features unspecified in other never contradict; this is the
// natural-class query used to ask "is p a voiced stop" with a two-feature
// bundle.
func (b FeatureBundle) Matches(other FeatureBundle) bool {
	for name, v := range b.features {
		if ov, ok := other.features[name]; ok && ov != v {
			return false
		}
	}
	return true
}

// bundles maps base symbols to SPE-style binary bundles. Built at init time
// from the categorical tables so the two views can never drift apart.
var bundles map[Phone]FeatureBundle

func init() {
	bundles = make(map[Phone]FeatureBundle, len(consonants)+len(vowels))
	for sym, f := range consonants {
		bundles[sym] = consonantBundle(f)
	}
	for sym, f := range vowels {
		bundles[sym] = vowelBundle(f)
	}
}

func consonantBundle(f ConsonantFeatures) FeatureBundle {
	sonorant := false
	switch f.Manner {
	case MannerNasal, MannerTrill, MannerTap, MannerLateral, MannerApproximant, MannerGlide:
		sonorant = true
	}
	continuant := false
	switch f.Manner {
	case MannerFricative, MannerLateralFricative, MannerLateral, MannerApproximant, MannerGlide:
		continuant = true
	}
	m := map[string]bool{
		"syllabic":    false,
		"consonantal": f.Manner != MannerApproximant && f.Manner != MannerGlide,
		"sonorant":    sonorant,
		"continuant":  continuant,
		"delrel":      f.Manner == MannerAffricate,
		"voice":       f.Voicing == Voiced,
		"nasal":       f.Manner == MannerNasal,
		"lateral":     f.Manner == MannerLateral || f.Manner == MannerLateralFricative,
		"labial":      f.Place == Bilabial || f.Place == Labiodental,
		"coronal":     f.Place >= Dental && f.Place <= Retroflex,
		"anterior":    f.Place <= Alveolar,
		"distributed": f.Place == Postalveolar || f.Place == Palatal,
		"dorsal":      f.Place >= Palatal && f.Place <= Uvular,
		"strident":    f.Place >= Alveolar && f.Place <= Retroflex && (f.Manner == MannerFricative || f.Manner == MannerAffricate),
	}
	return FeatureBundle{features: m}
}

func vowelBundle(f VowelFeatures) FeatureBundle {
	m := map[string]bool{
		"syllabic":    true,
		"consonantal": false,
		"sonorant":    true,
		"continuant":  true,
		"voice":       true,
		"high":        f.Height <= NearClose,
		"low":         f.Height >= NearOpen,
		"back":        f.Backness >= NearBack,
		"front":       f.Backness <= NearFront,
		"round":       f.Roundedness == Rounded,
		"tense":       f.Height == Close || f.Height == CloseMid || f.Height == Open,
	}
	return FeatureBundle{features: m}
}

// Bundle returns the binary feature bundle for a symbol, ignoring
// diacritics.
func Bundle(p Phone) (FeatureBundle, bool) {
	b, ok := bundles[Base(p)]
	return b, ok
}

// FeatureDistance counts mismatched definite binary features between two
// symbols. Returns UnknownFeatureDistance when either symbol has no bundle.
func FeatureDistance(a, b Phone) int {
	ba, ok := Bundle(a)
	if !ok {
		return UnknownFeatureDistance
	}
	bb, ok := Bundle(b)
	if !ok {
		return UnknownFeatureDistance
	}
	return ba.Distance(bb)
}
