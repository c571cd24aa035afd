package phone

// Categorical articulatory axes. Each axis is an ordered enumeration so a
// difference along it can be computed as a normalized positional distance.

// Place of articulation, front to back.
type Place int

const (
	Bilabial Place = iota
	Labiodental
	Dental
	Alveolar
	Postalveolar
	Retroflex
	Palatal
	Velar
	Uvular
	Pharyngeal
	Glottal

	numPlaces = 11
)

// Manner of articulation, ordered from full oral closure to open
// approximation. Nasals, trills and taps sit between the obstruent closes
// and the fricative/approximant opens.
type Manner int

const (
	MannerStop Manner = iota
	MannerAffricate
	MannerNasal
	MannerTrill
	MannerTap
	MannerLateralFricative
	MannerFricative
	MannerLateral
	MannerApproximant
	MannerGlide

	numManners = 10
)

// Voicing of a consonant.
type Voicing int

const (
	Voiceless Voicing = iota
	Voiced

	numVoicings = 2
)

// Height of a vowel, close to open.
type Height int

const (
	Close Height = iota
	NearClose
	CloseMid
	Mid
	OpenMid
	NearOpen
	Open

	numHeights = 7
)

// Backness of a vowel, front to back.
type Backness int

const (
	Front Backness = iota
	NearFront
	Central
	NearBack
	Back

	numBacknesses = 5
)

// Roundedness of a vowel.
type Roundedness int

const (
	Unrounded Roundedness = iota
	Rounded

	numRoundings = 2
)

// ConsonantFeatures is the categorical description of a consonant.
type ConsonantFeatures struct {
	Place   Place
	Manner  Manner
	Voicing Voicing
}

// VowelFeatures is the categorical description of a vowel.
type VowelFeatures struct {
	Height      Height
	Backness    Backness
	Roundedness Roundedness
}

// consonants maps base symbols to their categorical features.
var consonants = map[Phone]ConsonantFeatures{
	// Stops
	"p": {Bilabial, MannerStop, Voiceless},
	"b": {Bilabial, MannerStop, Voiced},
	"t": {Alveolar, MannerStop, Voiceless},
	"d": {Alveolar, MannerStop, Voiced},
	"ʈ": {Retroflex, MannerStop, Voiceless},
	"ɖ": {Retroflex, MannerStop, Voiced},
	"c": {Palatal, MannerStop, Voiceless},
	"ɟ": {Palatal, MannerStop, Voiced},
	"k": {Velar, MannerStop, Voiceless},
	"g": {Velar, MannerStop, Voiced},
	"ɡ": {Velar, MannerStop, Voiced},
	"q": {Uvular, MannerStop, Voiceless},
	"ɢ": {Uvular, MannerStop, Voiced},
	"ʔ": {Glottal, MannerStop, Voiceless},

	// Nasals
	"m": {Bilabial, MannerNasal, Voiced},
	"ɱ": {Labiodental, MannerNasal, Voiced},
	"n": {Alveolar, MannerNasal, Voiced},
	"ɳ": {Retroflex, MannerNasal, Voiced},
	"ɲ": {Palatal, MannerNasal, Voiced},
	"ŋ": {Velar, MannerNasal, Voiced},
	"ɴ": {Uvular, MannerNasal, Voiced},

	// Trills
	"ʙ": {Bilabial, MannerTrill, Voiced},
	"r": {Alveolar, MannerTrill, Voiced},
	"ʀ": {Uvular, MannerTrill, Voiced},

	// Taps and flaps
	"ⱱ": {Labiodental, MannerTap, Voiced},
	"ɾ": {Alveolar, MannerTap, Voiced},
	"ɽ": {Retroflex, MannerTap, Voiced},

	// Fricatives
	"ɸ": {Bilabial, MannerFricative, Voiceless},
	"β": {Bilabial, MannerFricative, Voiced},
	"f": {Labiodental, MannerFricative, Voiceless},
	"v": {Labiodental, MannerFricative, Voiced},
	"θ": {Dental, MannerFricative, Voiceless},
	"ð": {Dental, MannerFricative, Voiced},
	"s": {Alveolar, MannerFricative, Voiceless},
	"z": {Alveolar, MannerFricative, Voiced},
	"ʃ": {Postalveolar, MannerFricative, Voiceless},
	"ʒ": {Postalveolar, MannerFricative, Voiced},
	"ʂ": {Retroflex, MannerFricative, Voiceless},
	"ʐ": {Retroflex, MannerFricative, Voiced},
	"ɕ": {Postalveolar, MannerFricative, Voiceless},
	"ʑ": {Postalveolar, MannerFricative, Voiced},
	"ç": {Palatal, MannerFricative, Voiceless},
	"ʝ": {Palatal, MannerFricative, Voiced},
	"x": {Velar, MannerFricative, Voiceless},
	"ɣ": {Velar, MannerFricative, Voiced},
	"χ": {Uvular, MannerFricative, Voiceless},
	"ʁ": {Uvular, MannerFricative, Voiced},
	"ħ": {Pharyngeal, MannerFricative, Voiceless},
	"ʕ": {Pharyngeal, MannerFricative, Voiced},
	"h": {Glottal, MannerFricative, Voiceless},
	"ɦ": {Glottal, MannerFricative, Voiced},

	// Lateral fricatives
	"ɬ": {Alveolar, MannerLateralFricative, Voiceless},
	"ɮ": {Alveolar, MannerLateralFricative, Voiced},

	// Affricates (digraphs; the tokenizer keeps these whole)
	"ts": {Alveolar, MannerAffricate, Voiceless},
	"dz": {Alveolar, MannerAffricate, Voiced},
	"tʃ": {Postalveolar, MannerAffricate, Voiceless},
	"dʒ": {Postalveolar, MannerAffricate, Voiced},
	"tɕ": {Postalveolar, MannerAffricate, Voiceless},
	"dʑ": {Postalveolar, MannerAffricate, Voiced},
	"ʈʂ": {Retroflex, MannerAffricate, Voiceless},
	"ɖʐ": {Retroflex, MannerAffricate, Voiced},
	"pf": {Labiodental, MannerAffricate, Voiceless},

	// Approximants
	"ʋ": {Labiodental, MannerApproximant, Voiced},
	"ɹ": {Alveolar, MannerApproximant, Voiced},
	"ɻ": {Retroflex, MannerApproximant, Voiced},
	"j": {Palatal, MannerGlide, Voiced},
	"ɰ": {Velar, MannerGlide, Voiced},
	"w": {Velar, MannerGlide, Voiced},

	// Lateral approximants
	"l": {Alveolar, MannerLateral, Voiced},
	"ɭ": {Retroflex, MannerLateral, Voiced},
	"ʎ": {Palatal, MannerLateral, Voiced},
	"ʟ": {Velar, MannerLateral, Voiced},
}

// vowels maps base symbols to their categorical features.
var vowels = map[Phone]VowelFeatures{
	"i": {Close, Front, Unrounded},
	"y": {Close, Front, Rounded},
	"ɨ": {Close, Central, Unrounded},
	"ʉ": {Close, Central, Rounded},
	"ɯ": {Close, Back, Unrounded},
	"u": {Close, Back, Rounded},

	"ɪ": {NearClose, NearFront, Unrounded},
	"ʏ": {NearClose, NearFront, Rounded},
	"ʊ": {NearClose, NearBack, Rounded},

	"e": {CloseMid, Front, Unrounded},
	"ø": {CloseMid, Front, Rounded},
	"ɘ": {CloseMid, Central, Unrounded},
	"ɵ": {CloseMid, Central, Rounded},
	"ɤ": {CloseMid, Back, Unrounded},
	"o": {CloseMid, Back, Rounded},

	"ə": {Mid, Central, Unrounded},

	"ɛ": {OpenMid, Front, Unrounded},
	"œ": {OpenMid, Front, Rounded},
	"ɜ": {OpenMid, Central, Unrounded},
	"ɞ": {OpenMid, Central, Rounded},
	"ʌ": {OpenMid, Back, Unrounded},
	"ɔ": {OpenMid, Back, Rounded},

	"æ": {NearOpen, Front, Unrounded},
	"ɐ": {NearOpen, Central, Unrounded},

	"a": {Open, Front, Unrounded},
	"ɶ": {Open, Front, Rounded},
	"ɑ": {Open, Back, Unrounded},
	"ɒ": {Open, Back, Rounded},
}

// ConsonantTable returns the categorical features for a consonant symbol,
// ignoring diacritics.
func ConsonantTable(p Phone) (ConsonantFeatures, bool) {
	f, ok := consonants[Base(p)]
	return f, ok
}

// VowelTable returns the categorical features for a vowel symbol, ignoring
// diacritics.
func VowelTable(p Phone) (VowelFeatures, bool) {
	f, ok := vowels[Base(p)]
	return f, ok
}

func absInt(a, b int) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}

// Distance computes the articulatory distance between two symbols in [0,1].
//
// Identical symbols are 0. Two consonants combine place, manner and voicing
// differences weighted 0.4/0.4/0.2; two vowels combine height, backness and
// roundedness weighted 0.5/0.3/0.2; each axis difference is normalized by
// the axis's maximum index distance. A consonant against a vowel, or any
// symbol missing from the tables, is maximal (1.0).
func Distance(a, b Phone) float64 {
	if a == b {
		return 0.0
	}

	ca, aCons := consonants[Base(a)]
	cb, bCons := consonants[Base(b)]
	if aCons && bCons {
		d := 0.4*absInt(int(ca.Place), int(cb.Place))/float64(numPlaces-1) +
			0.4*absInt(int(ca.Manner), int(cb.Manner))/float64(numManners-1) +
			0.2*absInt(int(ca.Voicing), int(cb.Voicing))/float64(numVoicings-1)
		return clamp01(d)
	}

	va, aVow := vowels[Base(a)]
	vb, bVow := vowels[Base(b)]
	if aVow && bVow {
		d := 0.5*absInt(int(va.Height), int(vb.Height))/float64(numHeights-1) +
			0.3*absInt(int(va.Backness), int(vb.Backness))/float64(numBacknesses-1) +
			0.2*absInt(int(va.Roundedness), int(vb.Roundedness))/float64(numRoundings-1)
		return clamp01(d)
	}

	// Cross-category or unknown: always a major error.
	return 1.0
}

// SubstitutionCost interpolates between minCost and baseCost by the
// articulatory distance between a and b. This is the bridge consumed by the
// weighted comparator: a voicing-only substitution costs close to minCost,
// a cross-category substitution costs baseCost.
func SubstitutionCost(a, b Phone, baseCost, minCost float64) float64 {
	return minCost + (baseCost-minCost)*Distance(a, b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
