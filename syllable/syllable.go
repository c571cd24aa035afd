// Package syllable segments phone sequences into syllables with
// onset/nucleus/coda roles. Two boundary strategies exist, selected by what
// the input carries: per-phone timestamps use silence gaps refined by the
// CV heuristic, plain sequences use the maximal onset principle. Analysis
// never fails; the worst case is a single syllable.
package syllable

import "github.com/accentcoach/phonology-go/phone"

// Role labels a phone's position within its syllable.
type Role int

const (
	RoleOnset Role = iota
	RoleNucleus
	RoleCoda
)

func (r Role) String() string {
	switch r {
	case RoleOnset:
		return "onset"
	case RoleNucleus:
		return "nucleus"
	default:
		return "coda"
	}
}

// TimedPhone is a phone with start/end times in seconds.
type TimedPhone struct {
	Phone phone.Phone
	Start float64
	End   float64
}

// Entry is one phone with its assigned role.
type Entry struct {
	Phone phone.Phone
	Role  Role
}

// Syllable is a contiguous run of phones between two boundaries. Start and
// End are filled only when the input carried timestamps (Timed is set).
type Syllable struct {
	Index  int
	Phones []Entry
	Start  float64
	End    float64
	Timed  bool
}

// DefaultGapThreshold is the silence gap, in seconds, that forces a
// syllable boundary between timestamped phones.
const DefaultGapThreshold = 0.06

// Analyzer segments phone sequences into syllables.
type Analyzer struct {
	// GapThreshold is the minimum silence between two timestamped phones
	// that forces a boundary.
	GapThreshold float64
}

// NewAnalyzer returns an analyzer with the default gap threshold.
func NewAnalyzer() *Analyzer {
	return &Analyzer{GapThreshold: DefaultGapThreshold}
}

// cvBoundaries computes boundary positions by the maximal onset principle:
// every consonant run between two vowels attaches to the following vowel's
// syllable, so a boundary sits right after each vowel that ends a nucleus.
// Diphthongs (contiguous vowels) stay in one nucleus. The returned set
// always contains 0.
func cvBoundaries(phones []phone.Phone) map[int]bool {
	bounds := map[int]bool{0: true}
	var vowelIdx []int
	for i, p := range phones {
		if phone.IsVowel(p) {
			vowelIdx = append(vowelIdx, i)
		}
	}
	for j := 1; j < len(vowelIdx); j++ {
		prev, cur := vowelIdx[j-1], vowelIdx[j]
		if cur == prev+1 {
			// Same nucleus run.
			continue
		}
		bounds[prev+1] = true
	}
	return bounds
}

// Analyze segments an untimed phone sequence. A sequence with no vowels
// comes back as exactly one syllable.
func (a *Analyzer) Analyze(phones []phone.Phone) []Syllable {
	if len(phones) == 0 {
		return nil
	}
	return group(phones, cvBoundaries(phones), nil)
}

// AnalyzeTimed segments a timestamped sequence. A boundary is inserted
// before phone i when the gap since the previous phone's end reaches the
// threshold; the CV heuristic then adds further boundaries but never
// removes a gap boundary.
func (a *Analyzer) AnalyzeTimed(timed []TimedPhone) []Syllable {
	if len(timed) == 0 {
		return nil
	}
	phones := make([]phone.Phone, len(timed))
	for i, tp := range timed {
		phones[i] = tp.Phone
	}

	gaps := []int{0}
	for i := 1; i < len(timed); i++ {
		if timed[i].Start-timed[i-1].End >= a.GapThreshold {
			gaps = append(gaps, i)
		}
	}

	// Refine each gap-delimited chunk with the CV heuristic. Gap boundaries
	// are never removed; CV boundaries are only added inside a chunk, so a
	// pause always wins over the maximal onset principle.
	bounds := map[int]bool{0: true}
	for gi, start := range gaps {
		end := len(phones)
		if gi+1 < len(gaps) {
			end = gaps[gi+1]
		}
		bounds[start] = true
		for b := range cvBoundaries(phones[start:end]) {
			bounds[start+b] = true
		}
	}
	return group(phones, bounds, timed)
}

// group cuts the sequence at the boundary set and assigns roles within
// each syllable: the first vowel and any contiguous vowels after it are
// the nucleus, everything before is onset, everything after is coda. A
// syllable with no vowel is all coda.
func group(phones []phone.Phone, bounds map[int]bool, timed []TimedPhone) []Syllable {
	var sylls []Syllable
	start := 0
	cut := func(end int) {
		if end <= start {
			return
		}
		seg := phones[start:end]
		s := Syllable{Index: len(sylls), Phones: assignRoles(seg)}
		if timed != nil {
			s.Timed = true
			s.Start = timed[start].Start
			s.End = timed[end-1].End
		}
		sylls = append(sylls, s)
		start = end
	}
	for i := 1; i < len(phones); i++ {
		if bounds[i] {
			cut(i)
		}
	}
	cut(len(phones))
	return sylls
}

func assignRoles(seg []phone.Phone) []Entry {
	entries := make([]Entry, len(seg))

	nucStart := -1
	for i, p := range seg {
		if phone.IsVowel(p) {
			nucStart = i
			break
		}
	}
	if nucStart < 0 {
		for i, p := range seg {
			entries[i] = Entry{Phone: p, Role: RoleCoda}
		}
		return entries
	}

	nucEnd := nucStart
	for nucEnd+1 < len(seg) && phone.IsVowel(seg[nucEnd+1]) {
		nucEnd++
	}
	for i, p := range seg {
		switch {
		case i < nucStart:
			entries[i] = Entry{Phone: p, Role: RoleOnset}
		case i <= nucEnd:
			entries[i] = Entry{Phone: p, Role: RoleNucleus}
		default:
			entries[i] = Entry{Phone: p, Role: RoleCoda}
		}
	}
	return entries
}
