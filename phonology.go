// Package phonology scores how closely an observed pronunciation matches a
// target utterance. It wires the dialect grammar, out-of-inventory
// normalization and the weighted comparator into a single Compare call;
// the phone sequences themselves come from external ASR and text-to-phone
// collaborators.
package phonology

import (
	"github.com/rs/xid"

	"github.com/accentcoach/phonology-go/compare"
	"github.com/accentcoach/phonology-go/dialect"
	"github.com/accentcoach/phonology-go/grammar"
	"github.com/accentcoach/phonology-go/inventory"
	"github.com/accentcoach/phonology-go/phone"
	"github.com/accentcoach/phonology-go/phonerr"
	"github.com/accentcoach/phonology-go/syllable"
)

// Level distinguishes phonemic from phonetic representations. The two must
// never be compared directly.
type Level string

const (
	LevelPhonemic Level = "phonemic"
	LevelPhonetic Level = "phonetic"
)

// Representation is a phone sequence tagged with its level.
type Representation struct {
	Level  Level
	Phones []phone.Phone
}

// Profile reweights accepted phonetic variants. A substitution whose
// (ref, hyp) pair is accepted counts as an allophone error with
// AllophoneWeight instead of a full phoneme error.
type Profile struct {
	AllophoneWeight float64
	accepted        map[[2]phone.Phone]struct{}
}

// NewProfile creates a profile with the given weight for accepted
// variants.
func NewProfile(allophoneWeight float64) *Profile {
	return &Profile{
		AllophoneWeight: allophoneWeight,
		accepted:        make(map[[2]phone.Phone]struct{}),
	}
}

// Accept marks a reference/hypothesis substitution pair as a near-free
// variant.
func (p *Profile) Accept(ref, hyp phone.Phone) {
	p.accepted[[2]phone.Phone{ref, hyp}] = struct{}{}
}

// Accepted reports whether the pair is an accepted variant.
func (p *Profile) Accepted(ref, hyp phone.Phone) bool {
	_, ok := p.accepted[[2]phone.Phone{ref, hyp}]
	return ok
}

// ComparisonResult is the orchestrator's output for one comparison.
type ComparisonResult struct {
	// SessionID correlates this comparison in downstream feedback and
	// reporting.
	SessionID string
	// Score is 0-100, from the (possibly profile-weighted) error rate.
	Score float64
	// PER is the raw phone error rate of the alignment.
	PER float64
	// Distance is the total weighted edit cost.
	Distance float64
	// Ops is the alignment in original order, over the OOV-normalized
	// sequences.
	Ops []compare.EditOp
	// OOV holds the resolution counters for both sequences combined.
	OOV inventory.Stats
}

// Substitution floors per comparison mode: how cheap the closest
// articulatory substitution can get.
const (
	casualFloor    = 0.1
	objectiveFloor = 0.3
	phoneticFloor  = 0.5
)

// Engine is the composition root of the scoring core. Built once per
// dialect; safe for concurrent use.
type Engine struct {
	dialect     *dialect.Dialect
	resolver    *inventory.Resolver
	threshold   float64
	dropUnknown bool
	baseCfg     compare.Config
}

// Option configures an Engine.
type Option func(*Engine)

// WithCollapseThreshold overrides the OOV collapse threshold.
func WithCollapseThreshold(t float64) Option {
	return func(e *Engine) { e.threshold = t }
}

// WithDropUnknown controls whether unresolvable phones are excluded from
// scoring (default true).
func WithDropUnknown(drop bool) Option {
	return func(e *Engine) { e.dropUnknown = drop }
}

// WithCompareConfig overrides the comparator's base costs. The
// substitution floor is still chosen per mode at compare time.
func WithCompareConfig(cfg compare.Config) Option {
	return func(e *Engine) { e.baseCfg = cfg }
}

// NewEngine builds an engine for a dialect.
func NewEngine(d *dialect.Dialect, opts ...Option) (*Engine, error) {
	cfg := compare.DefaultConfig()
	cfg.UseArticulatory = true

	e := &Engine{
		dialect:     d,
		threshold:   inventory.DefaultCollapseThreshold,
		dropUnknown: true,
		baseCfg:     cfg,
	}
	for _, opt := range opts {
		opt(e)
	}

	resolver, err := inventory.NewResolver(d.Inventory, e.threshold)
	if err != nil {
		return nil, err
	}
	e.resolver = resolver
	return e, nil
}

// Dialect returns the engine's dialect.
func (e *Engine) Dialect() *dialect.Dialect { return e.dialect }

// ParseTranscription tokenizes a delimited transcription string into a
// representation at the given level.
func (e *Engine) ParseTranscription(s string, level Level) Representation {
	return Representation{
		Level:  level,
		Phones: phone.Tokenize(phone.StripDelimiters(phone.StripSuprasegmentals(s))),
	}
}

// Derive runs the dialect grammar forward, producing the phonetic surface
// form of an underlying transcription.
func (e *Engine) Derive(underlying string, mode grammar.Mode, register grammar.Register) Representation {
	return Representation{
		Level:  LevelPhonetic,
		Phones: e.dialect.Grammar.Derive(underlying, mode, register),
	}
}

// Collapse runs the dialect grammar backward, reducing a surface
// transcription to its phonemic form.
func (e *Engine) Collapse(surface string, mode grammar.Mode) Representation {
	return Representation{
		Level:  LevelPhonemic,
		Phones: e.dialect.Grammar.Collapse(surface, mode),
	}
}

// floorFor maps a comparison mode to the substitution floor.
func floorFor(mode grammar.Mode) float64 {
	switch mode {
	case grammar.ModeCasual:
		return casualFloor
	case grammar.ModePhonetic:
		return phoneticFloor
	default:
		return objectiveFloor
	}
}

// Compare scores an observed pronunciation against a target. Both
// representations must be at one level; comparing phonemic against
// phonetic is a ValidationError. Unresolvable phones are normalized out
// (or kept as sentinels, per WithDropUnknown) before alignment. A nil
// profile scores from the raw error rate.
func (e *Engine) Compare(target, observed Representation, mode grammar.Mode, profile *Profile) (*ComparisonResult, error) {
	if target.Level != observed.Level {
		return nil, phonerr.Validationf("cannot compare %s target against %s observation", target.Level, observed.Level)
	}

	var stats inventory.Stats
	ref, hyp := e.resolver.NormalizePair(target.Phones, observed.Phones, e.dropUnknown, &stats)

	cfg := e.baseCfg
	cfg.MinSubCost = floorFor(mode)
	res := compare.NewComparator(cfg).Compare(ref, hyp)

	rate := res.PER
	if profile != nil {
		rate = weightedErrorRate(res, profile, len(ref), len(hyp))
	}
	score := (1.0 - rate) * 100.0
	if score < 0 {
		score = 0
	}

	return &ComparisonResult{
		SessionID: xid.New().String(),
		Score:     score,
		PER:       res.PER,
		Distance:  res.Distance,
		Ops:       res.Ops,
		OOV:       stats,
	}, nil
}

// weightedErrorRate recounts alignment errors with accepted substitutions
// downweighted to the profile's allophone weight.
func weightedErrorRate(res compare.Result, profile *Profile, refLen, hypLen int) float64 {
	if refLen == 0 {
		return compare.PhoneErrorRate(res.Errors, refLen, hypLen)
	}
	weighted := 0.0
	for _, op := range res.Ops {
		switch op.Op {
		case compare.OpEq:
		case compare.OpSub:
			if profile.Accepted(op.Ref, op.Hyp) {
				weighted += profile.AllophoneWeight
			} else {
				weighted += 1.0
			}
		default:
			weighted += 1.0
		}
	}
	return weighted / float64(refLen)
}

// SyllableScore buckets alignment errors by reference syllable.
type SyllableScore struct {
	Index  int
	Phones []phone.Phone
	Total  int
	Errors int
}

// SyllableBreakdown segments the reference side of an alignment into
// syllables and counts the errors that fall in each. Insertions attach to
// the syllable of the previous reference phone.
func (e *Engine) SyllableBreakdown(result *ComparisonResult) []SyllableScore {
	var ref []phone.Phone
	for _, op := range result.Ops {
		if op.Op != compare.OpIns {
			ref = append(ref, op.Ref)
		}
	}
	sylls := syllable.NewAnalyzer().Analyze(ref)
	if len(sylls) == 0 {
		return nil
	}

	// Map reference index to syllable index.
	syllOf := make([]int, len(ref))
	idx := 0
	scores := make([]SyllableScore, len(sylls))
	for si, s := range sylls {
		scores[si].Index = si
		for _, entry := range s.Phones {
			scores[si].Phones = append(scores[si].Phones, entry.Phone)
			syllOf[idx] = si
			idx++
		}
	}

	refIdx := 0
	for _, op := range result.Ops {
		si := 0
		if op.Op == compare.OpIns {
			if refIdx > 0 {
				si = syllOf[refIdx-1]
			}
		} else {
			si = syllOf[refIdx]
			refIdx++
		}
		scores[si].Total++
		if op.Op != compare.OpEq {
			scores[si].Errors++
		}
	}
	return scores
}
