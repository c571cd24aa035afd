package grammar

import (
	"sort"

	"github.com/accentcoach/phonology-go/inventory"
	"github.com/accentcoach/phonology-go/phone"
)

// Mode selects how strictly free variation is treated.
type Mode string

const (
	// ModeCasual tolerates free variation: optional rules fire on derive
	// and are preserved (not inverted) on collapse.
	ModeCasual Mode = "casual"
	// ModePhonetic demands only obligatory alternations: optional rules
	// are skipped on derive.
	ModePhonetic Mode = "phonetic"
	// ModeObjective is the neutral default.
	ModeObjective Mode = "objective"
)

// Grammar is an ordered list of rewrite rules plus an optional inventory
// used for final allophone reduction on collapse. A grammar with zero rules
// is legal and acts as identity apart from delimiter stripping.
type Grammar struct {
	rules []*Rule // ascending Order
	inv   *inventory.Inventory
}

// New builds a grammar. Rules are sorted by ascending Order (stable, so
// equal orders keep their declaration sequence). inv may be nil.
func New(rules []*Rule, inv *inventory.Inventory) *Grammar {
	sorted := make([]*Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return &Grammar{rules: sorted, inv: inv}
}

// Rules returns the rules in application order.
func (g *Grammar) Rules() []*Rule { return g.rules }

// registerMatches reports whether a rule applies under the requested
// register. Requesting RegisterAll applies everything; a rule tagged
// RegisterAll applies everywhere.
func registerMatches(rule Register, requested Register) bool {
	if requested == RegisterAll || requested == "" {
		return true
	}
	return rule == RegisterAll || rule == requested
}

// Derive converts an underlying (phonemic) transcription to its surface
// form: delimiters are stripped, then rules apply in ascending order.
// Rules for another register are skipped, and optional rules are skipped in
// ModePhonetic, which demands only obligatory alternations.
func (g *Grammar) Derive(underlying string, mode Mode, register Register) []phone.Phone {
	seq := phone.Tokenize(phone.StripDelimiters(underlying))
	for _, r := range g.rules {
		if !registerMatches(r.Register, register) {
			continue
		}
		if r.Optional && mode == ModePhonetic {
			continue
		}
		seq = r.Apply(seq)
	}
	return seq
}

// Collapse converts a surface (phonetic) transcription back toward the
// phonemic form: delimiters and stress/boundary marks are stripped, the
// invertible rules run in descending order via their best-effort inverses,
// then every phone is reduced through the inventory's allophone map.
// Optional rules are skipped in ModeCasual so free variation is preserved
// rather than artificially normalized. The round trip through Derive is
// lossy; Collapse of its own output is idempotent.
func (g *Grammar) Collapse(surface string, mode Mode) []phone.Phone {
	seq := phone.Tokenize(phone.StripDelimiters(phone.StripSuprasegmentals(surface)))
	for i := len(g.rules) - 1; i >= 0; i-- {
		r := g.rules[i]
		if r.Optional && mode == ModeCasual {
			continue
		}
		seq = r.ApplyInverse(seq)
	}
	if g.inv == nil {
		return seq
	}
	out := make([]phone.Phone, len(seq))
	for i, p := range seq {
		out[i] = g.inv.Reduce(p)
	}
	return out
}
