package inventory

import (
	"github.com/accentcoach/phonology-go/phone"
	"github.com/accentcoach/phonology-go/phonerr"
)

// Decision is the terminal outcome of resolving one phone against an
// inventory.
type Decision int

const (
	// InInventory: the phone is a member, used as-is.
	InInventory Decision = iota
	// Collapsed: the phone was replaced by its nearest inventory member.
	Collapsed
	// Unknown: no member was close enough; the phone resolves to the
	// sentinel and can be excluded from scoring.
	Unknown
)

func (d Decision) String() string {
	switch d {
	case InInventory:
		return "in_inventory"
	case Collapsed:
		return "collapse"
	default:
		return "unknown"
	}
}

// Result tags a single resolved phone.
type Result struct {
	Input    phone.Phone
	Resolved phone.Phone
	Decision Decision
	// Distance is the articulatory distance to the nearest inventory
	// member: 0 when in inventory, 1 when the inventory is empty.
	Distance float64
}

// Stats accumulates resolution counts for diagnostics. It is an explicit
// value passed by the caller, never hidden resolver state, so a resolver
// can be shared read-only across concurrent comparisons.
type Stats struct {
	Total       int
	InInventory int
	Collapsed   int
	Unknown     int
}

// Add records one resolution.
func (s *Stats) Add(r Result) {
	s.Total++
	switch r.Decision {
	case InInventory:
		s.InInventory++
	case Collapsed:
		s.Collapsed++
	default:
		s.Unknown++
	}
}

// Reset zeroes all counters.
func (s *Stats) Reset() { *s = Stats{} }

// DefaultCollapseThreshold is the articulatory distance below which an
// out-of-inventory phone is collapsed to its nearest member.
const DefaultCollapseThreshold = 0.3

// Resolver resolves phones against an inventory using the articulatory
// distance metric.
type Resolver struct {
	inv       *Inventory
	threshold float64
	members   []phone.Phone
}

// NewResolver builds a resolver. The threshold must lie in [0,1].
func NewResolver(inv *Inventory, threshold float64) (*Resolver, error) {
	if threshold < 0 || threshold > 1 {
		return nil, phonerr.Configf("collapse_threshold", "%v outside [0,1]", threshold)
	}
	return &Resolver{inv: inv, threshold: threshold, members: inv.Members()}, nil
}

// Resolve decides the fate of a single phone: in inventory, collapsed to
// the nearest member, or unknown. Resolution of an in-inventory phone is
// idempotent and always distance 0.
func (r *Resolver) Resolve(p phone.Phone) Result {
	canon := r.inv.Canonical(p)
	if r.inv.Contains(canon) {
		return Result{Input: p, Resolved: canon, Decision: InInventory, Distance: 0.0}
	}
	if len(r.members) == 0 {
		return Result{Input: p, Resolved: phone.Unknown, Decision: Unknown, Distance: 1.0}
	}

	best := r.members[0]
	bestDist := phone.Distance(canon, best)
	for _, m := range r.members[1:] {
		if bestDist == 0.0 {
			break
		}
		if d := phone.Distance(canon, m); d < bestDist {
			best, bestDist = m, d
		}
	}

	if bestDist < r.threshold {
		return Result{Input: p, Resolved: best, Decision: Collapsed, Distance: bestDist}
	}
	return Result{Input: p, Resolved: phone.Unknown, Decision: Unknown, Distance: bestDist}
}

// ResolveAll resolves a sequence. When stats is non-nil every resolution is
// recorded on it.
func (r *Resolver) ResolveAll(seq []phone.Phone, stats *Stats) []Result {
	out := make([]Result, len(seq))
	for i, p := range seq {
		out[i] = r.Resolve(p)
		if stats != nil {
			stats.Add(out[i])
		}
	}
	return out
}

// NormalizePair resolves a reference and a hypothesis sequence
// independently. When dropUnknown is set, unknown entries are removed from
// each side independently (not position-paired), so the two outputs may
// shrink by different amounts; callers doing index-based cross-referencing
// between the inputs and outputs must account for that.
func (r *Resolver) NormalizePair(ref, hyp []phone.Phone, dropUnknown bool, stats *Stats) (refOut, hypOut []phone.Phone) {
	normalize := func(seq []phone.Phone) []phone.Phone {
		out := make([]phone.Phone, 0, len(seq))
		for _, res := range r.ResolveAll(seq, stats) {
			if dropUnknown && res.Decision == Unknown {
				continue
			}
			out = append(out, res.Resolved)
		}
		return out
	}
	return normalize(ref), normalize(hyp)
}
