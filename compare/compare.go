// Package compare aligns a reference and a hypothesis phone sequence with
// a cost-weighted edit distance and reports the phone error rate together
// with the explicit edit operations.
package compare

import (
	"github.com/accentcoach/phonology-go/phone"
)

// Op is the kind of one edit operation.
type Op string

const (
	OpEq  Op = "eq"
	OpSub Op = "sub"
	OpIns Op = "ins"
	OpDel Op = "del"
)

// EditOp is one aligned step. Ref is empty for insertions, Hyp for
// deletions.
type EditOp struct {
	Op  Op
	Ref phone.Phone
	Hyp phone.Phone
}

// Result holds the alignment output.
type Result struct {
	// Distance is the total edit cost under the configured weights.
	Distance float64
	// Errors counts the non-eq operations.
	Errors int
	// PER is Errors over the reference length. An empty reference scores
	// 0 against an empty hypothesis and 1 against anything else.
	PER float64
	// Ops is the operation list in original sequence order.
	Ops []EditOp
}

// Config holds per-operation base costs and the articulatory weighting
// switch.
type Config struct {
	SubCost float64
	InsCost float64
	DelCost float64
	// UseArticulatory replaces the flat substitution cost for each pair by
	// phone.SubstitutionCost(ref, hyp, SubCost, MinSubCost). Insertions
	// and deletions stay flat.
	UseArticulatory bool
	MinSubCost      float64
}

// DefaultConfig returns flat unit costs without articulatory weighting.
func DefaultConfig() Config {
	return Config{SubCost: 1.0, InsCost: 1.0, DelCost: 1.0, MinSubCost: 0.1}
}

// Comparator aligns phone sequences under one cost configuration. It is
// stateless and safe for concurrent use.
type Comparator struct {
	cfg Config
}

// NewComparator creates a comparator.
func NewComparator(cfg Config) *Comparator {
	return &Comparator{cfg: cfg}
}

// choice records which predecessor a DP cell took, for backtracking.
type choice byte

const (
	fromEq choice = iota
	fromSub
	fromIns
	fromDel
)

// Compare aligns ref against hyp. Ties between operations of equal cost
// break in the fixed order substitution, insertion, deletion, so the
// reconstructed path is deterministic.
func (c *Comparator) Compare(ref, hyp []phone.Phone) Result {
	n, m := len(ref), len(hyp)

	dp := make([][]float64, n+1)
	ch := make([][]choice, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		ch[i] = make([]choice, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = float64(i) * c.cfg.DelCost
		ch[i][0] = fromDel
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = float64(j) * c.cfg.InsCost
		ch[0][j] = fromIns
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if ref[i-1] == hyp[j-1] {
				dp[i][j] = dp[i-1][j-1]
				ch[i][j] = fromEq
				continue
			}
			subCost := c.cfg.SubCost
			if c.cfg.UseArticulatory {
				subCost = phone.SubstitutionCost(ref[i-1], hyp[j-1], c.cfg.SubCost, c.cfg.MinSubCost)
			}
			sub := dp[i-1][j-1] + subCost
			ins := dp[i][j-1] + c.cfg.InsCost
			del := dp[i-1][j] + c.cfg.DelCost

			best, pick := sub, fromSub
			if ins < best {
				best, pick = ins, fromIns
			}
			if del < best {
				best, pick = del, fromDel
			}
			dp[i][j] = best
			ch[i][j] = pick
		}
	}

	// Backtrack; the trace comes out reversed.
	var rev []EditOp
	i, j := n, m
	for i > 0 || j > 0 {
		switch ch[i][j] {
		case fromEq:
			rev = append(rev, EditOp{Op: OpEq, Ref: ref[i-1], Hyp: hyp[j-1]})
			i, j = i-1, j-1
		case fromSub:
			rev = append(rev, EditOp{Op: OpSub, Ref: ref[i-1], Hyp: hyp[j-1]})
			i, j = i-1, j-1
		case fromIns:
			rev = append(rev, EditOp{Op: OpIns, Hyp: hyp[j-1]})
			j--
		case fromDel:
			rev = append(rev, EditOp{Op: OpDel, Ref: ref[i-1]})
			i--
		}
	}
	ops := make([]EditOp, len(rev))
	for k := range rev {
		ops[k] = rev[len(rev)-1-k]
	}

	errors := 0
	for _, op := range ops {
		if op.Op != OpEq {
			errors++
		}
	}

	return Result{
		Distance: dp[n][m],
		Errors:   errors,
		PER:      PhoneErrorRate(errors, n, m),
		Ops:      ops,
	}
}

// PhoneErrorRate divides errors by the reference length. An empty
// reference is never "half right": it rates 0 against an empty hypothesis
// and 1 against anything else.
func PhoneErrorRate(errors, refLen, hypLen int) float64 {
	if refLen == 0 {
		if hypLen == 0 {
			return 0.0
		}
		return 1.0
	}
	return float64(errors) / float64(refLen)
}
