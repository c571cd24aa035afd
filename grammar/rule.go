// Package grammar implements ordered, context-sensitive rewrite rules over
// phone sequences and the Grammar that composes them into the derive
// (phonemic to phonetic) and collapse (phonetic to phonemic) directions.
package grammar

import (
	"github.com/accentcoach/phonology-go/internal/pattern"
	"github.com/accentcoach/phonology-go/phone"
	"github.com/accentcoach/phonology-go/phonerr"
)

// Register tags a rule with the speech register it applies to.
type Register string

const (
	RegisterAll      Register = "all"
	RegisterFormal   Register = "formal"
	RegisterInformal Register = "informal"
)

// Spec is the declarative description of one rewrite rule.
type Spec struct {
	Name         string
	Inputs       []string
	Outputs      []string
	LeftContext  string
	RightContext string
	Order        int
	Optional     bool
	Register     Register
}

// Rule is a compiled rewrite. Inputs and outputs align pairwise; an empty
// output deletes its input phone. Context patterns are compiled once here
// and shared read-only afterward.
type Rule struct {
	Name     string
	Order    int
	Optional bool
	Register Register

	inputs  []phone.Phone
	outputs []phone.Phone
	mapping map[phone.Phone]phone.Phone
	inverse map[phone.Phone]phone.Phone
	left    *pattern.Pattern
	right   *pattern.Pattern

	invertible bool
}

// NewRule compiles a rule spec. Mismatched input/output lengths are a
// ValidationError; a bad context pattern is a ConfigError.
func NewRule(spec Spec) (*Rule, error) {
	if len(spec.Inputs) == 0 {
		return nil, phonerr.Validationf("rule %q: no input phones", spec.Name)
	}
	if len(spec.Inputs) != len(spec.Outputs) {
		return nil, phonerr.Validationf("rule %q: %d inputs but %d outputs",
			spec.Name, len(spec.Inputs), len(spec.Outputs))
	}

	r := &Rule{
		Name:     spec.Name,
		Order:    spec.Order,
		Optional: spec.Optional,
		Register: spec.Register,
		mapping:  make(map[phone.Phone]phone.Phone, len(spec.Inputs)),
		inverse:  make(map[phone.Phone]phone.Phone),
	}
	if r.Register == "" {
		r.Register = RegisterAll
	}

	ambiguous := make(map[phone.Phone]bool)
	for i := range spec.Inputs {
		in, out := phone.Phone(spec.Inputs[i]), phone.Phone(spec.Outputs[i])
		r.inputs = append(r.inputs, in)
		r.outputs = append(r.outputs, out)
		r.mapping[in] = out
		if out == "" {
			// Deletion: not invertible, excluded from the inverse map.
			continue
		}
		if prev, ok := r.inverse[out]; ok && prev != in {
			ambiguous[out] = true
			continue
		}
		r.inverse[out] = in
	}
	for out := range ambiguous {
		delete(r.inverse, out)
	}
	// Invertibility is derived once: every pair must survive into the
	// inverse map.
	r.invertible = len(r.inverse) == len(r.inputs)

	var err error
	if spec.LeftContext != "" {
		if r.left, err = pattern.CompileSuffix(spec.LeftContext); err != nil {
			return nil, err
		}
	}
	if spec.RightContext != "" {
		if r.right, err = pattern.CompilePrefix(spec.RightContext); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Invertible reports whether every input/output pair of the rule can be
// reversed: no deletions, no two inputs sharing an output.
func (r *Rule) Invertible() bool { return r.invertible }

// contextMatches checks the compiled contexts against the text before and
// after position i. Both unset means an unconditional match.
func (r *Rule) contextMatches(seq []phone.Phone, i int) bool {
	if r.left != nil && !r.left.Match(phone.Join(seq[:i])) {
		return false
	}
	if r.right != nil && !r.right.Match(phone.Join(seq[i+1:])) {
		return false
	}
	return true
}

// Apply rewrites a phone sequence in a single left-to-right pass. Context
// checks see the original sequence, not already-produced output; unmatched
// phones pass through unchanged and an empty output deletes.
func (r *Rule) Apply(seq []phone.Phone) []phone.Phone {
	out := make([]phone.Phone, 0, len(seq))
	for i, p := range seq {
		repl, ok := r.mapping[p]
		if !ok || !r.contextMatches(seq, i) {
			out = append(out, p)
			continue
		}
		if repl == "" {
			continue
		}
		out = append(out, repl)
	}
	return out
}

// ApplyInverse rewrites using the output-to-input map, with the same
// context semantics. Outputs that were deletions or that map back to more
// than one input are silently left unchanged; the inversion is best-effort
// and intentionally lossy.
func (r *Rule) ApplyInverse(seq []phone.Phone) []phone.Phone {
	out := make([]phone.Phone, 0, len(seq))
	for i, p := range seq {
		orig, ok := r.inverse[p]
		if !ok || !r.contextMatches(seq, i) {
			out = append(out, p)
			continue
		}
		out = append(out, orig)
	}
	return out
}
