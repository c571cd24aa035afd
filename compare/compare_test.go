package compare

import (
	"testing"

	"github.com/accentcoach/phonology-go/phone"
)

func seq(s string) []phone.Phone { return phone.Tokenize(s) }

func opString(ops []EditOp) string {
	out := ""
	for i, op := range ops {
		if i > 0 {
			out += " "
		}
		out += string(op.Op)
	}
	return out
}

func TestCompareIdentical(t *testing.T) {
	c := NewComparator(DefaultConfig())
	in := seq("kastaɲa")
	got := c.Compare(in, in)
	if got.PER != 0.0 || got.Errors != 0 || got.Distance != 0.0 {
		t.Errorf("identical compare: %+v", got)
	}
	if len(got.Ops) != len(in) {
		t.Fatalf("ops length = %d, want %d", len(got.Ops), len(in))
	}
	for _, op := range got.Ops {
		if op.Op != OpEq {
			t.Errorf("op = %v, want eq", op.Op)
		}
	}
}

func TestCompareEmpty(t *testing.T) {
	c := NewComparator(DefaultConfig())

	got := c.Compare(nil, nil)
	if got.PER != 0.0 || len(got.Ops) != 0 {
		t.Errorf("empty/empty: %+v", got)
	}

	got = c.Compare(nil, seq("a"))
	if got.PER != 1.0 {
		t.Errorf("empty ref PER = %v, want 1", got.PER)
	}
	if len(got.Ops) != 1 || got.Ops[0].Op != OpIns || got.Ops[0].Hyp != "a" {
		t.Errorf("empty ref ops = %v", got.Ops)
	}

	got = c.Compare(seq("ab"), nil)
	if got.PER != 1.0 || opString(got.Ops) != "del del" {
		t.Errorf("empty hyp: PER=%v ops=%v", got.PER, got.Ops)
	}
}

func TestCompareOps(t *testing.T) {
	c := NewComparator(DefaultConfig())

	tests := []struct {
		name     string
		ref, hyp string
		wantOps  string
		wantPER  float64
	}{
		{"substitution", "kasa", "gasa", "sub eq eq eq", 0.25},
		{"deletion", "kasa", "asa", "del eq eq eq", 0.25},
		{"insertion", "asa", "kasa", "ins eq eq eq", 1.0 / 3.0},
		{"all_different", "pa", "ki", "sub sub", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Compare(seq(tt.ref), seq(tt.hyp))
			if opString(got.Ops) != tt.wantOps {
				t.Errorf("ops = %q, want %q", opString(got.Ops), tt.wantOps)
			}
			if got.PER != tt.wantPER {
				t.Errorf("PER = %v, want %v", got.PER, tt.wantPER)
			}
		})
	}
}

func TestCompareTieBreakPrefersSubstitution(t *testing.T) {
	c := NewComparator(DefaultConfig())

	// ref "ab" vs hyp "ba": cost 2 either via two substitutions or via
	// ins+del paths. The fixed tie-break must reconstruct substitutions.
	got := c.Compare(seq("ab"), seq("ba"))
	if got.Distance != 2.0 {
		t.Fatalf("distance = %v, want 2", got.Distance)
	}
	if opString(got.Ops) != "sub sub" {
		t.Errorf("ops = %q, want \"sub sub\"", opString(got.Ops))
	}
}

func TestCompareDeterministic(t *testing.T) {
	c := NewComparator(DefaultConfig())
	ref, hyp := seq("kastaɲa"), seq("gasta")
	first := c.Compare(ref, hyp)
	for i := 0; i < 5; i++ {
		again := c.Compare(ref, hyp)
		if opString(again.Ops) != opString(first.Ops) {
			t.Fatalf("nondeterministic ops: %q vs %q", opString(again.Ops), opString(first.Ops))
		}
	}
}

func TestCompareArticulatoryWeighting(t *testing.T) {
	flat := NewComparator(DefaultConfig())

	cfg := DefaultConfig()
	cfg.UseArticulatory = true
	weighted := NewComparator(cfg)

	// A voicing-only substitution is cheaper than a flat substitution.
	ref, hyp := seq("p"), seq("b")
	flatRes := flat.Compare(ref, hyp)
	weightedRes := weighted.Compare(ref, hyp)
	if weightedRes.Distance >= flatRes.Distance {
		t.Errorf("articulatory distance %v not below flat %v", weightedRes.Distance, flatRes.Distance)
	}
	// Both still count one substitution error.
	if weightedRes.Errors != 1 || flatRes.Errors != 1 {
		t.Errorf("errors = %d/%d, want 1/1", weightedRes.Errors, flatRes.Errors)
	}

	// A cross-category substitution stays at the full base cost.
	crossRes := weighted.Compare(seq("p"), seq("a"))
	if crossRes.Distance != flat.Compare(seq("p"), seq("a")).Distance {
		t.Errorf("cross-category weighted distance = %v", crossRes.Distance)
	}
}

func TestCompareCustomCosts(t *testing.T) {
	cfg := Config{SubCost: 10.0, InsCost: 1.0, DelCost: 1.0, MinSubCost: 0.1}
	c := NewComparator(cfg)

	// With substitution this expensive, ins+del wins.
	got := c.Compare(seq("p"), seq("b"))
	if got.Distance != 2.0 {
		t.Errorf("distance = %v, want 2 (ins+del)", got.Distance)
	}
	if opString(got.Ops) != "ins del" && opString(got.Ops) != "del ins" {
		t.Errorf("ops = %q, want an ins/del pair", opString(got.Ops))
	}
}

func TestPhoneErrorRate(t *testing.T) {
	tests := []struct {
		errors, refLen, hypLen int
		want                   float64
	}{
		{0, 4, 4, 0.0},
		{1, 4, 4, 0.25},
		{0, 0, 0, 0.0},
		{1, 0, 1, 1.0},
		{5, 4, 9, 1.25},
	}
	for _, tt := range tests {
		if got := PhoneErrorRate(tt.errors, tt.refLen, tt.hypLen); got != tt.want {
			t.Errorf("PhoneErrorRate(%d,%d,%d) = %v, want %v", tt.errors, tt.refLen, tt.hypLen, got, tt.want)
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	c := NewComparator(DefaultConfig())
	ref := seq("kastaɲatiempoaβlando")
	hyp := seq("gastaniatempoablando")
	for i := 0; i < b.N; i++ {
		c.Compare(ref, hyp)
	}
}
