// Package inventory holds the per-dialect phone inventory and the
// out-of-inventory resolver. An Inventory is built once at dialect-load
// time and read-only afterward, so it is safe to share across concurrent
// comparisons.
package inventory

import (
	"sort"

	"github.com/accentcoach/phonology-go/phone"
	"github.com/accentcoach/phonology-go/phonerr"
)

// Inventory owns a dialect's phoneme set, its allophones (each linked to
// exactly one base phoneme) and an alias map from alternative spellings to
// canonical symbols.
type Inventory struct {
	phonemes   map[phone.Phone]struct{}
	allophones map[phone.Phone]phone.Phone
	aliases    map[phone.Phone]phone.Phone
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{
		phonemes:   make(map[phone.Phone]struct{}),
		allophones: make(map[phone.Phone]phone.Phone),
		aliases:    make(map[phone.Phone]phone.Phone),
	}
}

// AddPhoneme adds a phoneme symbol.
func (inv *Inventory) AddPhoneme(p phone.Phone) {
	inv.phonemes[p] = struct{}{}
}

// AddAllophone links a surface variant to its base phoneme. The base must
// already be a phoneme of this inventory.
func (inv *Inventory) AddAllophone(allo, base phone.Phone) error {
	if _, ok := inv.phonemes[base]; !ok {
		return phonerr.Configf("allophones", "allophone %q references unknown phoneme %q", allo, base)
	}
	inv.allophones[allo] = base
	return nil
}

// AddAlias maps an alternative spelling to a canonical symbol.
func (inv *Inventory) AddAlias(from, to phone.Phone) {
	inv.aliases[from] = to
}

// Canonical resolves aliases, returning the canonical spelling of p.
func (inv *Inventory) Canonical(p phone.Phone) phone.Phone {
	if to, ok := inv.aliases[p]; ok {
		return to
	}
	return p
}

// Contains reports whether p (after alias resolution) is a phoneme or a
// known allophone of this inventory.
func (inv *Inventory) Contains(p phone.Phone) bool {
	p = inv.Canonical(p)
	if _, ok := inv.phonemes[p]; ok {
		return true
	}
	_, ok := inv.allophones[p]
	return ok
}

// Reduce maps an allophone to its base phoneme. Symbols with no allophone
// entry come back unchanged (after alias resolution).
func (inv *Inventory) Reduce(p phone.Phone) phone.Phone {
	p = inv.Canonical(p)
	if base, ok := inv.allophones[p]; ok {
		return base
	}
	return p
}

// Phonemes returns the phoneme symbols in sorted order.
func (inv *Inventory) Phonemes() []phone.Phone {
	out := make([]phone.Phone, 0, len(inv.phonemes))
	for p := range inv.phonemes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Members returns every symbol the inventory accepts: phonemes plus
// allophones, sorted.
func (inv *Inventory) Members() []phone.Phone {
	out := make([]phone.Phone, 0, len(inv.phonemes)+len(inv.allophones))
	for p := range inv.phonemes {
		out = append(out, p)
	}
	for p := range inv.allophones {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Size returns the number of phonemes.
func (inv *Inventory) Size() int { return len(inv.phonemes) }
