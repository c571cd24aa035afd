package phone

import (
	"errors"
	"testing"

	"github.com/accentcoach/phonology-go/phonerr"
)

func TestNewFeatureBundleConflict(t *testing.T) {
	_, err := NewFeatureBundle([]string{"voice", "nasal"}, []string{"voice"})
	if err == nil {
		t.Fatal("expected error for feature specified as both + and -")
	}
	var cfgErr *phonerr.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %T, want *phonerr.ConfigError", err)
	}
}

func TestFeatureBundleDistance(t *testing.T) {
	a, err := NewFeatureBundle([]string{"voice", "nasal"}, []string{"lateral"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFeatureBundle([]string{"voice", "lateral"}, []string{"nasal"})
	if err != nil {
		t.Fatal(err)
	}
	// nasal and lateral disagree, voice agrees.
	if got := a.Distance(b); got != 2 {
		t.Errorf("Distance = %d, want 2", got)
	}
	if got := b.Distance(a); got != 2 {
		t.Errorf("Distance not symmetric: %d", got)
	}

	// Unspecified features never count.
	c, _ := NewFeatureBundle([]string{"voice"}, nil)
	if got := a.Distance(c); got != 0 {
		t.Errorf("Distance to sparse bundle = %d, want 0", got)
	}
}

func TestFeatureBundleMatches(t *testing.T) {
	voicedStop, _ := NewFeatureBundle([]string{"voice"}, []string{"continuant", "sonorant"})

	bb, ok := Bundle("b")
	if !ok {
		t.Fatal("no bundle for b")
	}
	if !voicedStop.Matches(bb) {
		t.Error("b should match the voiced-stop class")
	}

	pb, _ := Bundle("p")
	if voicedStop.Matches(pb) {
		t.Error("p should not match the voiced-stop class (voiceless)")
	}

	mb, _ := Bundle("m")
	if voicedStop.Matches(mb) {
		t.Error("m should not match the voiced-stop class (sonorant)")
	}
}

func TestFeatureDistance(t *testing.T) {
	// p vs b differ only in voice.
	if got := FeatureDistance("p", "b"); got != 1 {
		t.Errorf("FeatureDistance(p,b) = %d, want 1", got)
	}
	if got := FeatureDistance("p", "p"); got != 0 {
		t.Errorf("FeatureDistance(p,p) = %d, want 0", got)
	}
	// Unknown symbols get the sentinel, never a small count.
	if got := FeatureDistance("ξ", "p"); got != UnknownFeatureDistance {
		t.Errorf("FeatureDistance(ξ,p) = %d, want %d", got, UnknownFeatureDistance)
	}
}

func TestBundleTablesComplete(t *testing.T) {
	for sym := range consonants {
		if _, ok := Bundle(sym); !ok {
			t.Errorf("consonant %q has no bundle", sym)
		}
	}
	for sym := range vowels {
		b, ok := Bundle(sym)
		if !ok {
			t.Errorf("vowel %q has no bundle", sym)
			continue
		}
		if v, ok := b.Value("syllabic"); !ok || !v {
			t.Errorf("vowel %q not +syllabic", sym)
		}
	}
}
