package phonology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accentcoach/phonology-go/compare"
	"github.com/accentcoach/phonology-go/dialect"
	"github.com/accentcoach/phonology-go/grammar"
	"github.com/accentcoach/phonology-go/phone"
	"github.com/accentcoach/phonology-go/phonerr"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	d, err := dialect.Default()
	require.NoError(t, err)
	e, err := NewEngine(d, opts...)
	require.NoError(t, err)
	return e
}

func TestCompareIdenticalScoresFull(t *testing.T) {
	e := newTestEngine(t)

	target := e.ParseTranscription("/kasa/", LevelPhonemic)
	got, err := e.Compare(target, target, grammar.ModeObjective, nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, got.Score)
	assert.Equal(t, 0.0, got.PER)
	assert.NotEmpty(t, got.SessionID)
	for _, op := range got.Ops {
		assert.Equal(t, compare.OpEq, op.Op)
	}
}

func TestCompareLevelMismatch(t *testing.T) {
	e := newTestEngine(t)

	target := e.ParseTranscription("/kasa/", LevelPhonemic)
	observed := e.ParseTranscription("[kasa]", LevelPhonetic)
	_, err := e.Compare(target, observed, grammar.ModeObjective, nil)
	require.Error(t, err)

	var valErr *phonerr.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestCompareScoresSubstitution(t *testing.T) {
	e := newTestEngine(t)

	target := e.ParseTranscription("/kasa/", LevelPhonemic)
	observed := e.ParseTranscription("/gasa/", LevelPhonemic)
	got, err := e.Compare(target, observed, grammar.ModeObjective, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.25, got.PER)
	assert.Equal(t, 75.0, got.Score)
	// With articulatory weighting a k-to-g slip costs less than a full
	// substitution.
	assert.Less(t, got.Distance, 1.0)
	assert.Greater(t, got.Distance, 0.0)
}

func TestCompareModeChangesFloor(t *testing.T) {
	e := newTestEngine(t)

	target := e.ParseTranscription("/pa/", LevelPhonemic)
	observed := e.ParseTranscription("/ba/", LevelPhonemic)

	casual, err := e.Compare(target, observed, grammar.ModeCasual, nil)
	require.NoError(t, err)
	strict, err := e.Compare(target, observed, grammar.ModePhonetic, nil)
	require.NoError(t, err)

	// Same alignment, but the phonetic floor makes the slip more costly.
	assert.Less(t, casual.Distance, strict.Distance)
	assert.Equal(t, casual.PER, strict.PER)
}

func TestCompareDropsUnknownPhones(t *testing.T) {
	e := newTestEngine(t)

	// ʘ resolves to nothing in a Spanish inventory and is excluded.
	target := e.ParseTranscription("/kasa/", LevelPhonemic)
	observed := e.ParseTranscription("/kaʘsa/", LevelPhonemic)
	got, err := e.Compare(target, observed, grammar.ModeObjective, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.PER)
	assert.Equal(t, 100.0, got.Score)
	assert.Equal(t, 1, got.OOV.Unknown)
	assert.Equal(t, 9, got.OOV.Total)
}

func TestCompareEmptyTarget(t *testing.T) {
	e := newTestEngine(t)

	empty := Representation{Level: LevelPhonemic}
	observed := e.ParseTranscription("/a/", LevelPhonemic)

	got, err := e.Compare(empty, empty, grammar.ModeObjective, nil)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Score)

	got, err = e.Compare(empty, observed, grammar.ModeObjective, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.PER)
	assert.Equal(t, 0.0, got.Score)
}

func TestCompareWithProfile(t *testing.T) {
	e := newTestEngine(t)

	target := e.ParseTranscription("[loβo]", LevelPhonetic)
	observed := e.ParseTranscription("[lobo]", LevelPhonetic)

	plain, err := e.Compare(target, observed, grammar.ModeObjective, nil)
	require.NoError(t, err)

	profile := NewProfile(0.25)
	profile.Accept("β", "b")
	soft, err := e.Compare(target, observed, grammar.ModeObjective, profile)
	require.NoError(t, err)

	// The lenition slip still shows in PER but barely dents the score.
	assert.Equal(t, plain.PER, soft.PER)
	assert.Greater(t, soft.Score, plain.Score)
	assert.InDelta(t, (1.0-0.25/4.0)*100.0, soft.Score, 1e-9)

	// The reverse pair was not accepted.
	reversed, err := e.Compare(observed, target, grammar.ModeObjective, profile)
	require.NoError(t, err)
	assert.Equal(t, plain.Score, reversed.Score)
}

func TestDeriveCollapseFacade(t *testing.T) {
	e := newTestEngine(t)

	derived := e.Derive("/lobo/", grammar.ModeObjective, grammar.RegisterAll)
	assert.Equal(t, LevelPhonetic, derived.Level)
	assert.Equal(t, phone.Tokenize("loβo"), derived.Phones)

	collapsed := e.Collapse("[loβo]", grammar.ModeObjective)
	assert.Equal(t, LevelPhonemic, collapsed.Level)
	assert.Equal(t, phone.Tokenize("lobo"), collapsed.Phones)
}

func TestNewEngineBadThreshold(t *testing.T) {
	d, err := dialect.Default()
	require.NoError(t, err)

	_, err = NewEngine(d, WithCollapseThreshold(1.5))
	require.Error(t, err)
	var cfgErr *phonerr.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSyllableBreakdown(t *testing.T) {
	e := newTestEngine(t)

	target := e.ParseTranscription("/kasata/", LevelPhonemic)
	observed := e.ParseTranscription("/kabata/", LevelPhonemic)
	got, err := e.Compare(target, observed, grammar.ModeObjective, nil)
	require.NoError(t, err)

	sylls := e.SyllableBreakdown(got)
	require.Len(t, sylls, 3)
	assert.Equal(t, []phone.Phone{"k", "a"}, sylls[0].Phones)
	assert.Equal(t, 0, sylls[0].Errors)
	assert.Equal(t, []phone.Phone{"s", "a"}, sylls[1].Phones)
	assert.Equal(t, 1, sylls[1].Errors)
	assert.Equal(t, 0, sylls[2].Errors)

	total := 0
	for _, s := range sylls {
		total += s.Total
	}
	assert.Equal(t, len(got.Ops), total)
}
