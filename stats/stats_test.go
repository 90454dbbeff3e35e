package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyReport(t *testing.T) {
	a := NewAccumulator([]string{"က", "ခ", "ဂ"})
	r := a.Report()
	assert.Equal(t, 0, r.TotalEncodings)
	assert.Nil(t, r.MostUsed)
	assert.Zero(t, r.ErrorRate)
	assert.Equal(t, []string{"က", "ခ", "ဂ"}, r.TopSyllables, "zero hits keep dictionary order")
}

func TestHitCounting(t *testing.T) {
	a := NewAccumulator([]string{"က", "ခ"})
	for i := 0; i < 3; i++ {
		a.RecordSuccess([]string{"ခ"})
	}
	a.RecordSuccess([]string{"က", "ခ", "ခ"})

	assert.Equal(t, 1, a.Hits("က"))
	assert.Equal(t, 5, a.Hits("ခ"), "a syllable matched twice in one call counts twice")

	r := a.Report()
	assert.Equal(t, 4, r.TotalEncodings)
	require.NotNil(t, r.MostUsed)
	assert.Equal(t, "ခ", r.MostUsed.Syllable)
	assert.Equal(t, 5, r.MostUsed.Hits)
	assert.Equal(t, []string{"ခ", "က"}, r.TopSyllables)
}

func TestErrorRate(t *testing.T) {
	a := NewAccumulator(nil)
	a.RecordSuccess(nil)
	a.RecordFailure()
	a.RecordFailure()
	a.RecordSuccess(nil)

	r := a.Report()
	assert.Equal(t, 4, r.TotalEncodings)
	assert.InDelta(t, 0.5, r.ErrorRate, 1e-9)
	assert.Nil(t, r.MostUsed, "no syllable hits recorded")
}

func TestTopSyllablesTieBreak(t *testing.T) {
	a := NewAccumulator([]string{"ငါး", "က", "ခ", "ဂ", "ဃ", "င"})
	a.RecordSuccess([]string{"ဂ", "ခ"})
	a.RecordSuccess([]string{"ဂ"})

	r := a.Report()
	require.Len(t, r.TopSyllables, 5)
	assert.Equal(t, "ဂ", r.TopSyllables[0])
	assert.Equal(t, "ခ", r.TopSyllables[1])
	// Remaining slots fall back to dictionary order.
	assert.Equal(t, []string{"ငါး", "က", "ဃ"}, r.TopSyllables[2:])
}
